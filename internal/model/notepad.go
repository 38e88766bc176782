package model

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Notepad struct {
	Content         string    `json:"content"`
	FabPosition     *Position `json:"fabPosition,omitempty"`
	NotepadPosition *Position `json:"notepadPosition,omitempty"`
	TodayFocus      string    `json:"todayFocus"`
}

// Drag 单指针拖拽，记录按下时指针与元素左上角的偏移
type Drag struct {
	Offset Position `json:"offset"`
	Active bool     `json:"active"`
}

func BeginDrag(pointer, origin Position) Drag {
	return Drag{
		Offset: Position{X: pointer.X - origin.X, Y: pointer.Y - origin.Y},
		Active: true,
	}
}

// Move 返回指针移动后元素的新位置；未按下时返回 false
func (d *Drag) Move(pointer Position) (Position, bool) {
	if !d.Active {
		return Position{}, false
	}
	return Position{X: pointer.X - d.Offset.X, Y: pointer.Y - d.Offset.Y}, true
}

// End 松开指针，返回最终位置
func (d *Drag) End(pointer Position) (Position, bool) {
	pos, ok := d.Move(pointer)
	d.Active = false
	return pos, ok
}
