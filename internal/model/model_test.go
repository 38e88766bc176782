package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMindMapDepthAndCount(t *testing.T) {
	root := &MindMapNode{ID: "1", Topic: "Ecologia", Children: []*MindMapNode{
		{ID: "2", Topic: "Cadeias alimentares", Children: []*MindMapNode{{ID: "3", Topic: "Produtores"}}},
		{ID: "4", Topic: "Biomas"},
	}}

	assert.Equal(t, 3, root.Depth())
	assert.Equal(t, 4, root.Count())

	var order []string
	root.Walk(func(n *MindMapNode) { order = append(order, n.ID) })
	assert.Equal(t, []string{"1", "2", "3", "4"}, order)

	var empty *MindMapNode
	assert.Zero(t, empty.Depth())
	assert.Zero(t, empty.Count())
}

func TestDragKeepsPointerOffset(t *testing.T) {
	d := BeginDrag(Position{X: 50, Y: 40}, Position{X: 20, Y: 30})
	assert.Equal(t, Position{X: 30, Y: 10}, d.Offset)

	pos, ok := d.Move(Position{X: 80, Y: 90})
	assert.True(t, ok)
	assert.Equal(t, Position{X: 50, Y: 80}, pos)

	pos, ok = d.End(Position{X: 130, Y: 10})
	assert.True(t, ok)
	assert.Equal(t, Position{X: 100, Y: 0}, pos)

	// 松开后不再跟随
	_, ok = d.Move(Position{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestChatMessageText(t *testing.T) {
	m := ChatMessage{Role: RoleModel, Parts: []ChatPart{{Text: "Olá, "}, {Text: "tudo bem?"}}}
	assert.Equal(t, "Olá, tudo bem?", m.Text())
	assert.Equal(t, "Oi", NewChatMessage(RoleUser, "Oi").Text())
	assert.Equal(t, "", ChatMessage{}.Text())
}

func TestCalendarMonthStudiedCount(t *testing.T) {
	m := NewCalendarMonth("Avante!")
	m.StudiedDays[1] = true
	m.StudiedDays[2] = false
	m.StudiedDays[9] = true
	assert.Equal(t, 2, m.StudiedCount())
}
