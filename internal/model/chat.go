package model

const (
	RoleUser  = "user"
	RoleModel = "model"
)

type ChatPart struct {
	Text string `json:"text"`
}

// ChatMessage 导师对话的一条消息
type ChatMessage struct {
	Role  string     `json:"role"`
	Parts []ChatPart `json:"parts"`
}

func NewChatMessage(role, text string) ChatMessage {
	return ChatMessage{Role: role, Parts: []ChatPart{{Text: text}}}
}

// Text 拼接所有片段
func (m ChatMessage) Text() string {
	if len(m.Parts) == 1 {
		return m.Parts[0].Text
	}
	var s string
	for _, p := range m.Parts {
		s += p.Text
	}
	return s
}
