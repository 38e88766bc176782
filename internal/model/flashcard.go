package model

type Flashcard struct {
	Question string `json:"pergunta"`
	Answer   string `json:"resposta"`
}
