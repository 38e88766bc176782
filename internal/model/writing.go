package model

type CriterionScore struct {
	Criterion string `json:"criterio"`
	Score     int    `json:"nota"`
	Comment   string `json:"comentario"`
}

type WritingAnalysis struct {
	OverallScore      int              `json:"notaGeral"`
	Strengths         []string         `json:"pontosFortes"`
	AreasToImprove    []string         `json:"areasParaMelhorar"`
	CriteriaBreakdown []CriterionScore `json:"analisePorCriterio,omitempty"`
	RevisedParagraph  string           `json:"paragrafoRevisado"`
}
