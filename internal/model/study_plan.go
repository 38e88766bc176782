package model

// StudyDay 周计划中的一天
type StudyDay struct {
	Day               string `json:"Dia"`
	Discipline        string `json:"Disciplina"`
	Topic             string `json:"Tópico"`
	SuggestedActivity string `json:"Atividade Sugerida"`
}

type StudyPlan []StudyDay

// StudyPlanSettings 生成计划时填写的表单
type StudyPlanSettings struct {
	Objective  string   `json:"objetivo" binding:"required"`
	Goal       string   `json:"meta"`
	Days       []string `json:"dias"`
	Periods    []string `json:"periodos"`
	Strengths  string   `json:"pontosFortes"`
	Weaknesses string   `json:"pontosFracos"`
}
