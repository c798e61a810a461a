package dto

type AskQuestionDTO struct {
	Question string `json:"question" validate:"required,max=500"`
}

type AssistantAnswerDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
