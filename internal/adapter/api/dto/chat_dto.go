package dto

// ChatRequest representa uma mensagem de texto enviada ao assistente
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	UserName string `json:"user_name"`
}

// ChatResponse representa a resposta localizada do assistente
type ChatResponse struct {
	Reply string `json:"reply"`
	Lang  string `json:"lang"`
}

// VoiceResponse representa o resultado de um turno de voz
type VoiceResponse struct {
	UserText string `json:"user_text"`
	Reply    string `json:"reply"`
	AudioURL string `json:"audio_url"`
}
