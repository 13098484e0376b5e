package pipeline

import (
	"context"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/bot"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
)

// VoiceBot abstrai o endpoint de voz do backend conversacional
type VoiceBot interface {
	SendVoice(ctx context.Context, audioPath string) (*bot.VoiceResult, error)
}

// VoiceResult é o resultado de um turno de voz processado
type VoiceResult struct {
	// UserText é a transcrição da fala do usuário
	UserText string

	// Reply é a resposta textual do bot
	Reply string

	// AudioURL referencia o áudio da resposta gerado pelo serviço remoto
	AudioURL string
}

// VoicePipeline orquestra um turno de voz: o serviço remoto cuida do idioma
// de ponta a ponta, então não há pivô de tradução. Qualquer falha é fatal
// para a requisição e propagada ao chamador.
type VoicePipeline struct {
	bot      VoiceBot
	messages message.Repository
	logger   logger.Logger
}

// NewVoicePipeline cria um novo VoicePipeline
func NewVoicePipeline(voiceBot VoiceBot, messages message.Repository, log logger.Logger) *VoicePipeline {
	return &VoicePipeline{
		bot:      voiceBot,
		messages: messages,
		logger:   log,
	}
}

// Process envia o áudio ao bot externo e devolve transcrição, resposta e
// referência ao áudio de resposta. Turnos de voz ainda não são gravados no
// histórico de conversas.
func (p *VoicePipeline) Process(ctx context.Context, audioPath, userName string) (*VoiceResult, error) {
	if userName == "" {
		userName = DefaultUserName
	}

	result, err := p.bot.SendVoice(ctx, audioPath)
	if err != nil {
		p.logger.Error("Falha no turno de voz", "user", userName, "error", err)
		return nil, err
	}

	return &VoiceResult{
		UserText: result.Transcript,
		Reply:    result.Reply,
		AudioURL: result.AudioURL,
	}, nil
}
