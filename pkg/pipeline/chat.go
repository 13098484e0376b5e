package pipeline

import (
	"context"
	"fmt"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/domain/message"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/language"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/translator"
)

const englishCode = "en"

// TextBot abstrai o endpoint de texto do backend conversacional
type TextBot interface {
	SendText(ctx context.Context, message string) (string, error)
}

// ChatResult é o resultado de um turno de conversa processado
type ChatResult struct {
	// Reply é a resposta final no idioma do usuário
	Reply string

	// Lang é o código do idioma detectado; vazio quando o pivô
	// de tradução está desativado
	Lang string
}

// ChatPipeline orquestra um turno de conversa: detecta o idioma da entrada,
// pivota por inglês para o bot externo, traduz a resposta de volta e grava
// os dois turnos no histórico.
type ChatPipeline struct {
	config     Config
	detector   language.Detector
	translator translator.Translator
	bot        TextBot
	messages   message.Repository
	logger     logger.Logger
}

// NewChatPipeline cria um novo ChatPipeline
func NewChatPipeline(
	config Config,
	detector language.Detector,
	trans translator.Translator,
	bot TextBot,
	messages message.Repository,
	log logger.Logger,
) *ChatPipeline {
	return &ChatPipeline{
		config:     config,
		detector:   detector,
		translator: trans,
		bot:        bot,
		messages:   messages,
		logger:     log,
	}
}

// Process processa uma mensagem de texto do usuário e devolve a resposta
// localizada. Falhas do bot externo degradam para a resposta fixa de
// indisponibilidade; falhas do tradutor ou do histórico interrompem a
// requisição. O pipeline assume que userText não é vazio; a validação
// de entrada acontece na camada de transporte.
func (p *ChatPipeline) Process(ctx context.Context, userText, userName string) (*ChatResult, error) {
	if userName == "" {
		userName = DefaultUserName
	}

	if !p.config.EnableTranslationPivot {
		return p.processWithoutPivot(ctx, userText, userName)
	}

	// Falha na detecção nunca interrompe o turno: o idioma cai para inglês
	userLang := englishCode
	if detected, err := p.detector.Detect(userText); err != nil {
		p.logger.Warn("Detecção de idioma falhou, assumindo inglês", "error", err)
	} else {
		userLang = detected
	}

	englishInput := userText
	if userLang != englishCode {
		translated, err := p.translator.Translate(ctx, userText, translator.SourceAuto, englishCode)
		if err != nil {
			return nil, fmt.Errorf("erro ao traduzir entrada para inglês: %w", err)
		}
		englishInput = translated
	}

	englishReply := p.invokeBot(ctx, englishInput)

	finalReply := englishReply
	if userLang != englishCode {
		translated, err := p.translator.Translate(ctx, englishReply, englishCode, userLang)
		if err != nil {
			return nil, fmt.Errorf("erro ao traduzir resposta para %s: %w", userLang, err)
		}
		finalReply = translated
	}

	if err := p.persistTurns(ctx, userName, userText, finalReply); err != nil {
		return nil, err
	}

	return &ChatResult{Reply: finalReply, Lang: userLang}, nil
}

// processWithoutPivot envia o texto cru direto ao bot, sem detecção nem
// tradução; o idioma detectado é reportado como desconhecido
func (p *ChatPipeline) processWithoutPivot(ctx context.Context, userText, userName string) (*ChatResult, error) {
	reply := p.invokeBot(ctx, userText)

	if err := p.persistTurns(ctx, userName, userText, reply); err != nil {
		return nil, err
	}

	return &ChatResult{Reply: reply, Lang: ""}, nil
}

// invokeBot chama o bot externo e degrada para a resposta fixa em caso de
// falha: erro cru do serviço externo nunca chega ao usuário final
func (p *ChatPipeline) invokeBot(ctx context.Context, englishInput string) string {
	reply, err := p.bot.SendText(ctx, englishInput)
	if err != nil {
		p.logger.Error("Bot externo indisponível, usando resposta de contingência", "error", err)
		return FallbackReply
	}
	return reply
}

// persistTurns grava os dois turnos do intercâmbio, usuário antes do bot,
// depois que a resposta final já foi calculada
func (p *ChatPipeline) persistTurns(ctx context.Context, userName, userText, reply string) error {
	if _, err := p.messages.Append(ctx, userName, userText, message.RoleUser); err != nil {
		return fmt.Errorf("erro ao gravar turno do usuário: %w", err)
	}
	if _, err := p.messages.Append(ctx, userName, reply, message.RoleBot); err != nil {
		return fmt.Errorf("erro ao gravar turno do bot: %w", err)
	}
	return nil
}
