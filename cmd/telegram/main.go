package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"

	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/repository"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/infrastructure/database"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/bot"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/language"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/pipeline"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/translator"
)

// Tempo máximo para processar um turno de conversa vindo do Telegram
const turnTimeout = 90 * time.Second

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	appLogger := logger.NewLogger()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN não configurado")
	}

	// Conectar ao banco para gravar o histórico de conversas
	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	messageRepo := repository.NewMessageRepository(db)

	botClient, err := bot.NewClient(bot.ConfigFromEnv(), appLogger)
	if err != nil {
		log.Fatalf("Erro ao configurar cliente do bot: %v", err)
	}

	chatPipeline := pipeline.NewChatPipeline(
		pipeline.ConfigFromEnv(),
		language.NewDetector(),
		translator.NewGoogleTranslator(translator.ConfigFromEnv(), appLogger),
		botClient,
		messageRepo,
		appLogger,
	)

	tgBot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Fatalf("Erro ao conectar ao Telegram: %v", err)
	}

	appLogger.Info("Bot do Telegram conectado", "username", tgBot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := tgBot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil || update.Message.From == nil {
			continue
		}

		// Comandos e mensagens sem texto não passam pelo assistente
		if update.Message.IsCommand() {
			continue
		}

		text := strings.TrimSpace(update.Message.Text)
		if text == "" {
			continue
		}

		chatID := update.Message.Chat.ID
		userName := update.Message.From.FirstName

		// Sinalizar que o bot está digitando enquanto processa
		typing := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
		_, _ = tgBot.Send(typing)

		ctx, cancel := context.WithTimeout(context.Background(), turnTimeout)
		result, err := chatPipeline.Process(ctx, text, userName)
		cancel()

		if err != nil {
			appLogger.Error("Erro ao processar mensagem do Telegram", "chat_id", chatID, "error", err)
			continue
		}

		reply := tgbotapi.NewMessage(chatID, result.Reply)
		if _, err := tgBot.Send(reply); err != nil {
			appLogger.Error("Erro ao enviar resposta no Telegram", "chat_id", chatID, "error", err)
		}
	}
}
