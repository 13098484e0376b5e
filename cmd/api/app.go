package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Niccolo27/Sherpa-Alzheimer/docs"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/controller"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/api/route"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/adapter/repository"
	"github.com/Niccolo27/Sherpa-Alzheimer/internal/infrastructure/database"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/bot"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/language"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/logger"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/pipeline"
	"github.com/Niccolo27/Sherpa-Alzheimer/pkg/translator"
)

// App representa a aplicação e suas dependências
type App struct {
	router            *gin.Engine
	db                *pgxpool.Pool
	logger            logger.Logger
	chatController    *controller.ChatController
	voiceController   *controller.VoiceController
	contactController *controller.ContactController
	authController    *controller.AuthController
	messageController *controller.MessageController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar com o banco de dados: %w", err)
	}

	// Criar repositórios
	messageRepo := repository.NewMessageRepository(db)
	contactRepo := repository.NewContactRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Criar adaptadores externos
	detector := language.NewDetector()
	googleTranslator := translator.NewGoogleTranslator(translator.ConfigFromEnv(), log)
	botClient, err := bot.NewClient(bot.ConfigFromEnv(), log)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao configurar cliente do bot: %w", err)
	}

	// Criar pipelines
	chatPipeline := pipeline.NewChatPipeline(
		pipeline.ConfigFromEnv(),
		detector,
		googleTranslator,
		botClient,
		messageRepo,
		log,
	)
	voicePipeline := pipeline.NewVoicePipeline(botClient, messageRepo, log)

	// Criar controllers
	chatController := controller.NewChatController(chatPipeline)
	voiceController := controller.NewVoiceController(voicePipeline, log)
	contactController := controller.NewContactController(contactRepo)
	authController := controller.NewAuthController(userRepo, log)
	messageController := controller.NewMessageController(messageRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:            router,
		db:                db,
		logger:            log,
		chatController:    chatController,
		voiceController:   voiceController,
		contactController: contactController,
		authController:    authController,
		messageController: messageController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterChatRoutes(api, a.chatController)
	route.RegisterVoiceRoutes(api, a.voiceController)
	route.RegisterContactRoutes(api, a.contactController)
	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterAdminRoutes(api, a.messageController, a.contactController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("Iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
