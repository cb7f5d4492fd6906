package bootstrap

import (
	"log"

	"med-voice-be/internal/config"
	"med-voice-be/internal/controller"
	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/repository/memory"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/internal/service"
	"med-voice-be/pkg/llm/openai"
	"med-voice-be/pkg/speech"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	ChatRoomController controller.IChatRoomController
	SpeechController   controller.ISpeechController
	HealthController   controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Collaborators
	llmProvider, err := openai.NewProvider(cfg.OpenAI.APIKey, cfg.OpenAI.ChatModel)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: OPENAI (%s)", cfg.OpenAI.ChatModel)

	speechProvider, err := speech.NewOpenAISpeech(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.STTModel,
		cfg.OpenAI.TTSModel,
		cfg.OpenAI.TTSVoice,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize Speech Provider: %v", err)
	}

	clipCache := memory.NewSpeechCache()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.RoomActivityTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.RoomActivityTopic,
		uowFactory,
		sysLogger,
	)

	chatRoomService := service.NewChatRoomService(uowFactory, publisherService, sysLogger)
	chatService := service.NewChatService(
		uowFactory,
		llmProvider,
		publisherService,
		sysLogger,
		cfg.OpenAI.NamingModel,
	)
	speechService := service.NewSpeechService(speechProvider, speechProvider, clipCache, sysLogger)

	// 5. Controllers
	return &Container{
		ChatController:     controller.NewChatController(chatService),
		ChatRoomController: controller.NewChatRoomController(chatRoomService),
		SpeechController:   controller.NewSpeechController(speechService),
		HealthController:   controller.NewHealthController(db),

		ConsumerService: consumerService,
	}
}
