package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"med-voice-be/internal/constant"
	"med-voice-be/internal/entity"
	"med-voice-be/internal/repository/specification"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.ChatRoomRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	ctx := context.Background()

	t.Run("Check Chat Room Repository", func(t *testing.T) {
		count, err := uow.ChatRoomRepository().Count(ctx)
		assert.NoError(t, err)
		t.Logf("Chat room count: %d", count)
	})

	t.Run("Room And Message Round Trip", func(t *testing.T) {
		room := entity.ChatRoom{Id: uuid.New(), CreatedAt: time.Now()}
		require.NoError(t, uow.ChatRoomRepository().Create(ctx, &room))
		defer func() {
			_, _ = uow.ChatMessageRepository().DeleteByChatRoomId(ctx, room.Id)
			_, _ = uow.ChatRoomRepository().Delete(ctx, room.Id)
		}()

		message := entity.ChatMessage{
			Id:         uuid.New(),
			ChatRoomId: room.Id,
			Role:       constant.ChatMessageRoleUser,
			Content:    "integration round-trip",
			CreatedAt:  time.Now(),
		}
		require.NoError(t, uow.ChatMessageRepository().Create(ctx, &message))

		found, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Nil(t, found.Name)

		messages, err := uow.ChatMessageRepository().FindAll(ctx, specification.ByChatRoomID{ChatRoomID: room.Id})
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Equal(t, "integration round-trip", messages[0].Content)
	})

	t.Run("Rename And Soft Delete", func(t *testing.T) {
		room := entity.ChatRoom{Id: uuid.New(), CreatedAt: time.Now()}
		require.NoError(t, uow.ChatRoomRepository().Create(ctx, &room))

		renamed, err := uow.ChatRoomRepository().Rename(ctx, room.Id, "جلسه آزمایشی")
		require.NoError(t, err)
		assert.True(t, renamed)

		found, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		require.NotNil(t, found.Name)
		assert.Equal(t, "جلسه آزمایشی", *found.Name)

		deleted, err := uow.ChatRoomRepository().Delete(ctx, room.Id)
		require.NoError(t, err)
		assert.True(t, deleted)

		// Soft-deleted rows stay invisible to reads.
		gone, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("Transactional Rollback Leaves No Rows", func(t *testing.T) {
		txUow := uowFactory.NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		room := entity.ChatRoom{Id: uuid.New(), CreatedAt: time.Now()}
		require.NoError(t, txUow.ChatRoomRepository().Create(ctx, &room))
		require.NoError(t, txUow.Rollback())

		found, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
