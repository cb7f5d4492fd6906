package main

import (
	"context"
	"log"
	"os"
	"time"

	"med-voice-be/internal/constant"
	"med-voice-be/internal/entity"
	"med-voice-be/internal/repository/specification"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// dbcheck runs a round-trip smoke test against a live database: create a
// room, append a message, read both back, then soft-delete everything.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn, database.DefaultPoolConfig())
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Connected to database")

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	room := entity.ChatRoom{Id: uuid.New(), CreatedAt: time.Now()}
	if err := uow.ChatRoomRepository().Create(ctx, &room); err != nil {
		color.Red("Error: Failed to create chat room: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Created chat room %s", room.Id)

	message := entity.ChatMessage{
		Id:         uuid.New(),
		ChatRoomId: room.Id,
		Role:       constant.ChatMessageRoleUser,
		Content:    "dbcheck round-trip probe",
		CreatedAt:  time.Now(),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		color.Red("Error: Failed to create chat message: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Created chat message %s", message.Id)

	found, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: room.Id})
	if err != nil || found == nil {
		color.Red("Error: Failed to read chat room back: %v", err)
		os.Exit(1)
	}
	messages, err := uow.ChatMessageRepository().FindAll(ctx, specification.ByChatRoomID{ChatRoomID: room.Id})
	if err != nil || len(messages) != 1 {
		color.Red("Error: Failed to read chat message back: %v (got %d)", err, len(messages))
		os.Exit(1)
	}
	color.Green("✓ Read room and message back")

	if _, err := uow.ChatMessageRepository().DeleteByChatRoomId(ctx, room.Id); err != nil {
		color.Red("Error: Failed to delete chat messages: %v", err)
		os.Exit(1)
	}
	if _, err := uow.ChatRoomRepository().Delete(ctx, room.Id); err != nil {
		color.Red("Error: Failed to delete chat room: %v", err)
		os.Exit(1)
	}
	color.Green("✓ Cleaned up probe data")

	color.Cyan("Database round-trip check passed")
}
