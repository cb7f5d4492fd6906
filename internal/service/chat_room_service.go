package service

import (
	"context"
	"fmt"
	"time"

	"med-voice-be/internal/constant"
	"med-voice-be/internal/dto"
	"med-voice-be/internal/entity"
	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/pkg/serverutils"
	"med-voice-be/internal/repository/specification"
	"med-voice-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IChatRoomService covers the room CRUD surface: browsing history, explicit
// room creation, direct message appends and room deletion.
type IChatRoomService interface {
	CreateRoom(ctx context.Context) (*dto.ChatRoomResponse, error)
	GetAllRooms(ctx context.Context) ([]*dto.ChatRoomResponse, error)
	GetRoomWithMessages(ctx context.Context, roomId uuid.UUID) (*dto.ChatRoomWithMessagesResponse, error)
	AddMessage(ctx context.Context, roomId uuid.UUID, request *dto.AddMessageRequest) (*dto.ChatMessageResponse, error)
	DeleteRoom(ctx context.Context, roomId uuid.UUID) error
}

type chatRoomService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewChatRoomService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	sysLogger logger.ILogger,
) IChatRoomService {
	return &chatRoomService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     sysLogger,
	}
}

func (cs *chatRoomService) CreateRoom(ctx context.Context) (*dto.ChatRoomResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	room := entity.ChatRoom{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatRoomRepository().Create(ctx, &room); err != nil {
		return nil, err
	}

	return roomToResponse(&room), nil
}

func (cs *chatRoomService) GetAllRooms(ctx context.Context) ([]*dto.ChatRoomResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	rooms, err := uow.ChatRoomRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.ChatRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		response = append(response, roomToResponse(room))
	}
	return response, nil
}

func (cs *chatRoomService) GetRoomWithMessages(ctx context.Context, roomId uuid.UUID) (*dto.ChatRoomWithMessagesResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	room, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("chat room %s: %w", roomId, serverutils.ErrNotFound)
	}

	// Ascending creation order is the conversation order; the UI and the
	// model both rely on it.
	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatRoomID{ChatRoomID: roomId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	response := &dto.ChatRoomWithMessagesResponse{
		ChatRoomResponse: *roomToResponse(room),
		Messages:         make([]dto.ChatMessageResponse, 0, len(messages)),
	}
	for _, msg := range messages {
		response.Messages = append(response.Messages, dto.ChatMessageResponse{
			Id:        msg.Id,
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return response, nil
}

func (cs *chatRoomService) AddMessage(ctx context.Context, roomId uuid.UUID, request *dto.AddMessageRequest) (*dto.ChatMessageResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// A message never creates its room implicitly.
	room, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("chat room %s: %w", roomId, serverutils.ErrNotFound)
	}

	now := time.Now()
	message := entity.ChatMessage{
		Id:         uuid.New(),
		ChatRoomId: roomId,
		Role:       request.Role,
		Content:    request.Content,
		CreatedAt:  now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		return nil, err
	}

	cs.publishActivity(ctx, roomId, now)

	return &dto.ChatMessageResponse{
		Id:        message.Id,
		Role:      message.Role,
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}, nil
}

func (cs *chatRoomService) DeleteRoom(ctx context.Context, roomId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	deleted, err := uow.ChatRoomRepository().Delete(ctx, roomId)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("chat room %s: %w", roomId, serverutils.ErrNotFound)
	}

	if _, err := uow.ChatMessageRepository().DeleteByChatRoomId(ctx, roomId); err != nil {
		return err
	}

	return uow.Commit()
}

func (cs *chatRoomService) publishActivity(ctx context.Context, roomId uuid.UUID, at time.Time) {
	if err := cs.publisher.Publish(ctx, NewRoomActivityEvent(roomId, at)); err != nil {
		cs.logger.Warn(constant.ModuleChatRoom, "Failed to publish room activity", map[string]interface{}{
			"chat_room_id": roomId.String(),
			"error":        err.Error(),
		})
	}
}

func roomToResponse(room *entity.ChatRoom) *dto.ChatRoomResponse {
	return &dto.ChatRoomResponse{
		Id:        room.Id,
		Name:      room.Name,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}
