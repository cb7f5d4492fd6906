package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"med-voice-be/internal/constant"
	"med-voice-be/internal/dto"
	"med-voice-be/internal/entity"
	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/pkg/serverutils"
	"med-voice-be/internal/repository/specification"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/pkg/llm"

	"github.com/google/uuid"
)

// IChatService runs one conversational turn: resolve the room, persist the
// user message, ask the model, persist the reply and maybe name the room.
type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	uowFactory  unitofwork.RepositoryFactory
	llmProvider llm.LLMProvider
	publisher   IPublisherService
	logger      logger.ILogger
	namingModel string
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisher IPublisherService,
	sysLogger logger.ILogger,
	namingModel string,
) IChatService {
	return &chatService{
		uowFactory:  uowFactory,
		llmProvider: llmProvider,
		publisher:   publisher,
		logger:      sysLogger,
		namingModel: namingModel,
	}
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	// No transaction spans the turn: the completion call must not hold a
	// pooled connection, so each write checks out its own.
	roomId, isNewRoom, err := cs.ensureRoom(ctx, uow, request.ChatRoomId)
	if err != nil {
		return nil, err
	}

	// A supplied id must point at a live room before anything is written
	// to it. A message never creates its room implicitly.
	if !isNewRoom {
		room, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, fmt.Errorf("chat room %s: %w", roomId, serverutils.ErrNotFound)
		}
	}

	if err := cs.persistUserTurn(ctx, uow, roomId, request); err != nil {
		return nil, err
	}

	history := cs.assembleHistory(request)
	reply, err := cs.llmProvider.Chat(ctx, history, llm.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}

	if err := cs.recordTurn(ctx, uow, roomId, constant.ChatMessageRoleAssistant, reply); err != nil {
		return nil, err
	}

	outcome := cs.maybeAutoName(ctx, uow, roomId)

	cs.publishActivity(ctx, roomId, time.Now())

	response := &dto.SendChatResponse{
		Text:       reply,
		ChatRoomId: roomId,
	}
	if outcome.Status == NamingProduced {
		response.ChatRoomName = outcome.Name
	}
	return response, nil
}

// ensureRoom returns the supplied room id unchanged, or creates a fresh
// room when none was given. A supplied id is not checked here; the first
// message write enforces existence.
func (cs *chatService) ensureRoom(ctx context.Context, uow unitofwork.UnitOfWork, optionalId *uuid.UUID) (uuid.UUID, bool, error) {
	if optionalId != nil {
		return *optionalId, false, nil
	}

	room := entity.ChatRoom{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
	}
	if err := uow.ChatRoomRepository().Create(ctx, &room); err != nil {
		return uuid.Nil, false, err
	}
	return room.Id, true, nil
}

// persistUserTurn stores the trailing entry of the submitted sequence when
// it is a non-empty user message. Anything else is silently skipped so a
// malformed tail never poisons the turn.
func (cs *chatService) persistUserTurn(ctx context.Context, uow unitofwork.UnitOfWork, roomId uuid.UUID, request *dto.SendChatRequest) error {
	if len(request.Messages) == 0 {
		return nil
	}

	last := request.Messages[len(request.Messages)-1]
	if last.Role != constant.ChatMessageRoleUser || strings.TrimSpace(last.Content) == "" {
		return nil
	}

	return cs.recordTurn(ctx, uow, roomId, constant.ChatMessageRoleUser, last.Content)
}

// recordTurn is the single write path for turn messages. Each row stamps
// its own insertion time; created_at must order a question strictly before
// its reply, so the two writes of a turn never share a timestamp.
func (cs *chatService) recordTurn(ctx context.Context, uow unitofwork.UnitOfWork, roomId uuid.UUID, role, content string) error {
	message := entity.ChatMessage{
		Id:         uuid.New(),
		ChatRoomId: roomId,
		Role:       role,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	return uow.ChatMessageRepository().Create(ctx, &message)
}

func (cs *chatService) assembleHistory(request *dto.SendChatRequest) []llm.Message {
	systemMessage := constant.ChatSystemPromptV1
	if request.LastResponse != "" {
		systemMessage += fmt.Sprintf(constant.ChatLastResponseContextV1, request.LastResponse)
	}

	history := make([]llm.Message, 0, len(request.Messages)+1)
	history = append(history, llm.Message{Role: constant.ChatMessageRoleSystem, Content: systemMessage})
	for _, msg := range request.Messages {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// maybeAutoName names the room once it holds enough context. Naming is
// decoration: every failure degrades to an outcome that is logged and
// absorbed, never a turn failure.
func (cs *chatService) maybeAutoName(ctx context.Context, uow unitofwork.UnitOfWork, roomId uuid.UUID) NamingOutcome {
	outcome := cs.runAutoName(ctx, uow, roomId)

	switch outcome.Status {
	case NamingProduced:
		cs.logger.Info(constant.ModuleChat, "Chat room named", map[string]interface{}{
			"chat_room_id": roomId.String(),
			"name":         outcome.Name,
		})
	case NamingFailed:
		cs.logger.Warn(constant.ModuleChat, "Chat room naming failed", map[string]interface{}{
			"chat_room_id": roomId.String(),
			"reason":       outcome.Reason,
		})
	}
	return outcome
}

func (cs *chatService) runAutoName(ctx context.Context, uow unitofwork.UnitOfWork, roomId uuid.UUID) NamingOutcome {
	count, err := uow.ChatMessageRepository().Count(ctx, specification.ByChatRoomID{ChatRoomID: roomId})
	if err != nil {
		return failedNaming(fmt.Sprintf("count messages: %v", err))
	}
	if count < constant.AutoNameThreshold {
		return skippedNaming("below threshold")
	}

	room, err := uow.ChatRoomRepository().FindOne(ctx, specification.ByID{ID: roomId})
	if err != nil {
		return failedNaming(fmt.Sprintf("load room: %v", err))
	}
	if room == nil {
		return skippedNaming("room no longer exists")
	}
	if room.HasName() {
		return skippedNaming("already named")
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatRoomID{ChatRoomID: roomId},
		specification.OrderBy{Field: "created_at", Desc: false},
		specification.Pagination{Limit: constant.RoomNamingContextLimit},
	)
	if err != nil {
		return failedNaming(fmt.Sprintf("load naming context: %v", err))
	}
	if len(messages) == 0 {
		return skippedNaming("no messages")
	}

	name, err := cs.generateRoomName(ctx, messages)
	if err != nil {
		return failedNaming(fmt.Sprintf("generate name: %v", err))
	}
	if name == "" {
		return failedNaming("model produced an empty name")
	}

	renamed, err := uow.ChatRoomRepository().Rename(ctx, roomId, name)
	if err != nil {
		return failedNaming(fmt.Sprintf("persist name: %v", err))
	}
	if !renamed {
		return skippedNaming("room no longer exists")
	}
	return producedName(name)
}

func (cs *chatService) generateRoomName(ctx context.Context, messages []*entity.ChatMessage) (string, error) {
	summary := make([]string, 0, len(messages))
	for _, msg := range messages {
		label := constant.RoomNamingAssistantLabel
		if msg.Role == constant.ChatMessageRoleUser {
			label = constant.RoomNamingUserLabel
		}
		summary = append(summary, fmt.Sprintf("%s: %s", label, msg.Content))
	}

	history := []llm.Message{
		{Role: constant.ChatMessageRoleSystem, Content: constant.RoomNamingSystemPromptV1},
		{Role: constant.ChatMessageRoleUser, Content: fmt.Sprintf(constant.RoomNamingUserPromptV1, strings.Join(summary, "\n"))},
	}

	name, err := cs.llmProvider.Chat(ctx, history,
		llm.WithModel(cs.namingModel),
		llm.WithTemperature(0.3),
		llm.WithMaxTokens(50),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func (cs *chatService) publishActivity(ctx context.Context, roomId uuid.UUID, at time.Time) {
	if err := cs.publisher.Publish(ctx, NewRoomActivityEvent(roomId, at)); err != nil {
		cs.logger.Warn(constant.ModuleChat, "Failed to publish room activity", map[string]interface{}{
			"chat_room_id": roomId.String(),
			"error":        err.Error(),
		})
	}
}
