package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"med-voice-be/internal/entity"
	"med-voice-be/internal/pkg/logger"
	"med-voice-be/internal/repository/contract"
	"med-voice-be/internal/repository/specification"
	"med-voice-be/internal/repository/unitofwork"
	"med-voice-be/pkg/events"
	"med-voice-be/pkg/llm"

	"github.com/google/uuid"
)

// In-memory doubles for the persistence and collaborator boundaries. The
// repository fakes interpret the same specifications the GORM
// implementations do, so service-level expectations about filtering and
// ordering hold without a database.

type fakeChatRoomRepo struct {
	mu      sync.Mutex
	rooms   map[uuid.UUID]*entity.ChatRoom
	touched []uuid.UUID

	createErr error
	findErr   error
	renameErr error
}

func newFakeChatRoomRepo() *fakeChatRoomRepo {
	return &fakeChatRoomRepo{rooms: map[uuid.UUID]*entity.ChatRoom{}}
}

func (r *fakeChatRoomRepo) Create(_ context.Context, room *entity.ChatRoom) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *room
	r.rooms[room.Id] = &copied
	return nil
}

func (r *fakeChatRoomRepo) Rename(_ context.Context, id uuid.UUID, name string) (bool, error) {
	if r.renameErr != nil {
		return false, r.renameErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok || room.IsDeleted {
		return false, nil
	}
	room.Name = &name
	return true, nil
}

func (r *fakeChatRoomRepo) Touch(_ context.Context, id uuid.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched = append(r.touched, id)
	if room, ok := r.rooms[id]; ok {
		room.UpdatedAt = &at
	}
	return nil
}

func (r *fakeChatRoomRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[id]
	if !ok || room.IsDeleted {
		return false, nil
	}
	room.IsDeleted = true
	return true, nil
}

func (r *fakeChatRoomRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatRoom, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	rooms := r.filter(specs)
	if len(rooms) == 0 {
		return nil, nil
	}
	copied := *rooms[0]
	return &copied, nil
}

func (r *fakeChatRoomRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatRoom, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.filter(specs), nil
}

func (r *fakeChatRoomRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs))), nil
}

func (r *fakeChatRoomRepo) filter(specs []specification.Specification) []*entity.ChatRoom {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ChatRoom
	for _, room := range r.rooms {
		if room.IsDeleted {
			continue
		}
		match := true
		for _, spec := range specs {
			if byID, ok := spec.(specification.ByID); ok && room.Id != byID.ID {
				match = false
			}
		}
		if match {
			copied := *room
			out = append(out, &copied)
		}
	}

	for _, spec := range specs {
		if order, ok := spec.(specification.OrderBy); ok && order.Field == "updated_at" {
			sort.Slice(out, func(i, j int) bool {
				ti, tj := roomActivity(out[i]), roomActivity(out[j])
				if order.Desc {
					return ti.After(tj)
				}
				return ti.Before(tj)
			})
		}
	}
	return out
}

func roomActivity(room *entity.ChatRoom) time.Time {
	if room.UpdatedAt != nil {
		return *room.UpdatedAt
	}
	return room.CreatedAt
}

type fakeChatMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.ChatMessage

	createErr error
	countErr  error
	findErr   error
}

func newFakeChatMessageRepo() *fakeChatMessageRepo {
	return &fakeChatMessageRepo{}
}

func (r *fakeChatMessageRepo) Create(_ context.Context, message *entity.ChatMessage) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *fakeChatMessageRepo) DeleteByChatRoomId(_ context.Context, roomId uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var affected int64
	for _, msg := range r.messages {
		if msg.ChatRoomId == roomId && !msg.IsDeleted {
			msg.IsDeleted = true
			affected++
		}
	}
	return affected, nil
}

func (r *fakeChatMessageRepo) FindOne(_ context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	messages := r.filter(specs)
	if len(messages) == 0 {
		return nil, nil
	}
	return messages[0], nil
}

func (r *fakeChatMessageRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.filter(specs), nil
}

func (r *fakeChatMessageRepo) Count(_ context.Context, specs ...specification.Specification) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.filter(specs))), nil
}

func (r *fakeChatMessageRepo) filter(specs []specification.Specification) []*entity.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.ChatMessage
	for _, msg := range r.messages {
		if msg.IsDeleted {
			continue
		}
		match := true
		for _, spec := range specs {
			if byRoom, ok := spec.(specification.ByChatRoomID); ok && msg.ChatRoomId != byRoom.ChatRoomID {
				match = false
			}
		}
		if match {
			copied := *msg
			out = append(out, &copied)
		}
	}

	limit := 0
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			if s.Field == "created_at" {
				sort.SliceStable(out, func(i, j int) bool {
					if s.Desc {
						return out[i].CreatedAt.After(out[j].CreatedAt)
					}
					return out[i].CreatedAt.Before(out[j].CreatedAt)
				})
			}
		case specification.Pagination:
			limit = s.Limit
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

type fakeUnitOfWork struct {
	roomRepo    *fakeChatRoomRepo
	messageRepo *fakeChatMessageRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		roomRepo:    newFakeChatRoomRepo(),
		messageRepo: newFakeChatMessageRepo(),
	}
}

func (u *fakeUnitOfWork) NewUnitOfWork(_ context.Context) unitofwork.UnitOfWork { return u }
func (u *fakeUnitOfWork) Begin(_ context.Context) error                         { return nil }
func (u *fakeUnitOfWork) Commit() error                                         { return nil }
func (u *fakeUnitOfWork) Rollback() error                                       { return nil }

func (u *fakeUnitOfWork) ChatRoomRepository() contract.ChatRoomRepository {
	return u.roomRepo
}

func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.messageRepo
}

// fakeLLM replays canned replies in order and records each call's resolved
// options for assertions on model routing and temperature.
type llmCall struct {
	history []llm.Message
	opts    llm.Options
}

type fakeLLM struct {
	mu      sync.Mutex
	replies []string
	err     error
	calls   []llmCall
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var opts llm.Options
	for _, opt := range options {
		opt(&opts)
	}
	f.calls = append(f.calls, llmCall{history: history, opts: opts})

	if f.err != nil {
		return "", f.err
	}
	if len(f.replies) == 0 {
		return "", nil
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, evt events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

func (f *fakePublisher) published() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}
