package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/luminaai/lumina/internal/api"
)

// fakeBackend is an in-memory Backend double. It mirrors the real backend's
// behavior: sends are answered with an echo reply and both sides of the
// exchange are recorded in the conversation's history.
type fakeBackend struct {
	mu       sync.Mutex
	chats    []*api.Chat
	messages map[int64][]*api.Message
	nextID   int64
	credits  int64

	listChatsErr    error
	createErr       error
	renameErr       error
	deleteErr       error
	listMessagesErr error
	sendErr         error

	renameCalls       int
	listMessagesCalls int
	sendCalls         []*api.SendMessageRequest

	// When set, SendMessage signals sendStarted then blocks on sendRelease.
	sendStarted chan struct{}
	sendRelease chan struct{}
	// Same, for CreateChat.
	createStarted chan struct{}
	createRelease chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		messages: map[int64][]*api.Message{},
		credits:  42,
	}
}

func (f *fakeBackend) seedChat(title string, createdAt time.Time) *api.Chat {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	chat := &api.Chat{ID: f.nextID, Title: title, CreatedAt: api.NewTime(createdAt)}
	f.chats = append(f.chats, chat)
	return chat
}

func (f *fakeBackend) seedMessages(chatID int64, messages ...*api.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[chatID] = append(f.messages[chatID], messages...)
}

func (f *fakeBackend) ListChats(ctx context.Context) ([]*api.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listChatsErr != nil {
		return nil, f.listChatsErr
	}
	chats := make([]*api.Chat, len(f.chats))
	copy(chats, f.chats)
	return chats, nil
}

func (f *fakeBackend) CreateChat(ctx context.Context, title string) (*api.Chat, error) {
	f.mu.Lock()
	started, release := f.createStarted, f.createRelease
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	chat := &api.Chat{ID: f.nextID, Title: title, CreatedAt: api.NewTime(time.Now().UTC())}
	f.chats = append(f.chats, chat)
	return chat, nil
}

func (f *fakeBackend) RenameChat(ctx context.Context, id int64, title string) (*api.Chat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.renameCalls++
	if f.renameErr != nil {
		return nil, f.renameErr
	}
	for _, chat := range f.chats {
		if chat.ID == id {
			chat.Title = title
			return &api.Chat{ID: chat.ID, Title: chat.Title, CreatedAt: chat.CreatedAt}, nil
		}
	}
	return nil, fmt.Errorf("chat %d not found", id)
}

func (f *fakeBackend) DeleteChat(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	chats := f.chats[:0:0]
	for _, chat := range f.chats {
		if chat.ID != id {
			chats = append(chats, chat)
		}
	}
	f.chats = chats
	delete(f.messages, id)
	return nil
}

func (f *fakeBackend) ListMessages(ctx context.Context, chatID int64) ([]*api.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listMessagesCalls++
	if f.listMessagesErr != nil {
		return nil, f.listMessagesErr
	}
	messages := make([]*api.Message, len(f.messages[chatID]))
	copy(messages, f.messages[chatID])
	return messages, nil
}

func (f *fakeBackend) SendMessage(ctx context.Context, chatID int64, request *api.SendMessageRequest) (*api.SendMessageResponse, error) {
	f.mu.Lock()
	f.sendCalls = append(f.sendCalls, request)
	started, release := f.sendStarted, f.sendRelease
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	now := time.Now().UTC()
	userMessage := &api.Message{Role: api.RoleUser, Content: request.Content, CreatedAt: api.NewTime(now)}
	assistantMessage := &api.Message{Role: api.RoleAssistant, Content: "echo: " + request.Content, CreatedAt: api.NewTime(now)}
	if request.ThinkingMode {
		assistantMessage.Thinking = "pondering " + request.Content
	}
	f.messages[chatID] = append(f.messages[chatID], userMessage, assistantMessage)
	f.credits--
	return &api.SendMessageResponse{
		UserMessage:      userMessage,
		AssistantMessage: assistantMessage,
		RemainingCredits: f.credits,
	}, nil
}
