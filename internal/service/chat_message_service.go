package service

import (
	"context"
	"time"

	"chat-storage-be/internal/dto"
	"chat-storage-be/internal/entity"
	"chat-storage-be/internal/repository/specification"
	"chat-storage-be/internal/repository/unitofwork"
)

// IChatMessageService is the message half of the Session Store. Both
// operations resolve the owning session first; a nil result means the
// session is absent or soft-deleted.
type IChatMessageService interface {
	Add(ctx context.Context, sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error)
	GetPage(ctx context.Context, sessionId uint, page, size int) (*dto.Page[*dto.MessageResponse], error)
}

type chatMessageService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionService IChatSessionService
}

func NewChatMessageService(
	uowFactory unitofwork.RepositoryFactory,
	sessionService IChatSessionService,
) IChatMessageService {
	return &chatMessageService{
		uowFactory:     uowFactory,
		sessionService: sessionService,
	}
}

// Add appends one message to a live session. The liveness check and the
// insert are two separate storage round trips; a delete committing in
// between leaves an orphaned-but-invisible message, which is accepted.
func (s *chatMessageService) Add(ctx context.Context, sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
	session, err := s.sessionService.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	message := entity.ChatMessage{
		SessionId: session.Id,
		Sender:    req.Sender,
		Content:   req.Content,
		Context:   req.Context,
		CreatedAt: time.Now(),
	}

	if err := uow.ChatMessageRepository().Create(ctx, &message); err != nil {
		return nil, err
	}

	return messageToResponse(&message), nil
}

// GetPage returns the zero-based page of a session's messages in creation
// order (created_at, then id for ties). Pages past the end are empty, not
// errors.
func (s *chatMessageService) GetPage(ctx context.Context, sessionId uint, page, size int) (*dto.Page[*dto.MessageResponse], error) {
	session, err := s.sessionService.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatMessageRepository()

	scope := []specification.Specification{
		specification.BySessionID{SessionID: session.Id},
		specification.SessionAlive{},
	}

	total, err := repo.Count(ctx, scope...)
	if err != nil {
		return nil, err
	}

	messages, err := repo.FindAll(ctx, append(scope,
		specification.OrderBy{Field: "chat_messages.created_at"},
		specification.OrderBy{Field: "chat_messages.id"},
		specification.Pagination{Limit: size, Offset: page * size},
	)...)
	if err != nil {
		return nil, err
	}

	content := make([]*dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		content = append(content, messageToResponse(message))
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &dto.Page[*dto.MessageResponse]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func messageToResponse(message *entity.ChatMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        message.Id,
		SessionId: message.SessionId,
		Sender:    message.Sender,
		Content:   message.Content,
		Context:   message.Context,
		CreatedAt: message.CreatedAt,
	}
}
