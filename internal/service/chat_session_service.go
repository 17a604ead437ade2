package service

import (
	"context"
	"time"

	"chat-storage-be/internal/dto"
	"chat-storage-be/internal/entity"
	"chat-storage-be/internal/repository/specification"
	"chat-storage-be/internal/repository/unitofwork"
)

// IChatSessionService is the session half of the Session Store. Absent or
// soft-deleted sessions are signaled by a nil result, never by an error;
// the controller layer translates nil into 404.
type IChatSessionService interface {
	Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetAll(ctx context.Context, userId string, favoriteOnly bool) ([]*dto.SessionResponse, error)
	Get(ctx context.Context, id uint) (*entity.ChatSession, error)
	Rename(ctx context.Context, id uint, name string) (*dto.SessionResponse, error)
	SetFavorite(ctx context.Context, id uint, favorite bool) (*dto.SessionResponse, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type chatSessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatSessionService(uowFactory unitofwork.RepositoryFactory) IChatSessionService {
	return &chatSessionService{
		uowFactory: uowFactory,
	}
}

func (s *chatSessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	session := entity.ChatSession{
		UserId:     req.UserId,
		Name:       req.Name,
		IsFavorite: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// No uniqueness constraint on (userId, name); duplicates are allowed.
	if err := uow.ChatSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	return sessionToResponse(&session), nil
}

func (s *chatSessionService) GetAll(ctx context.Context, userId string, favoriteOnly bool) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.NotDeleted{},
		specification.OrderBy{Field: "created_at"},
		specification.OrderBy{Field: "id"},
	}
	if favoriteOnly {
		specs = append(specs, specification.FavoriteOnly{})
	}

	sessions, err := uow.ChatSessionRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		result = append(result, sessionToResponse(session))
	}
	return result, nil
}

// Get is the liveness gate: it resolves the session only when it exists and
// has not been soft-deleted. Every other operation goes through it first.
func (s *chatSessionService) Get(ctx context.Context, id uint) (*entity.ChatSession, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.NotDeleted{},
	)
}

func (s *chatSessionService) Rename(ctx context.Context, id uint, name string) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	// Renaming to the same value is valid and still bumps UpdatedAt.
	session.Name = name
	session.UpdatedAt = time.Now()

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

func (s *chatSessionService) SetFavorite(ctx context.Context, id uint, favorite bool) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}

	session.IsFavorite = favorite
	session.UpdatedAt = time.Now()

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return sessionToResponse(session), nil
}

// Delete soft-deletes a live session. The deletion timestamp alone marks
// finality; UpdatedAt is left untouched. A second delete finds no live
// session and reports false.
func (s *chatSessionService) Delete(ctx context.Context, id uint) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if session == nil {
		return false, nil
	}

	if err := uow.ChatSessionRepository().Delete(ctx, session.Id); err != nil {
		return false, err
	}
	return true, nil
}

func sessionToResponse(session *entity.ChatSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:         session.Id,
		UserId:     session.UserId,
		Name:       session.Name,
		IsFavorite: session.IsFavorite,
		CreatedAt:  session.CreatedAt,
		UpdatedAt:  session.UpdatedAt,
	}
}
