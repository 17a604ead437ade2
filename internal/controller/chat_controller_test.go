package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chat-storage-be/internal/dto"
	"chat-storage-be/internal/entity"
	"chat-storage-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubSessionService struct {
	createFn      func(req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	getAllFn      func(userId string, favoriteOnly bool) ([]*dto.SessionResponse, error)
	renameFn      func(id uint, name string) (*dto.SessionResponse, error)
	setFavoriteFn func(id uint, favorite bool) (*dto.SessionResponse, error)
	deleteFn      func(id uint) (bool, error)
}

func (s *stubSessionService) Create(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	return s.createFn(req)
}

func (s *stubSessionService) GetAll(ctx context.Context, userId string, favoriteOnly bool) ([]*dto.SessionResponse, error) {
	return s.getAllFn(userId, favoriteOnly)
}

func (s *stubSessionService) Get(ctx context.Context, id uint) (*entity.ChatSession, error) {
	return nil, nil
}

func (s *stubSessionService) Rename(ctx context.Context, id uint, name string) (*dto.SessionResponse, error) {
	return s.renameFn(id, name)
}

func (s *stubSessionService) SetFavorite(ctx context.Context, id uint, favorite bool) (*dto.SessionResponse, error) {
	return s.setFavoriteFn(id, favorite)
}

func (s *stubSessionService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(id)
}

type stubMessageService struct {
	addFn     func(sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error)
	getPageFn func(sessionId uint, page, size int) (*dto.Page[*dto.MessageResponse], error)
}

func (s *stubMessageService) Add(ctx context.Context, sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
	return s.addFn(sessionId, req)
}

func (s *stubMessageService) GetPage(ctx context.Context, sessionId uint, page, size int) (*dto.Page[*dto.MessageResponse], error) {
	return s.getPageFn(sessionId, page, size)
}

func newTestApp(sessions *stubSessionService, messages *stubMessageService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: serverutils.NewErrorHandler(nopLogger{}),
	})
	if sessions != nil {
		NewChatSessionController(sessions).RegisterRoutes(app)
	}
	if messages != nil {
		NewChatMessageController(messages).RegisterRoutes(app)
	}
	return app
}

func sampleSession() *dto.SessionResponse {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &dto.SessionResponse{
		Id:         1,
		UserId:     "u1",
		Name:       "chat1",
		IsFavorite: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func jsonRequest(method, target string, payload any) *http.Request {
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestCreateSessionReturnsBody(t *testing.T) {
	sessions := &stubSessionService{
		createFn: func(req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
			assert.Equal(t, "u1", req.UserId)
			assert.Equal(t, "chat1", req.Name)
			return sampleSession(), nil
		},
	}
	app := newTestApp(sessions, nil)

	resp, err := app.Test(jsonRequest("POST", "/sessions", map[string]string{
		"userId": "u1",
		"name":   "chat1",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(1), body.Id)
	assert.Equal(t, "chat1", body.Name)
	assert.False(t, body.IsFavorite)
}

func TestCreateSessionRejectsBlankFields(t *testing.T) {
	app := newTestApp(&stubSessionService{}, nil)

	resp, err := app.Test(jsonRequest("POST", "/sessions", map[string]string{"userId": "u1"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error   string                  `json:"error"`
		Details []serverutils.FieldError `json:"details"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Validation failed", body.Error)
	require.Len(t, body.Details, 1)
	assert.Equal(t, "name", body.Details[0].Field)
}

func TestGetAllRequiresUserId(t *testing.T) {
	app := newTestApp(&stubSessionService{}, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAllPassesFavoriteFlag(t *testing.T) {
	var gotFavorite bool
	sessions := &stubSessionService{
		getAllFn: func(userId string, favoriteOnly bool) ([]*dto.SessionResponse, error) {
			gotFavorite = favoriteOnly
			return []*dto.SessionResponse{sampleSession()}, nil
		},
	}
	app := newTestApp(sessions, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions?userId=u1&favorite=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, gotFavorite)

	var body []*dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
}

func TestRenameMissingSessionReturns404(t *testing.T) {
	sessions := &stubSessionService{
		renameFn: func(id uint, name string) (*dto.SessionResponse, error) {
			return nil, nil
		},
	}
	app := newTestApp(sessions, nil)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/sessions/99/rename?name=x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "session not found", body["error"])
}

func TestRenameRequiresName(t *testing.T) {
	app := newTestApp(&stubSessionService{}, nil)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/sessions/1/rename", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSetFavoriteRejectsNonBoolean(t *testing.T) {
	app := newTestApp(&stubSessionService{}, nil)

	resp, err := app.Test(httptest.NewRequest("PATCH", "/sessions/1/favorite?favorite=banana", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteReturns204(t *testing.T) {
	sessions := &stubSessionService{
		deleteFn: func(id uint) (bool, error) {
			assert.Equal(t, uint(1), id)
			return true, nil
		},
	}
	app := newTestApp(sessions, nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/sessions/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDeleteMissingSessionReturns404(t *testing.T) {
	sessions := &stubSessionService{
		deleteFn: func(id uint) (bool, error) {
			return false, nil
		},
	}
	app := newTestApp(sessions, nil)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/sessions/99", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvalidSessionIdReturns400(t *testing.T) {
	app := newTestApp(&stubSessionService{}, &stubMessageService{})

	for _, target := range []struct {
		method string
		url    string
	}{
		{"DELETE", "/sessions/abc"},
		{"PATCH", "/sessions/abc/rename?name=x"},
		{"PATCH", "/sessions/abc/favorite?favorite=true"},
		{"GET", "/sessions/abc/messages"},
	} {
		resp, err := app.Test(httptest.NewRequest(target.method, target.url, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "%s %s", target.method, target.url)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "invalid session id", body["error"])
	}
}

func TestGetPageDefaultsAndClamping(t *testing.T) {
	var gotPage, gotSize int
	messages := &stubMessageService{
		getPageFn: func(sessionId uint, page, size int) (*dto.Page[*dto.MessageResponse], error) {
			gotPage, gotSize = page, size
			return &dto.Page[*dto.MessageResponse]{
				Content:       []*dto.MessageResponse{},
				Page:          page,
				Size:          size,
				TotalElements: 0,
				TotalPages:    0,
			}, nil
		},
	}
	app := newTestApp(nil, messages)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/1/messages", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 20, gotSize)

	resp, err = app.Test(httptest.NewRequest("GET", "/sessions/1/messages?page=-3&size=0", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, gotPage)
	assert.Equal(t, 20, gotSize)

	resp, err = app.Test(httptest.NewRequest("GET", "/sessions/1/messages?page=2&size=5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, gotPage)
	assert.Equal(t, 5, gotSize)
}

func TestAddMessageToMissingSessionReturns404(t *testing.T) {
	messages := &stubMessageService{
		addFn: func(sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
			return nil, nil
		},
	}
	app := newTestApp(nil, messages)

	resp, err := app.Test(jsonRequest("POST", "/sessions/99/messages", map[string]string{
		"sender":  "user",
		"content": "hi",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAddMessageReturnsBody(t *testing.T) {
	messages := &stubMessageService{
		addFn: func(sessionId uint, req *dto.AddMessageRequest) (*dto.MessageResponse, error) {
			assert.Equal(t, uint(1), sessionId)
			return &dto.MessageResponse{
				Id:        5,
				SessionId: sessionId,
				Sender:    req.Sender,
				Content:   req.Content,
				CreatedAt: time.Now(),
			}, nil
		},
	}
	app := newTestApp(nil, messages)

	resp, err := app.Test(jsonRequest("POST", "/sessions/1/messages", map[string]string{
		"sender":  "assistant",
		"content": "hello there",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, uint(5), body.Id)
	assert.Equal(t, "assistant", body.Sender)
	assert.Empty(t, body.Context)
}
