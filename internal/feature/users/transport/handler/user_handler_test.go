package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/users/usecase"
	jwtmw "item_backend/internal/platform/jwt"
)

// mockUserUsecase is a mock implementation of the UserUsecase interface.
type mockUserUsecase struct {
	UpdateMeFunc func(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error)
	ListFunc     func(ctx context.Context, offset, limit int) ([]entity.User, error)
	GetByIDFunc  func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserUsecase) UpdateMe(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error) {
	if m.UpdateMeFunc != nil {
		return m.UpdateMeFunc(ctx, current, email, username, fullName)
	}
	return current, nil
}

func (m *mockUserUsecase) List(ctx context.Context, offset, limit int) ([]entity.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockUserUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, usecase.ErrUserNotFound
}

// newUserRouter builds a router with a stub guard that injects the given user.
func newUserRouter(uc *mockUserUsecase, user *entity.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(jwtmw.ContextUser, user)
			c.Set(jwtmw.ContextUserID, user.ID)
		})
	}
	h := NewUserHandler(uc)
	r.GET("/users/me", h.Me)
	r.PUT("/users/me", h.UpdateMe)
	r.GET("/users", h.List)
	r.GET("/users/:id", h.GetByID)
	return r
}

func caller() *entity.User {
	return &entity.User{ID: 5, Email: "me@example.com", Username: "me", FullName: "Me", HashedPassword: "digest", IsActive: true}
}

func TestUserHandler_Me(t *testing.T) {
	router := newUserRouter(&mockUserUsecase{}, caller())

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(5), resp["id"])
	assert.Equal(t, "me@example.com", resp["email"])
	assert.NotContains(t, w.Body.String(), "digest")
}

func TestUserHandler_Me_NoGuardContext(t *testing.T) {
	router := newUserRouter(&mockUserUsecase{}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserHandler_UpdateMe(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    gin.H
		updateFunc     func(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: gin.H{"full_name": "New Name"},
			updateFunc: func(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error) {
				current.FullName = *fullName
				return current, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid email address",
			requestBody:    gin.H{"email": "not-an-email"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "email taken",
			requestBody: gin.H{"email": "taken@example.com"},
			updateFunc: func(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error) {
				return nil, usecase.ErrEmailTaken
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "unexpected storage fault",
			requestBody: gin.H{"username": "renamed"},
			updateFunc: func(ctx context.Context, current *entity.User, email, username, fullName *string) (*entity.User, error) {
				return nil, errors.New("database gone")
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newUserRouter(&mockUserUsecase{UpdateMeFunc: tt.updateFunc}, caller())

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPut, "/users/me", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUserHandler_List(t *testing.T) {
	uc := &mockUserUsecase{
		ListFunc: func(ctx context.Context, offset, limit int) ([]entity.User, error) {
			assert.Equal(t, 1, offset)
			assert.Equal(t, 2, limit)
			return []entity.User{{ID: 2, Email: "b@example.com"}, {ID: 3, Email: "c@example.com"}}, nil
		},
	}
	router := newUserRouter(uc, caller())

	req, _ := http.NewRequest(http.MethodGet, "/users?skip=1&limit=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestUserHandler_List_RejectsNonNumericPagination(t *testing.T) {
	uc := &mockUserUsecase{
		ListFunc: func(ctx context.Context, offset, limit int) ([]entity.User, error) {
			t.Error("List must not be called for unparseable pagination")
			return nil, nil
		},
	}
	router := newUserRouter(uc, caller())

	for _, query := range []string{"?limit=abc", "?skip=1.5"} {
		req, _ := http.NewRequest(http.MethodGet, "/users"+query, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}
}

func TestUserHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc := &mockUserUsecase{
			GetByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: id, Email: "u@example.com"}, nil
			},
		}
		router := newUserRouter(uc, caller())

		req, _ := http.NewRequest(http.MethodGet, "/users/3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		router := newUserRouter(&mockUserUsecase{}, caller())

		req, _ := http.NewRequest(http.MethodGet, "/users/99", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp gin.H
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "User not found", resp["error"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := newUserRouter(&mockUserUsecase{}, caller())

		req, _ := http.NewRequest(http.MethodGet, "/users/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
