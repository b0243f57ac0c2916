package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendtrack/internal/errors"
	"spendtrack/internal/models"
	"spendtrack/internal/services"
	"spendtrack/internal/validator"
)

// --- mock user service ---

type mockUserService struct {
	createUserFn     func(username, email, password string) (*models.User, error)
	authenticateFn   func(email, password string) (*models.User, error)
	getUserByIDFn    func(id uint) (*models.User, error)
	deleteUserFn     func(id uint) error
	verifyPasswordFn func(user *models.User, password string) bool
	setPasswordFn    func(user *models.User, password string) error
}

func (m *mockUserService) CreateUser(username, email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) Authenticate(email, password string) (*models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id uint) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) DeleteUser(id uint) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(id)
	}
	return nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) SetPassword(user *models.User, password string) error {
	if m.setPasswordFn != nil {
		return m.setPasswordFn(user, password)
	}
	return nil
}

var _ services.UserServicer = (*mockUserService)(nil)

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

// injectUserID simulates the auth middleware by setting a fixed user ID.
func injectUserID(uid uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uid)
		c.Next()
	}
}

// doRequest performs a JSON request against the router.
func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/register", handler.Register)
	r.POST("/auth/login", handler.Login)
	auth := r.Group("", injectUserID(1))
	auth.GET("/profile", handler.GetProfile)
	auth.DELETE("/profile", handler.DeleteProfile)
	return r
}

func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mock := &mockUserService{
			createUserFn: func(username, email, password string) (*models.User, error) {
				u := &models.User{Username: username, Email: email}
				u.ID = 7
				return u, nil
			},
		}
		router := setupAuthRouter(NewAuthHandler(mock))

		rec := doRequest(router, "POST", "/auth/register",
			`{"username":"alice","email":"alice@test.com","password":"password123"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		result := decodeBody(t, rec)
		if result["token"] == "" {
			t.Error("expected a token in the response")
		}
		user := result["user"].(map[string]interface{})
		if user["username"] != "alice" {
			t.Errorf("expected username alice, got %v", user["username"])
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		mock := &mockUserService{
			createUserFn: func(username, email, password string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		}
		router := setupAuthRouter(NewAuthHandler(mock))

		rec := doRequest(router, "POST", "/auth/register",
			`{"username":"alice","email":"alice@test.com","password":"password123"}`)
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		router := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(router, "POST", "/auth/register", `{"username":"alice"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("short_password", func(t *testing.T) {
		router := setupAuthRouter(NewAuthHandler(&mockUserService{}))

		rec := doRequest(router, "POST", "/auth/register",
			`{"username":"alice","email":"alice@test.com","password":"short"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		mock := &mockUserService{
			authenticateFn: func(email, password string) (*models.User, error) {
				u := &models.User{Username: "alice", Email: email}
				u.ID = 7
				return u, nil
			},
		}
		router := setupAuthRouter(NewAuthHandler(mock))

		rec := doRequest(router, "POST", "/auth/login",
			`{"email":"alice@test.com","password":"password123"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := decodeBody(t, rec)
		if result["token"] == "" {
			t.Error("expected a token in the response")
		}
	})

	t.Run("invalid_credentials", func(t *testing.T) {
		mock := &mockUserService{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, apperrors.ErrInvalidCredentials
			},
		}
		router := setupAuthRouter(NewAuthHandler(mock))

		rec := doRequest(router, "POST", "/auth/login",
			`{"email":"alice@test.com","password":"wrong"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestGetProfile(t *testing.T) {
	mock := &mockUserService{
		getUserByIDFn: func(id uint) (*models.User, error) {
			u := &models.User{Username: "alice", Email: "alice@test.com"}
			u.ID = id
			return u, nil
		},
	}
	router := setupAuthRouter(NewAuthHandler(mock))

	rec := doRequest(router, "GET", "/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := decodeBody(t, rec)
	user := result["user"].(map[string]interface{})
	if user["id"].(float64) != 1 {
		t.Errorf("expected the injected user id, got %v", user["id"])
	}
}

func TestDeleteProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var deleted uint
		mock := &mockUserService{
			deleteUserFn: func(id uint) error {
				deleted = id
				return nil
			},
		}
		router := setupAuthRouter(NewAuthHandler(mock))

		rec := doRequest(router, "DELETE", "/profile", "")
		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if deleted != 1 {
			t.Errorf("expected delete for user 1, got %d", deleted)
		}
	})
}
