package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketing-platform/middleware"
	"marketing-platform/pkg/apperrors"
	"marketing-platform/pkg/logger"
	"marketing-platform/pkg/token"
	"marketing-platform/utils"
)

type fakeRepo struct {
	users map[string]*AdminUser
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[string]*AdminUser{}}
}

func (f *fakeRepo) Create(_ context.Context, email, name, passwordHash string) (*AdminUser, error) {
	if _, exists := f.users[email]; exists {
		return nil, ErrEmailTaken
	}
	user := &AdminUser{
		ID:        "user-" + email,
		Email:     email,
		Name:      name,
		Password:  passwordHash,
		Role:      "admin",
		CreatedAt: time.Now().UTC(),
	}
	f.users[email] = user
	return user, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*AdminUser, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func setup(t *testing.T) (*echo.Echo, *fakeRepo, *token.Service) {
	t.Helper()
	repo := newFakeRepo()
	tokens := token.NewService("test-secret", 24*time.Hour)
	h := NewHandler(repo, tokens, logger.Get())

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Get())
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	e.GET("/api/auth/me", h.Me, middleware.JWT(tokens))
	return e, repo, tokens
}

func doJSON(e *echo.Echo, method, path, body, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterThenDuplicate(t *testing.T) {
	e, _, _ := setup(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","name":"Alice","password":"longenough"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.UserID)

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","name":"Alice","password":"longenough"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, "User already exists", errBody["message"])
}

func TestRegisterValidation(t *testing.T) {
	e, _, _ := setup(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","name":"Alice","password":"longenough"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/auth/register",
		`{"email":"a@b.com","name":"Alice","password":"short"}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestLoginRoundTrip(t *testing.T) {
	e, repo, tokens := setup(t)

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), "admin@example.com", "Admin", hash)
	require.NoError(t, err)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bearer", body.TokenType)

	sub, err := tokens.Verify(body.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sub)
}

func TestLoginRejections(t *testing.T) {
	e, repo, _ := setup(t)

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), "admin@example.com", "Admin", hash)
	require.NoError(t, err)

	// Wrong password and unknown email produce the same status and message.
	recWrong := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"bad"}`, "")
	recUnknown := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"bad"}`, "")

	assert.Equal(t, http.StatusUnauthorized, recWrong.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknown.Code)

	var w, u map[string]any
	require.NoError(t, json.Unmarshal(recWrong.Body.Bytes(), &w))
	require.NoError(t, json.Unmarshal(recUnknown.Body.Bytes(), &u))
	assert.Equal(t, w["message"], u["message"])
	assert.NotContains(t, recWrong.Body.String(), "access_token")
}

func TestMe(t *testing.T) {
	e, repo, tokens := setup(t)

	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), "admin@example.com", "Admin", hash)
	require.NoError(t, err)

	tok, err := tokens.Issue("admin@example.com")
	require.NoError(t, err)

	rec := doJSON(e, http.MethodGet, "/api/auth/me", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "admin@example.com", body["email"])
	assert.Equal(t, "admin", body["role"])
	assert.NotContains(t, rec.Body.String(), hash)

	// No token at all.
	rec = doJSON(e, http.MethodGet, "/api/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
