package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/mock"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/internal/store"
	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postJSON(h http.HandlerFunc, target string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// ---- register ----

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().RegisterUser(gomock.Any(), models.RegisterRequest{
		Email:    "a@x.com",
		Password: "Secr3t!",
		Name:     "A",
	}).Return(models.User{
		UserID:         1,
		Email:          "a@x.com",
		Name:           "A",
		PasswordDigest: "$2a$10$secret-digest",
		CreatedAt:      createdAt,
	}, nil)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.register, "/api/user/register", models.RegisterRequest{
		Email:    "a@x.com",
		Password: "Secr3t!",
		Name:     "A",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var view models.UserView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Equal(t, int64(1), view.ID)
	assert.Equal(t, "a@x.com", view.Email)
	assert.Equal(t, "A", view.Name)

	// the digest never appears in the response body
	assert.NotContains(t, rr.Body.String(), "secret-digest")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newHandlerWithAuthService(mock.NewMockAuthService(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader([]byte("{not json")))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	h.register(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.register, "/api/user/register", models.RegisterRequest{Email: "a@x.com"})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.register, "/api/user/register", models.RegisterRequest{
		Email:    "taken@x.com",
		Password: "pw",
		Name:     "T",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "email already exists", decodeErrorBody(t, rr).Message)
}

func TestRegister_StoreFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, assert.AnError)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.register, "/api/user/register", models.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw",
		Name:     "A",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	// the underlying error text must not leak to the client
	assert.NotContains(t, rr.Body.String(), assert.AnError.Error())
}

// ---- login ----

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := models.User{UserID: 42, Email: "a@x.com", Name: "A", PasswordDigest: "digest"}

	authSvc := mock.NewMockAuthService(ctrl)
	gomock.InOrder(
		authSvc.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@x.com", Password: "Secr3t!"}).
			Return(user, nil),
		authSvc.EXPECT().CreateToken(gomock.Any(), user).
			Return(models.Token{SignedString: "signed.jwt.token", UserID: 42}, nil),
	)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.login, "/api/user/login", models.LoginRequest{Email: "a@x.com", Password: "Secr3t!"})

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, int64(42), resp.User.ID)
	assert.Equal(t, "a@x.com", resp.User.Email)

	assert.NotContains(t, rr.Body.String(), "digest")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidCredentials)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.login, "/api/user/login", models.LoginRequest{Email: "a@x.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, msgInvalidCredentials, decodeErrorBody(t, rr).Message)
}

func TestLogin_TokenCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authSvc := mock.NewMockAuthService(ctrl)
	gomock.InOrder(
		authSvc.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return(models.User{UserID: 1}, nil),
		authSvc.EXPECT().CreateToken(gomock.Any(), gomock.Any()).
			Return(models.Token{}, service.ErrTokenCreationFailed),
	)

	h := newHandlerWithAuthService(authSvc)
	rr := postJSON(h.login, "/api/user/login", models.LoginRequest{Email: "a@x.com", Password: "pw"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
