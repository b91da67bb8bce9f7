package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/mock"
	"github.com/MKhiriev/go-auth-guard/internal/store"
	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "test-issuer",
		TokenDuration: time.Hour,
	}
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(mockRepo, mockHasher, testAppConfig(), logger.Nop())

	return svc, mockRepo, mockHasher
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestRegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{Email: "a@x.com", Password: "Secr3t!", Name: "A"}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{}, store.ErrNoUserWasFound),
		mockHasher.EXPECT().Hash("Secr3t!").Return("$2a$10$digest", nil),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "a@x.com", u.Email)
				assert.Equal(t, "A", u.Name)
				assert.Equal(t, "$2a$10$digest", u.PasswordDigest)

				u.UserID = 1
				u.CreatedAt = time.Now()
				return u, nil
			}),
	)

	created, err := svc.RegisterUser(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestRegisterUser_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"missing email", models.RegisterRequest{Password: "p", Name: "n"}},
		{"missing password", models.RegisterRequest{Email: "a@x.com", Name: "n"}},
		{"missing name", models.RegisterRequest{Email: "a@x.com", Password: "p"}},
		{"all empty", models.RegisterRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// no repository or hasher calls are expected
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.RegisterUser(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_DuplicateEmail_NoHashingPerformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// the hasher mock has no expectations: any Hash call fails the test
	mockRepo.EXPECT().FindUserByEmail(ctx, "taken@x.com").
		Return(models.User{UserID: 5, Email: "taken@x.com"}, nil)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{
		Email:    "taken@x.com",
		Password: "Secr3t!",
		Name:     "T",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_InsertRace_MapsToConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "race@x.com").Return(models.User{}, store.ErrNoUserWasFound),
		mockHasher.EXPECT().Hash("pw").Return("digest", nil),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists),
	)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Email: "race@x.com", Password: "pw", Name: "R"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestRegisterUser_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	dbDown := errors.New("connection refused")
	mockRepo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{}, dbDown)

	_, err := svc.RegisterUser(ctx, models.RegisterRequest{Email: "a@x.com", Password: "pw", Name: "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.NotErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	stored := models.User{
		UserID:         42,
		Email:          "a@x.com",
		Name:           "A",
		PasswordDigest: "$2a$10$digest",
	}

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(stored, nil),
		mockHasher.EXPECT().Verify("Secr3t!", "$2a$10$digest").Return(true),
	)

	user, err := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "Secr3t!"})
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestLogin_UnknownEmailAndWrongPassword_AreIndistinguishable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockHasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// case 1: account does not exist
	mockRepo.EXPECT().FindUserByEmail(ctx, "ghost@x.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknown := svc.Login(ctx, models.LoginRequest{Email: "ghost@x.com", Password: "whatever"})

	// case 2: account exists, password is wrong
	mockRepo.EXPECT().FindUserByEmail(ctx, "a@x.com").
		Return(models.User{UserID: 1, Email: "a@x.com", PasswordDigest: "digest"}, nil)
	mockHasher.EXPECT().Verify("wrong", "digest").Return(false)
	_, errWrongPass := svc.Login(ctx, models.LoginRequest{Email: "a@x.com", Password: "wrong"})

	// the anti-enumeration property: both failures are the same error value
	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLogin_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "", Password: ""})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── CreateToken / ParseToken ─────────────────────────────────────────────────

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 42, Email: "a@x.com", Name: "A"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "a@x.com", parsed.Claims.Email)
	assert.Equal(t, "A", parsed.Claims.Name)
	assert.Equal(t, "test-issuer", parsed.Claims.Issuer)
}

func TestParseToken_Expired(t *testing.T) {
	// a zero TTL and a negative TTL both issue tokens that are already
	// expired, and verification classifies them as such
	tests := []struct {
		name string
		ttl  time.Duration
	}{
		{"zero ttl", 0},
		{"negative ttl", -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mock.NewMockUserRepository(ctrl)
			mockHasher := mock.NewMockPasswordHasher(ctrl)

			cfg := testAppConfig()
			cfg.TokenDuration = tt.ttl
			issuing := NewAuthService(mockRepo, mockHasher, cfg, logger.Nop())

			token, err := issuing.CreateToken(context.Background(), models.User{UserID: 1, Email: "a@x.com", Name: "A"})
			require.NoError(t, err)

			verifying := NewAuthService(mockRepo, mockHasher, testAppConfig(), logger.Nop())
			_, err = verifying.ParseToken(context.Background(), token.SignedString)
			assert.ErrorIs(t, err, ErrTokenIsExpired)
		})
	}
}

func TestParseToken_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestParseToken_WrongSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockUserRepository(ctrl)
	mockHasher := mock.NewMockPasswordHasher(ctrl)

	otherKey := testAppConfig()
	otherKey.TokenSignKey = "a-different-secret"
	forger := NewAuthService(mockRepo, mockHasher, otherKey, logger.Nop())

	token, err := forger.CreateToken(context.Background(), models.User{UserID: 1, Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	svc := NewAuthService(mockRepo, mockHasher, testAppConfig(), logger.Nop())
	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenSignatureInvalid)
}

func TestParseToken_TruncatedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 1, Email: "a@x.com", Name: "A"})
	require.NoError(t, err)

	truncated := token.SignedString[:len(token.SignedString)-1]
	_, err = svc.ParseToken(ctx, truncated)
	require.Error(t, err)
}
