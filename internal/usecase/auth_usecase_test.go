package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ehr-vaccine-service/config"
	"ehr-vaccine-service/internal/delivery/dto"
	"ehr-vaccine-service/internal/domain/entity"
	"ehr-vaccine-service/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	usecase AuthUsecase
	users   *fakeUserRepo
	tokens  *fakeTokenStore
	audit   *fakeAuditService
	jwt     *jwt.JWTService
	user    *entity.User
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		ID:       uuid.New(),
		RoleID:   entity.RoleIDClinician,
		Username: "nurse",
		Password: string(hash),
		FullName: "Night Nurse",
	}
	users := &fakeUserRepo{users: map[string]*entity.User{user.Username: user}}
	tokens := &fakeTokenStore{tokens: map[string]time.Duration{}}
	audit := &fakeAuditService{}
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 15 * time.Minute})

	return &authFixture{
		usecase: NewAuthUsecase(nil, quietLogger(), users, jwtService, tokens, audit),
		users:   users,
		tokens:  tokens,
		audit:   audit,
		jwt:     jwtService,
		user:    user,
	}
}

func TestLogin_IssuesStoredToken(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "nurse", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	claims, err := f.jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, f.user.ID, claims.UserID)
	assert.Equal(t, entity.RoleIDClinician, claims.RoleID)
	assert.Equal(t, 15*time.Minute, f.tokens.tokens[claims.TokenID])
	require.Len(t, f.audit.calls, 1)
	assert.Equal(t, entity.AuditActionUserLogin, f.audit.calls[0].action)
}

func TestLogin_Rejections(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "nurse", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	inactive := false
	f.user.IsActive = &inactive
	_, err = f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "nurse", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestLogin_TokenStoreFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.err = errors.New("redis down")

	_, err := f.usecase.Login(context.Background(), &dto.LoginRequest{Username: "nurse", Password: "correct-horse"})
	assert.Error(t, err)
}

func TestLogout_RevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.tokens.tokens["tok-1"] = time.Minute

	require.NoError(t, f.usecase.Logout(context.Background(), f.user.ID, "tok-1"))
	assert.NotContains(t, f.tokens.tokens, "tok-1")
	require.Len(t, f.audit.calls, 1)
	assert.Equal(t, entity.AuditActionUserLogout, f.audit.calls[0].action)
}

func TestGetCurrentUser(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.usecase.GetCurrentUser(context.Background(), f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, "nurse", resp.Username)
	assert.Equal(t, entity.RoleClinician, resp.Role)

	_, err = f.usecase.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
