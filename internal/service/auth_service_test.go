package service

import (
	"context"
	"testing"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/contract"
	"bundle-store-be/internal/repository/memory"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	contract.UserRepository

	usersByPhone  map[string]*entity.User
	refreshTokens []*entity.UserRefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{usersByPhone: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.usersByPhone[user.PhoneNumber] = user
	return nil
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, s := range specs {
		if byPhone, ok := s.(specification.ByPhoneNumber); ok {
			return f.usersByPhone[byPhone.PhoneNumber], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	f.refreshTokens = append(f.refreshTokens, token)
	return nil
}

func (f *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	for _, s := range specs {
		if byHash, ok := s.(specification.ByTokenHash); ok {
			for _, token := range f.refreshTokens {
				if token.TokenHash == byHash.Hash && !token.Revoked {
					return token, nil
				}
			}
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	for _, token := range f.refreshTokens {
		if token.TokenHash == tokenHash {
			token.Revoked = true
		}
	}
	return nil
}

type fakeAuthUow struct {
	fakeUnitOfWork
	userRepo *fakeUserRepo
}

func (f *fakeAuthUow) UserRepository() contract.UserRepository {
	return f.userRepo
}

type fakeAuthUowFactory struct {
	uow *fakeAuthUow
}

func (f *fakeAuthUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newAuthFixture() (*fakeUserRepo, *memory.SessionRepository, IAuthService) {
	userRepo := newFakeUserRepo()
	sessions := memory.NewSessionRepository()
	uow := &fakeAuthUow{userRepo: userRepo}
	svc := NewAuthService(&fakeAuthUowFactory{uow: uow}, sessions, nil)
	return userRepo, sessions, svc
}

func registeredUser(t *testing.T, svc IAuthService) *dto.AuthResponse {
	t.Helper()
	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		PhoneNumber: "+252611231234",
		FullName:    "Ayaan Warsame",
		Password:    "hunter22",
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	return res
}

func TestRegisterOpensAuthenticatedSession(t *testing.T) {
	_, sessions, svc := newAuthFixture()

	res := registeredUser(t, svc)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, store.StateAuthenticated, res.Session.State)

	session, found := sessions.Get(res.User.Id.String())
	assert.True(t, found)
	assert.Equal(t, "+252611231234", session.PhoneNumber)
}

func TestRegisterRejectsDuplicatePhone(t *testing.T) {
	_, _, svc := newAuthFixture()
	registeredUser(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		PhoneNumber: "+252611231234",
		FullName:    "Someone Else",
		Password:    "password",
	}, "127.0.0.1", "test-agent")
	assert.Error(t, err)
}

func TestLoginWithWrongPassword(t *testing.T) {
	_, _, svc := newAuthFixture()
	registeredUser(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "+252611231234",
		Password:    "wrong",
	}, "127.0.0.1", "test-agent")
	assert.Error(t, err)
}

func TestLoginRememberMeIssuesRefreshToken(t *testing.T) {
	userRepo, _, svc := newAuthFixture()
	registeredUser(t, svc)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "+252611231234",
		Password:    "hunter22",
		RememberMe:  true,
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, res.RefreshToken)
	assert.Len(t, userRepo.refreshTokens, 1)

	// Stored hashed, never raw.
	assert.NotEqual(t, res.RefreshToken, userRepo.refreshTokens[0].TokenHash)
}

func TestLogoutClearsSession(t *testing.T) {
	_, _, svc := newAuthFixture()
	res := registeredUser(t, svc)

	session, err := svc.CurrentSession(context.Background(), res.User.Id)
	assert.NoError(t, err)
	assert.NotNil(t, session)

	err = svc.Logout(context.Background(), res.User.Id, "")
	assert.NoError(t, err)

	// Subsequent reads must see no session at all.
	session, err = svc.CurrentSession(context.Background(), res.User.Id)
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	userRepo, sessions, svc := newAuthFixture()
	registeredUser(t, svc)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		PhoneNumber: "+252611231234",
		Password:    "hunter22",
		RememberMe:  true,
	}, "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, res.RefreshToken)

	// The raw token is what the client holds; the repo only sees the hash.
	err = svc.Logout(context.Background(), res.User.Id, res.RefreshToken)
	assert.NoError(t, err)

	assert.Len(t, userRepo.refreshTokens, 1)
	assert.True(t, userRepo.refreshTokens[0].Revoked)

	_, found := sessions.Get(res.User.Id.String())
	assert.False(t, found)
}

func TestCurrentSessionUnknownUser(t *testing.T) {
	_, _, svc := newAuthFixture()

	session, err := svc.CurrentSession(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, session)
}
