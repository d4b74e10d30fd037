package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"

	"bundle-store-be/internal/dto"
	"bundle-store-be/internal/entity"
	"bundle-store-be/internal/repository/memory"
	"bundle-store-be/internal/repository/specification"
	"bundle-store-be/internal/repository/unitofwork"
	"bundle-store-be/pkg/events"
	pktNats "bundle-store-be/pkg/nats"
	"bundle-store-be/pkg/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userId uuid.UUID, refreshToken string) error
	CurrentSession(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error)
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, sessions *memory.SessionRepository, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		eventPublisher: eventPublisher,
	}
}

func signAccessToken(userId uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour * 24).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func hashToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// 1. Check for existing user
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByPhoneNumber{PhoneNumber: req.PhoneNumber})
	if existing != nil {
		return nil, errors.New("phone number already registered")
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	// 3. Create User Entity
	user := &entity.User{
		Id:           uuid.New(),
		PhoneNumber:  req.PhoneNumber,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Status:       entity.UserStatusActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Registration signs the user straight in, there is no verification step.
	return s.openSession(ctx, uow, user, false, ipAddress, userAgent)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// 1. Check if user exists
	user, err := uow.UserRepository().FindOne(ctx, specification.ByPhoneNumber{PhoneNumber: req.PhoneNumber})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if user == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	// 2. Compare passwords
	err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	// 3. Check if user is blocked
	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	return s.openSession(ctx, uow, user, req.RememberMe, ipAddress, userAgent)
}

func (s *authService) openSession(ctx context.Context, uow unitofwork.UnitOfWork, user *entity.User, rememberMe bool, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	// Session goes through AUTHENTICATING before tokens are issued so a
	// half-opened session never reads as signed in.
	s.sessions.Save(&store.Session{
		UserID:      user.Id.String(),
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		State:       store.StateAuthenticating,
	})

	signedToken, err := signAccessToken(user.Id)
	if err != nil {
		s.sessions.Delete(user.Id.String())
		return nil, err
	}

	var rawRefreshToken string

	// Only create a refresh token when "Remember Me" is checked
	if rememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			s.sessions.Delete(user.Id.String())
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	session := &store.Session{
		UserID:      user.Id.String(),
		PhoneNumber: user.PhoneNumber,
		FullName:    user.FullName,
		State:       store.StateAuthenticated,
	}
	s.sessions.Save(session)

	// PUBLISH EVENT
	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "USER_LOGIN",
			Data: map[string]interface{}{
				"user_id": user.Id,
				"device":  userAgent,
				"time":    time.Now().Format(time.RFC822),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			fmt.Printf("[WARN] Failed to publish USER_LOGIN event: %v\n", err)
		}
	}

	return &dto.AuthResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		Session: dto.SessionResponse{
			UserId:      user.Id.String(),
			PhoneNumber: user.PhoneNumber,
			FullName:    user.FullName,
			State:       session.State,
		},
		User: dto.UserDTO{
			Id:          user.Id,
			PhoneNumber: user.PhoneNumber,
			FullName:    user.FullName,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, userId uuid.UUID, refreshToken string) error {
	// Clearing the in-memory session is what actually signs the user out.
	// Revoking the refresh token can fail without leaving the session alive.
	s.sessions.Delete(userId.String())

	if refreshToken == "" {
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	stored, err := uow.UserRepository().FindRefreshToken(ctx, specification.ByTokenHash{Hash: hashToken(refreshToken)})
	if err != nil || stored == nil {
		return nil
	}

	return uow.UserRepository().RevokeRefreshToken(ctx, stored.TokenHash)
}

func (s *authService) CurrentSession(ctx context.Context, userId uuid.UUID) (*dto.SessionResponse, error) {
	session, found := s.sessions.Get(userId.String())
	if !found {
		return nil, nil
	}
	return &dto.SessionResponse{
		UserId:      userId.String(),
		PhoneNumber: session.PhoneNumber,
		FullName:    session.FullName,
		State:       session.State,
	}, nil
}
