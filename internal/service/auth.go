package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kms-sarl/site-server-go/internal/config"
	"github.com/kms-sarl/site-server-go/internal/model"
	"github.com/kms-sarl/site-server-go/internal/repository"
	"github.com/kms-sarl/site-server-go/internal/util"
)

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike; callers must not be able to tell which it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrAdminLimitReached  = errors.New("maximum number of admins reached")
)

// AuthService owns the session lifecycle: it is the only code that creates,
// validates, and destroys session rows. Per-request authentication decisions
// all flow through ValidateSession.
type AuthService struct {
	userRepo        repository.AdminUserRepository
	sessionRepo     repository.SessionRepository
	sessionSecret   string
	sessionDuration time.Duration
	now             func() time.Time
}

func NewAuthService(
	userRepo repository.AdminUserRepository,
	sessionRepo repository.SessionRepository,
	sessionSecret string,
	sessionDuration time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		sessionSecret:   sessionSecret,
		sessionDuration: sessionDuration,
		now:             time.Now,
	}
}

// WithClock overrides the time source. Test hook.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Login verifies the credentials and, on success, issues a new session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AdminUser, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if !util.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.CreateSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// CreateSession issues a fresh high-entropy token and inserts one session row
// expiring after the configured duration. Multiple concurrent sessions per
// user are allowed; every login event gets its own row.
func (s *AuthService) CreateSession(ctx context.Context, userID string) (string, error) {
	token, err := util.GenerateToken()
	if err != nil {
		return "", err
	}

	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	expiresAt := s.now().Add(s.sessionDuration)

	_, err = s.sessionRepo.Create(ctx, model.CreateSessionParams{
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// ValidateSession resolves a token to its session and owning user. It returns
// (nil, nil, nil) for unknown and expired tokens; expired rows are deleted on
// discovery. A store failure is returned as an error so the boundary can
// answer with a generic 500 instead of treating the caller as logged out.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*model.AdminUser, *model.Session, error) {
	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	session, err := s.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, nil
	}

	if !session.ExpiresAt.After(s.now()) {
		// Lazy cleanup; a concurrent request deleting the same row is fine.
		if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
			log.Warn().Err(err).Str("sessionId", session.ID).Msg("failed to delete expired session")
		}
		return nil, nil, nil
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}

	return user, session, nil
}

// Logout revokes the session for token. It succeeds whether or not the token
// still maps to a row, so signing out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	tokenHash := util.HmacSHA256(s.sessionSecret, token)
	return s.sessionRepo.DeleteByTokenHash(ctx, tokenHash)
}

// UpdateProfile changes name and email, and re-hashes the password when a new
// one is supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, fullName, email string, newPassword *string) (*model.AdminUser, error) {
	params := model.UpdateAdminProfileParams{
		FullName: fullName,
		Email:    strings.ToLower(strings.TrimSpace(email)),
	}

	if newPassword != nil {
		hash, err := util.HashPassword(*newPassword)
		if err != nil {
			return nil, err
		}
		params.PasswordHash = &hash
	}

	return s.userRepo.UpdateProfile(ctx, userID, params)
}

// AddAdmin provisions a new back-office account, capped at MaxAdminUsers.
func (s *AuthService) AddAdmin(ctx context.Context, fullName, email, password string) (*model.AdminUser, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count >= config.MaxAdminUsers {
		return nil, ErrAdminLimitReached
	}

	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, model.CreateAdminUserParams{
		Email:        email,
		PasswordHash: hash,
		FullName:     fullName,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("userId", user.ID).Msg("admin user provisioned")

	return user, nil
}
