package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"practice-site/config"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/repository"
	"practice-site/internal/service"
	"practice-site/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const tokenTypeBearer = "Bearer"

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, username, tokenID string) error
}

type authUsecase struct {
	log          *logrus.Logger
	username     string
	passwordHash []byte
	jwtService   *jwt.JWTService
	sessions     repository.SessionRepository
	auditService service.AuditService
}

// NewAuthUsecase hashes the configured admin password once so logins are
// always checked with bcrypt.
func NewAuthUsecase(
	log *logrus.Logger,
	cfg config.AdminConfig,
	jwtService *jwt.JWTService,
	sessions repository.SessionRepository,
	auditService service.AuditService,
) (AuthUsecase, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &authUsecase{
		log:          log,
		username:     cfg.Username,
		passwordHash: hashedPassword,
		jwtService:   jwtService,
		sessions:     sessions,
		auditService: auditService,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	usernameMatches := subtle.ConstantTimeCompare([]byte(req.Username), []byte(u.username)) == 1

	// Verify password even on a username mismatch so both paths cost the same
	passwordErr := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(req.Password))
	if !usernameMatches || passwordErr != nil {
		u.log.WithField("username", req.Username).Warn("Failed admin login attempt")
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(u.username)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Store(ctx, u.username, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store admin session: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, service.AuditActionAdminLogin, "session", accessTokenID, u.username)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the session so the token is rejected even before it expires.
func (u *authUsecase) Logout(ctx context.Context, username, tokenID string) error {
	if err := u.sessions.Delete(ctx, username, tokenID); err != nil {
		u.log.Warnf("Failed to delete admin session: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionAdminLogout, "session", tokenID)

	return nil
}
