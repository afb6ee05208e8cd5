package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bridges/internal/models/request_models"
	"bridges/internal/models/response_models"
	"bridges/pkg/session"
	"bridges/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialVerifier decides whether a username/password pair may edit.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// StaticCredentials checks against a fixed table of bcrypt hashed secrets.
type StaticCredentials struct {
	hashes map[string]string
	// compared for unknown users so both paths cost one bcrypt round
	dummy string
}

func NewStaticCredentials(accounts map[string]string) (*StaticCredentials, error) {
	hashes := make(map[string]string, len(accounts))
	for username, secret := range accounts {
		hash, err := utils.HashSecret(secret)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %q: %w", username, err)
		}
		hashes[username] = hash
	}

	dummy, err := utils.HashSecret(uuid.NewString())
	if err != nil {
		return nil, err
	}

	return &StaticCredentials{hashes: hashes, dummy: dummy}, nil
}

func (s *StaticCredentials) Verify(_ context.Context, username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok {
		_ = utils.SecretMatches(s.dummy, password)
		return false
	}
	return utils.SecretMatches(hash, password)
}

type AuthServiceInterface interface {
	// Login returns the id of a fresh editor session.
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	// Logout forgets the session; unknown ids are ignored.
	Logout(ctx context.Context, sessionID string) error
	// Session returns the zero Data for anonymous visitors.
	Session(ctx context.Context, sessionID string) (session.Data, error)
	IssueToken(ctx context.Context, req request_models.LoginRequest) (response_models.TokenResponse, error)
}

type AuthService struct {
	verifier   CredentialVerifier
	store      session.Store
	sessionTTL time.Duration
	jwtSecret  []byte
	jwtTTL     time.Duration
	log        *zap.Logger
}

func NewAuthService(
	verifier CredentialVerifier,
	store session.Store,
	sessionTTL time.Duration,
	jwtSecret []byte,
	jwtTTL time.Duration,
	log *zap.Logger) AuthServiceInterface {

	return &AuthService{
		verifier:   verifier,
		store:      store,
		sessionTTL: sessionTTL,
		jwtSecret:  jwtSecret,
		jwtTTL:     jwtTTL,
		log:        log,
	}
}

func (a *AuthService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	if !a.verifier.Verify(ctx, req.Username, req.Password) {
		a.log.Info("login rejected")
		return "", utils.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	data := session.Data{Username: req.Username, Role: session.RoleEditor}
	if err := a.store.Save(ctx, sessionID, data, a.sessionTTL); err != nil {
		a.log.Error("save session", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	a.log.Info("editor logged in", zap.String("username", req.Username))
	return sessionID, nil
}

func (a *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := a.store.Delete(ctx, sessionID); err != nil {
		a.log.Error("delete session", zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AuthService) Session(ctx context.Context, sessionID string) (session.Data, error) {
	if sessionID == "" {
		return session.Data{}, nil
	}

	data, err := a.store.Get(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return session.Data{}, nil
	}
	if err != nil {
		a.log.Error("load session", zap.Error(err))
		return session.Data{}, utils.ErrDatabaseError
	}
	return data, nil
}

func (a *AuthService) IssueToken(ctx context.Context, req request_models.LoginRequest) (response_models.TokenResponse, error) {
	if !a.verifier.Verify(ctx, req.Username, req.Password) {
		return response_models.TokenResponse{}, utils.ErrInvalidCredentials
	}

	token, expiresAt, err := utils.CreateToken(a.jwtSecret, req.Username, session.RoleEditor, a.jwtTTL)
	if err != nil {
		a.log.Error("sign token", zap.Error(err))
		return response_models.TokenResponse{}, err
	}

	return response_models.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
		Role:      session.RoleEditor,
	}, nil
}
