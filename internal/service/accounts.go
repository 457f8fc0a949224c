package service

import (
	"context"
	"errors"

	"github.com/stonksbro/nsepulse/internal/auth"
	"github.com/stonksbro/nsepulse/internal/domain/dto"
	"github.com/stonksbro/nsepulse/internal/storage"
)

// ErrBadCredentials is returned on login with an unknown username or wrong
// password. Both cases collapse into one error so responses don't leak
// which part was wrong.
var ErrBadCredentials = errors.New("invalid username or password")

// AccountService registers users and exchanges credentials for tokens.
type AccountService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
}

type accountService struct {
	users  storage.UsersRepository
	issuer *auth.TokenIssuer
}

// NewAccountService builds an AccountService over the users repository and
// token issuer.
func NewAccountService(users storage.UsersRepository, issuer *auth.TokenIssuer) AccountService {
	return &accountService{users: users, issuer: issuer}
}

func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	u, err := s.users.CreateUser(ctx, req.Username, req.Email, hash)
	if err != nil {
		return nil, err
	}
	return s.issue(u.ID, u.Username)
}

func (s *accountService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	u, err := s.users.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrBadCredentials
	}
	return s.issue(u.ID, u.Username)
}

func (s *accountService) issue(userID int64, username string) (*dto.TokenResponse, error) {
	token, err := s.issuer.Issue(userID, username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.issuer.Expiry().Seconds()),
	}, nil
}
