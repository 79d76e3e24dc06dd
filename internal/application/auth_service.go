package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devpad-api/internal/domain/entity"
	repo "github.com/oksasatya/devpad-api/internal/domain/repository"
	"github.com/oksasatya/devpad-api/pkg/validation"
)

// PasswordHasher is the hashing capability injected into AuthService.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

type AuthService struct {
	Users  repo.UserRepository
	Tokens repo.TokenStore
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens repo.TokenStore, hasher PasswordHasher, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Hasher: hasher, Logger: logger}
}

type RegisterInput struct {
	Name     string
	Email    string
	Username string
	Password string
}

// Conflicts reports which of the given email and username are already
// taken, as the field errors a registration attempt would get. Empty
// values are skipped; callers merge the result with whatever other
// field errors the request produced so one response names them all.
func (s *AuthService) Conflicts(ctx context.Context, email, username string) (FieldErrors, error) {
	ferrs := FieldErrors{}
	if email != "" {
		taken, err := s.Users.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			ferrs.add("email", "has already been taken")
		}
	}
	if username != "" {
		taken, err := s.Users.UsernameExists(ctx, username)
		if err != nil {
			return nil, err
		}
		if taken {
			ferrs.add("username", "has already been taken")
		}
	}
	return ferrs, nil
}

// Register creates the user and mints their first token. Uniqueness is
// checked up front so both fields can be reported together; the unique
// constraints remain the backstop for races.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	ferrs, err := s.Conflicts(ctx, in.Email, in.Username)
	if err != nil {
		return nil, "", err
	}
	if len(ferrs) > 0 {
		return nil, "", ferrs
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Username: in.Username,
		Password: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		switch {
		case errors.Is(err, repo.ErrEmailTaken):
			return nil, "", FieldErrors{"email": {"has already been taken"}}
		case errors.Is(err, repo.ErrUsernameTaken):
			return nil, "", FieldErrors{"username": {"has already been taken"}}
		}
		return nil, "", err
	}

	tok, err := s.Tokens.Mint(ctx, u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("mint token failed")
		return nil, "", err
	}
	return u, tok, nil
}

// Login authenticates a single identity field that holds either an
// email or a username. Exactly one lookup strategy runs, picked by
// syntax: the username pattern cannot contain '@', so anything that is
// not a username is treated as an email.
func (s *AuthService) Login(ctx context.Context, identity, password string) (*entity.User, string, error) {
	var (
		u   *entity.User
		err error
	)
	if validation.IsUsername(identity) {
		u, err = s.Users.GetByUsername(ctx, identity)
	} else {
		u, err = s.Users.GetByEmail(ctx, identity)
	}
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Same error as a bad password so callers cannot probe
			// which identities exist.
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !s.Hasher.Verify(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.Tokens.Mint(ctx, u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("mint token failed")
		return nil, "", err
	}
	return u, tok, nil
}

// Logout revokes only the presented token; other live tokens for the
// same user stay valid.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Tokens.Revoke(ctx, token)
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
