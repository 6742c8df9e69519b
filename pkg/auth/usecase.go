package auth

import (
	"context"
	"strings"
	"time"
)

// UseCase describes authentication/registration behavior.
type UseCase interface {
	Register(ctx context.Context, reg Registration) error
	Login(ctx context.Context, email, password string) (AuthResult, error)
}

// Registration is the signup payload accepted by Register.
type Registration struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

type AuthResult struct {
	User  User
	Token string
}

type service struct {
	repo   UserRepository
	tokens TokenIssuer
	hasher PasswordHasher
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, tokens TokenIssuer, hasher PasswordHasher) UseCase {
	return &service{repo: repo, tokens: tokens, hasher: hasher}
}

func (s *service) Register(ctx context.Context, reg Registration) error {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if email == "" || reg.Password == "" {
		return ErrInvalidCredentials
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	digest, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = s.repo.Create(ctx, User{
		Email:     email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Password:  digest,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return err
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.Password) {
		return AuthResult{}, ErrInvalidCredentials
	}
	tok, err := s.tokens.Issue(user.Email, user.Admin)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: tok}, nil
}
