package auth

import (
	"context"

	"github.com/mvailland/studio-booking/pkg/security/token"
)

// PrincipalSource adapts the user repository to the authentication
// filter's loader port.
type PrincipalSource struct {
	repo UserRepository
}

func NewPrincipalSource(repo UserRepository) *PrincipalSource {
	return &PrincipalSource{repo: repo}
}

func (s *PrincipalSource) LoadPrincipal(ctx context.Context, email string) (token.Principal, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return token.Principal{}, err
	}
	return token.Principal{ID: user.ID, Email: user.Email, Admin: user.Admin}, nil
}
