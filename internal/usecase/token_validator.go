package usecase

import (
	"classroom-reservation/internal/domain/user"
	"classroom-reservation/internal/pkg/errs"
	"classroom-reservation/internal/pkg/jwt"
)

// TokenValidator turns a bearer token from the identity service into the calling principal.
type TokenValidator interface {
	Authenticate(tokenString string) (user.Principal, error)
}

type tokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwtService: jwtService}
}

func (t *tokenValidator) Authenticate(tokenString string) (user.Principal, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Principal{}, err
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, errs.Wrap(err, "token role")
	}
	return user.NewPrincipal(claims.UserID, role)
}
