package usecase

import (
	"marketplace-api/internal/domain/user"
	"marketplace-api/internal/pkg/errs"
	"marketplace-api/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Caller, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Caller, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Caller{}, errs.Mark(errs.Wrap(err, "validate token"), errs.ErrUnauthorized)
	}
	caller, err := claims.Caller()
	if err != nil {
		return user.Caller{}, errs.Mark(errs.Wrap(err, "token claims"), errs.ErrUnauthorized)
	}
	return caller, nil
}
