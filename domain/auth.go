package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/hoanm/simple-marketplace/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	SignToken(c ctx.Ctx, address Address) (string, error)
	ParseToken(c ctx.Ctx, token string) (string, error)
}
