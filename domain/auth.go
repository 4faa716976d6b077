package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/nftcommerce/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

// Nonce is the one time value a wallet signs to prove it owns its address
type Nonce struct {
	Address Address `json:"address"`
	Nonce   string  `json:"nonce"`
	// Message is the exact text to sign
	Message string `json:"message"`
}

type AuthUsecase interface {
	GetNonce(ctx ctx.Ctx, address Address) (*Nonce, error)
	// SignToken verifies the base58 ed25519 signature of the nonce message and issues a token
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (Address, error)
}
