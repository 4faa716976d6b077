package usecase

import (
	"crypto/ed25519"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/service/cache"
)

const (
	// DefaultSigningMsgTemplate is filled with the nonce
	DefaultSigningMsgTemplate = "Sign in to the marketplace.\n\nNonce: %s"
	tokenTtl                  = 24 * time.Hour
)

var timeNow = time.Now

type AuthUseCaseCfg struct {
	JwtSecret          string
	SigningMsgTemplate string
	// NonceCache keeps one nonce per address, its ttl bounds how long a nonce can be signed
	NonceCache cache.Service
}

type impl struct {
	jwtSecret []byte
	template  string
	nonce     cache.Service
}

func New(cfg *AuthUseCaseCfg) domain.AuthUsecase {
	template := cfg.SigningMsgTemplate
	if template == "" {
		template = DefaultSigningMsgTemplate
	}
	return &impl{
		jwtSecret: []byte(cfg.JwtSecret),
		template:  template,
		nonce:     cfg.NonceCache,
	}
}

func (im *impl) GetNonce(ctx ctx.Ctx, address domain.Address) (*domain.Nonce, error) {
	if !address.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	n := uuid.NewString()
	if err := im.nonce.Set(ctx, address.String(), n); err != nil {
		ctx.WithField("err", err).WithField("address", address).Error("nonce.Set failed")
		return nil, err
	}
	return &domain.Nonce{
		Address: address,
		Nonce:   n,
		Message: fmt.Sprintf(im.template, n),
	}, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	pub, err := address.Bytes()
	if err != nil {
		return "", err
	}

	n := ""
	if err := im.nonce.Get(ctx, address.String(), &n); err == cache.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).WithField("address", address).Error("nonce.Get failed")
		return "", err
	}

	sig, err := base58.Decode(signature)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return "", xerrors.Errorf("malformed signature: %w", domain.ErrInvalidSignature)
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), []byte(fmt.Sprintf(im.template, n)), sig) {
		return "", domain.ErrInvalidSignature
	}

	// a nonce signs in once
	if err := im.nonce.Del(ctx, address.String()); err != nil {
		ctx.WithField("err", err).WithField("address", address).Error("nonce.Del failed")
		return "", err
	}

	claims := domain.JwtCustomClaims{
		Address: string(address),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: timeNow().Add(tokenTtl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (domain.Address, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return domain.Address(claims.Address), nil
	}

	return "", domain.ErrInvalidSignature
}
