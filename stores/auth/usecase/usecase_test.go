package usecase_test

import (
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/keys"
	"github.com/x-xyz/nftcommerce/service/cache"
	"github.com/x-xyz/nftcommerce/service/cache/provider/primitive"
	"github.com/x-xyz/nftcommerce/stores/auth/usecase"
)

type authSuite struct {
	suite.Suite

	ctx     ctx.Ctx
	priv    ed25519.PrivateKey
	address domain.Address
	im      domain.AuthUsecase
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupTest() {
	pub, priv, err := ed25519.GenerateKey(nil)
	s.Require().NoError(err)

	s.ctx = ctx.Background()
	s.priv = priv
	s.address = domain.Address(base58.Encode(pub))
	s.im = usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret: "jwt-secret",
		NonceCache: cache.New(cache.ServiceConfig{
			Ttl:   5 * time.Minute,
			Pfx:   keys.PfxNonce,
			Cache: primitive.NewPrimitive("nonce-test", 1),
		}),
	})
}

func (s *authSuite) sign(msg string) string {
	return base58.Encode(ed25519.Sign(s.priv, []byte(msg)))
}

func (s *authSuite) TestSignAndParseToken() {
	n, err := s.im.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)
	s.Equal(s.address, n.Address)
	s.Contains(n.Message, n.Nonce)

	tkn, err := s.im.SignToken(s.ctx, s.address, s.sign(n.Message))
	s.Require().NoError(err)
	s.NotEmpty(tkn)

	ads, err := s.im.ParseToken(s.ctx, tkn)
	s.Require().NoError(err)
	s.Equal(s.address, ads)
}

func (s *authSuite) TestNonceIsSingleUse() {
	n, err := s.im.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)
	sig := s.sign(n.Message)

	_, err = s.im.SignToken(s.ctx, s.address, sig)
	s.Require().NoError(err)
	_, err = s.im.SignToken(s.ctx, s.address, sig)
	s.ErrorIs(err, domain.ErrInvalidNonce)
}

func (s *authSuite) TestWithoutNonce() {
	_, err := s.im.SignToken(s.ctx, s.address, s.sign("anything"))
	s.ErrorIs(err, domain.ErrInvalidNonce)
}

func (s *authSuite) TestStaleNonce() {
	old, err := s.im.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)
	_, err = s.im.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)

	_, err = s.im.SignToken(s.ctx, s.address, s.sign(old.Message))
	s.ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *authSuite) TestBadSignatures() {
	n, err := s.im.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)

	_, err = s.im.SignToken(s.ctx, s.address, "0OIl")
	s.ErrorIs(err, domain.ErrInvalidSignature)

	_, err = s.im.SignToken(s.ctx, s.address, base58.Encode([]byte("short")))
	s.ErrorIs(err, domain.ErrInvalidSignature)

	_, otherPriv, err := ed25519.GenerateKey(nil)
	s.Require().NoError(err)
	_, err = s.im.SignToken(s.ctx, s.address, base58.Encode(ed25519.Sign(otherPriv, []byte(n.Message))))
	s.ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *authSuite) TestInvalidAddress() {
	_, err := s.im.GetNonce(s.ctx, "0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	s.ErrorIs(err, domain.ErrInvalidAddress)
	_, err = s.im.SignToken(s.ctx, "0xc37c41601bc88c91b6569c701f08d37fa0f565f0", "sig")
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *authSuite) TestParseTokenRejects() {
	_, err := s.im.ParseToken(s.ctx, "not-a-token")
	s.Error(err)

	other := usecase.New(&usecase.AuthUseCaseCfg{
		JwtSecret: "other-secret",
		NonceCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxNonce,
			Cache: primitive.NewPrimitive("nonce-test-other", 1),
		}),
	})
	n, err := other.GetNonce(s.ctx, s.address)
	s.Require().NoError(err)
	tkn, err := other.SignToken(s.ctx, s.address, s.sign(n.Message))
	s.Require().NoError(err)

	_, err = s.im.ParseToken(s.ctx, tkn)
	s.Error(err)
}
