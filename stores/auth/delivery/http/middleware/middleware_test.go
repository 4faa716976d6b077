package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/domain"
	mDomain "github.com/x-xyz/nftcommerce/domain/mocks"
)

type authMiddlewareSuite struct {
	suite.Suite

	auth *mDomain.AuthUsecase
	e    *echo.Echo
	seen *domain.Address
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(authMiddlewareSuite))
}

func (s *authMiddlewareSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.seen = nil

	m := New(s.auth)
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	h := func(c echo.Context) error {
		s.seen = Wallet(c)
		return c.NoContent(http.StatusOK)
	}
	s.e.GET("/private", h, m.Auth())
	s.e.GET("/public", h, m.OptionalAuth())
}

func (s *authMiddlewareSuite) do(path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec.Code
}

func (s *authMiddlewareSuite) TestAuth() {
	s.auth.On("ParseToken", mock.Anything, "good").Return(domain.Address("wallet"), nil).Once()
	s.Equal(http.StatusOK, s.do("/private", "good"))
	s.Require().NotNil(s.seen)
	s.Equal(domain.Address("wallet"), *s.seen)

	s.auth.On("ParseToken", mock.Anything, "bad").Return(domain.Address(""), errors.New("expired")).Once()
	s.Equal(http.StatusUnauthorized, s.do("/private", "bad"))

	s.NotEqual(http.StatusOK, s.do("/private", ""))
}

func (s *authMiddlewareSuite) TestOptionalAuth() {
	s.Equal(http.StatusOK, s.do("/public", ""))
	s.Nil(s.seen)

	s.auth.On("ParseToken", mock.Anything, "good").Return(domain.Address("wallet"), nil).Once()
	s.Equal(http.StatusOK, s.do("/public", "good"))
	s.Require().NotNil(s.seen)
}
