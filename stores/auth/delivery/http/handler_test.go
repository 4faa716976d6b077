package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bValidator "github.com/x-xyz/nftcommerce/base/validator"
	"github.com/x-xyz/nftcommerce/domain"
	mDomain "github.com/x-xyz/nftcommerce/domain/mocks"
	"github.com/x-xyz/nftcommerce/middleware"
)

const wallet = domain.Address("hausS13jsjafwWwGqZTUQRmWyvyxn9EQpqMwV1PBBmk")

type authHandlerSuite struct {
	suite.Suite

	auth *mDomain.AuthUsecase
	e    *echo.Echo
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(authHandlerSuite))
}

func (s *authHandlerSuite) SetupTest() {
	s.auth = mDomain.NewAuthUsecase(s.T())
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(bValidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.auth)
}

func (s *authHandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *authHandlerSuite) TestGetNonce() {
	s.auth.On("GetNonce", mock.Anything, wallet).Return(&domain.Nonce{Address: wallet, Nonce: "n", Message: "sign n"}, nil).Once()

	rec := s.do(http.MethodGet, "/auth/nonce/"+wallet.String(), "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"message":"sign n"`)
}

func (s *authHandlerSuite) TestSign() {
	s.auth.On("SignToken", mock.Anything, wallet, "sig").Return("token", nil).Once()

	rec := s.do(http.MethodPost, "/auth/sign", `{"address":"`+wallet.String()+`","signature":"sig"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"data":"token"`)
}

func (s *authHandlerSuite) TestSignRejected() {
	s.auth.On("SignToken", mock.Anything, wallet, "sig").Return("", domain.ErrInvalidSignature).Once()

	rec := s.do(http.MethodPost, "/auth/sign", `{"address":"`+wallet.String()+`","signature":"sig"}`)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *authHandlerSuite) TestSignBadParams() {
	rec := s.do(http.MethodPost, "/auth/sign", `{"address":"0xabc","signature":"sig"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/auth/sign", `{"address":"`+wallet.String()+`"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/auth/sign", `{`)
	s.Equal(http.StatusBadRequest, rec.Code)
}
