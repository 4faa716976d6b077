package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcommerce/base/delivery"
	priceformatter "github.com/x-xyz/nftcommerce/base/price_formatter"
	bValidator "github.com/x-xyz/nftcommerce/base/validator"
	"github.com/x-xyz/nftcommerce/middleware"
	"github.com/x-xyz/nftcommerce/service/coingecko"
	mCoingecko "github.com/x-xyz/nftcommerce/service/coingecko/mocks"
	"github.com/x-xyz/nftcommerce/service/redis"
	mRedis "github.com/x-xyz/nftcommerce/service/redis/mocks"
)

type handlerSuite struct {
	suite.Suite

	coingecko *mCoingecko.Client
	e         *echo.Echo
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupSuite() {
	r := &mRedis.Service{}
	r.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound)
	r.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	middleware.SetupCache(r)
}

func (s *handlerSuite) SetupTest() {
	s.coingecko = mCoingecko.NewClient(s.T())

	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(bValidator.New())
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, priceformatter.NewPriceFormatter(&priceformatter.PriceFormatterCfg{CoinGecko: s.coingecko}))
}

func (s *handlerSuite) get(target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	// bypasses the http cache
	req.Header.Set(echo.HeaderAuthorization, "Bearer test")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec, res
}

func (s *handlerSuite) TestGetSol() {
	s.coingecko.On("GetPrice", mock.Anything, coingecko.SolanaId).Return(decimal.NewFromFloat(32.5), nil).Once()

	rec, res := s.get("/prices/sol")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(string(delivery.JsonResponseStatusSuccess), res["status"])
	data := res["data"].(map[string]interface{})
	s.Equal(32.5, data["usdPerSol"])
	s.NotContains(data, "price")
}

func (s *handlerSuite) TestGetSolWithLamports() {
	s.coingecko.On("GetPrice", mock.Anything, coingecko.SolanaId).Return(decimal.NewFromInt(40), nil).Once()

	rec, res := s.get("/prices/sol?lamports=1500000000")
	s.Equal(http.StatusOK, rec.Code)
	price := res["data"].(map[string]interface{})["price"].(map[string]interface{})
	s.Equal("1.5", price["sol"])
	s.Equal(float64(60), price["usd"])
}

func (s *handlerSuite) TestGetSolBadLamports() {
	rec, _ := s.get("/prices/sol?lamports=abc")
	s.Equal(http.StatusBadRequest, rec.Code)

	rec, _ = s.get("/prices/sol?lamports=-1")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetSolUpstreamFailure() {
	s.coingecko.On("GetPrice", mock.Anything, coingecko.SolanaId).Return(decimal.Zero, errors.New("rate limited")).Once()

	rec, res := s.get("/prices/sol")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(delivery.JsonResponseStatusFail), res["status"])
}
