package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/delivery"
)

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}
	e.GET("/nfts/:address", ok, IsValidAddress("address"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nfts/hausS13jsjafwWwGqZTUQRmWyvyxn9EQpqMwV1PBBmk", nil))
	req.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nfts/0xc37c41601bc88c91b6569c701f08d37fa0f565f0", nil))
	req.Equal(http.StatusBadRequest, rec.Code)
	res := delivery.JsonResponse{}
	req.NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	req.Equal(delivery.JsonResponseStatusFail, res.Status)
}

func TestAddContext(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	m := InitMiddleware()
	e.Use(m.ResponseLogger())
	e.Use(m.AddContext())
	e.GET("/", func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		req.True(ok)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	req.Equal(http.StatusOK, rec.Code)
}
