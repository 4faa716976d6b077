package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/delivery"
	priceformatter "github.com/x-xyz/nftcommerce/base/price_formatter"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/middleware"
)

type handler struct {
	priceFormatter priceformatter.PriceFormatter
}

func New(e *echo.Echo, priceFormatter priceformatter.PriceFormatter) {
	h := &handler{
		priceFormatter: priceFormatter,
	}

	g := e.Group("/prices")
	g.GET("/sol", h.getSol, middleware.CacheHttp(time.Minute))
}

type solPrice struct {
	UsdPerSol float64         `json:"usdPerSol"`
	Price     *commerce.Price `json:"price,omitempty"`
}

// getSol
//
//	@Summary		Get SOL price
//	@Description	Usd price of one SOL, and of an amount of lamports when given
//	@Tags			prices
//	@Accept			json
//	@Produce		json
//	@Param			lamports	query		int	false	"amount to convert"
//	@Success		200			{object}	http.solPrice
//	@Failure		400
//	@Failure		500
//	@Router			/prices/sol [get]
func (h *handler) getSol(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	var lamports *int64
	if c.QueryParam("lamports") != "" {
		v := int64(0)
		if err := echo.QueryParamsBinder(c).Int64("lamports", &v).BindError(); err != nil || v < 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		lamports = &v
	}

	usdPerSol, err := h.priceFormatter.UsdPerSol(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("priceFormatter.UsdPerSol failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := solPrice{}
	res.UsdPerSol, _ = usdPerSol.Float64()
	if lamports != nil {
		price := h.priceFormatter.Format(*lamports, usdPerSol)
		res.Price = &price
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
