package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/delivery"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/commerce"
	"github.com/x-xyz/nftcommerce/middleware"
	authMiddleware "github.com/x-xyz/nftcommerce/stores/auth/delivery/http/middleware"
)

type handler struct {
	commerce commerce.Usecase
}

func New(e *echo.Echo, commerce commerce.Usecase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{commerce: commerce}

	isValid := middleware.IsValidAddress("address")

	g := e.Group("/nfts/:address")
	g.GET("/commerce", h.getView, isValid, authMiddleware.OptionalAuth())
	g.GET("/offers", h.getOffers, isValid, authMiddleware.OptionalAuth())
	g.GET("/summary", h.getSummary, isValid, middleware.CacheHttp(30*time.Second))
	g.POST("/refresh", h.refresh, isValid)
}

// viewer is the authenticated wallet, else the `wallet` query param
func viewer(c echo.Context) (*domain.Address, error) {
	if w := authMiddleware.Wallet(c); w != nil {
		return w, nil
	}
	w := domain.Address(c.QueryParam("wallet"))
	if w.IsEmpty() {
		return nil, nil
	}
	if !w.IsValid() {
		return nil, domain.ErrInvalidAddress
	}
	return w.ToPtr(), nil
}

// getView
//
//	@Summary		Get commerce state
//	@Description	Resolve listing state, available actions and foreign listings of an nft for a viewer
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string	true	"nft metadata or mint address"
//	@Param			wallet	query		string	false	"viewer wallet, ignored with a bearer token"
//	@Success		200		{object}	commerce.PageView
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/{address}/commerce [get]
func (h *handler) getView(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	w, err := viewer(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.commerce.GetView(ctx, address, w)
	if err != nil {
		ctx.WithField("err", err).Error("commerce.GetView failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getOffers
//
//	@Summary		Get offers
//	@Description	Active offers newest first, with the controls the viewer has on each
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string	true	"nft metadata or mint address"
//	@Param			wallet	query		string	false	"viewer wallet, ignored with a bearer token"
//	@Success		200		{object}	[]commerce.OfferRow
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/{address}/offers [get]
func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	w, err := viewer(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	rows, err := h.commerce.GetOfferBook(ctx, address, w)
	if err != nil {
		ctx.WithField("err", err).Error("commerce.GetOfferBook failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, rows)
}

// getSummary
//
//	@Summary		Get share summary
//	@Description	Name, image and prices of an nft for link previews
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string	true	"nft metadata or mint address"
//	@Success		200		{object}	commerce.Summary
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/{address}/summary [get]
func (h *handler) getSummary(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	res, err := h.commerce.GetSummary(ctx, address)
	if err != nil {
		ctx.WithField("err", err).Error("commerce.GetSummary failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// refresh
//
//	@Summary		Refresh nft
//	@Description	Drop the cached snapshot, called once a transaction on the nft is confirmed
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			address	path	string	true	"nft metadata or mint address"
//	@Success		200
//	@Failure		400
//	@Failure		500
//	@Router			/nfts/{address}/refresh [post]
func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	if err := h.commerce.Refresh(ctx, address); err != nil {
		ctx.WithField("err", err).Error("commerce.Refresh failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}
