package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftcommerce/base/ctx"
	"github.com/x-xyz/nftcommerce/base/delivery"
	"github.com/x-xyz/nftcommerce/domain"
	"github.com/x-xyz/nftcommerce/domain/activity"
	"github.com/x-xyz/nftcommerce/middleware"
)

type handler struct {
	activity activity.Usecase
}

func New(e *echo.Echo, activity activity.Usecase) {
	h := &handler{activity: activity}

	g := e.Group("/nfts/:address")
	g.GET("/activities", h.getActivities, middleware.IsValidAddress("address"))
}

// getActivities
//
//	@Summary		Get activities
//	@Description	Listings, offers and purchases of an nft, newest first
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Param			address	path		string	true	"nft metadata or mint address"
//	@Param			type	query		string	false	"purchase, offer or listing"
//	@Param			limit	query		int		false	"max number of activities"
//	@Success		200		{object}	[]activity.Activity
//	@Failure		400
//	@Failure		404
//	@Failure		500
//	@Router			/nfts/{address}/activities [get]
func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	opts := []activity.FindAllOptionsFunc{}
	if typ := c.QueryParam("type"); typ != "" {
		opts = append(opts, activity.WithActivityType(activity.ActivityType(typ)))
	}
	if limit := c.QueryParam("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		opts = append(opts, activity.WithLimit(n))
	}

	res, err := h.activity.GetActivities(ctx, address, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("activity.GetActivities failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
