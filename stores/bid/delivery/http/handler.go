package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/delivery"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/middleware"
)

type handler struct {
	bid auction.BidUsecase
}

// New registers the bid submission route
func New(e *echo.Echo, bid auction.BidUsecase) {
	h := &handler{bid}

	gs := e.Group("/auctions")

	gs.POST("/:auctionId/bids", h.submit, middleware.IsValidAuctionId("auctionId"))
}

func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.SubmitBidPayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.bid.Submit(ctx, c.Param("auctionId"), &p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}
