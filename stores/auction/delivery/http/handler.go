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
	auction auction.AuctionUsecase
}

// New registers the auction routes
func New(e *echo.Echo, auction auction.AuctionUsecase) {
	h := &handler{auction}

	gs := e.Group("/auctions")

	gs.GET("", h.list)
	gs.POST("", h.create)
	gs.GET("/:auctionId", h.get, middleware.IsValidAuctionId("auctionId"))
	gs.PATCH("/:auctionId", h.update, middleware.IsValidAuctionId("auctionId"))
	gs.DELETE("/:auctionId", h.delete, middleware.IsValidAuctionId("auctionId"))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.CreatePayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Create(ctx, &p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.Get(ctx, c.Param("auctionId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := auction.UpdatePayload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auction.Update(ctx, c.Param("auctionId"), &p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.auction.Delete(ctx, c.Param("auctionId"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
