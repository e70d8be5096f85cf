package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/log"
	"github.com/bidhouse/goapi/base/ptr"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/service/cache"
)

type auctionImpl struct {
	auction auction.AuctionRepo
	cache   cache.Service
}

// NewAuction creates the auction usecase. The cache holds auction snapshots
// for the read path only; writes always go to the repo and invalidate it.
func NewAuction(repo auction.AuctionRepo, cache cache.Service) auction.AuctionUsecase {
	return &auctionImpl{repo, cache}
}

func (im *auctionImpl) Create(c ctx.Ctx, payload *auction.CreatePayload) (*auction.Auction, error) {
	endDate := time.Unix(payload.EndDate, 0).UTC()
	if !endDate.After(time.Now()) {
		return nil, domain.ErrInvalidEndDate
	}

	uuid, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
		return nil, err
	}

	a := &auction.Auction{
		Id:            uuid.String(),
		Name:          payload.Name,
		StartingPrice: payload.StartingPrice,
		EndDate:       endDate,
		Bids:          []auction.Bid{},
		Winner:        nil,
	}

	if err := im.auction.Create(c, a); err != nil {
		c.WithField("err", err).Error("auction.Create failed")
		return nil, err
	}
	return a, nil
}

func (im *auctionImpl) Get(c ctx.Ctx, id string) (*auction.Auction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidAuctionId
	}

	res := &auction.Auction{}
	if err := im.cache.GetByFunc(c, id, res, func() (interface{}, error) {
		return im.auction.FindOne(c, id)
	}); err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("cache.GetByFunc failed")
		}
		return nil, err
	}
	return res, nil
}

func (im *auctionImpl) List(c ctx.Ctx) (*auction.ListResult, error) {
	items, err := im.auction.FindAll(c)
	if err != nil {
		c.WithField("err", err).Error("auction.FindAll failed")
		return nil, err
	}
	return &auction.ListResult{Count: len(items), Auctions: items}, nil
}

func (im *auctionImpl) Update(c ctx.Ctx, id string, payload *auction.UpdatePayload) (*auction.Auction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidAuctionId
	}

	if payload.Name == nil && payload.StartingPrice == nil && payload.EndDate == nil {
		return nil, domain.ErrBadParamInput
	}

	patchable := &auction.Patchable{
		Name:          payload.Name,
		StartingPrice: payload.StartingPrice,
	}

	if payload.EndDate != nil {
		endDate := time.Unix(*payload.EndDate, 0).UTC()
		if !endDate.After(time.Now()) {
			return nil, domain.ErrInvalidEndDate
		}
		patchable.EndDate = ptr.Time(endDate)
	}

	res, err := im.auction.Patch(c, id, patchable)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).WithField("id", id).Error("auction.Patch failed")
		}
		return nil, err
	}

	if err := im.cache.Del(c, id); err != nil {
		c.WithField("err", err).WithField("id", id).Error("cache.Del failed")
	}
	return res, nil
}

func (im *auctionImpl) Delete(c ctx.Ctx, id string) (*auction.Auction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidAuctionId
	}

	res, err := im.auction.Remove(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).WithField("id", id).Error("auction.Remove failed")
		}
		return nil, err
	}

	if err := im.cache.Del(c, id); err != nil {
		c.WithField("err", err).WithField("id", id).Error("cache.Del failed")
	}
	return res, nil
}
