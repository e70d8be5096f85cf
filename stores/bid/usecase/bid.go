package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/log"
	"github.com/bidhouse/goapi/base/metrics"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/service/cache"
	"github.com/bidhouse/goapi/service/query"
	"golang.org/x/xerrors"
)

type bidImpl struct {
	bid   auction.BidRepo
	cache cache.Service
	met   metrics.Service
}

// NewBid creates the bid usecase. It shares the auction snapshot cache with
// the auction usecase so an accepted bid evicts the stale snapshot.
func NewBid(repo auction.BidRepo, cache cache.Service) auction.BidUsecase {
	return &bidImpl{repo, cache, metrics.New("bid")}
}

func (im *bidImpl) Submit(c ctx.Ctx, auctionId string, payload *auction.SubmitBidPayload) (*auction.Auction, error) {
	if payload.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	if _, err := uuid.Parse(auctionId); err != nil {
		return nil, domain.ErrInvalidAuctionId
	}

	uuid, err := uuid.NewRandom()
	if err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
		return nil, err
	}

	bid := &auction.Bid{
		Id:        uuid.String(),
		Name:      payload.Name,
		Amount:    payload.Amount,
		Timestamp: time.Now().UTC(),
	}

	res, err := im.bid.Accept(c, auctionId, bid)
	if err == query.ErrNotFound {
		im.met.BumpSum("submit.rejected", 1)
		return nil, domain.ErrBidNotAdmissible
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"auctionId": auctionId,
		}).Error("bid.Accept failed")
		return nil, xerrors.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	im.met.BumpSum("submit.accepted", 1)

	if err := im.cache.Del(c, auctionId); err != nil {
		c.WithField("err", err).WithField("auctionId", auctionId).Error("cache.Del failed")
	}
	return res, nil
}
