package repository

import (
	"time"

	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type bidImpl struct {
	q query.Mongo
}

func NewBid(q query.Mongo) auction.BidRepo {
	return &bidImpl{q}
}

// Accept pushes the bid and promotes it to winner in a single conditional
// update. The selector carries the whole admission rule: the auction exists
// and has not ended, the amount meets the starting price, and the amount
// strictly exceeds the current winner if there is one. A miss is reported as
// query.ErrNotFound without a follow-up read, a second read would race with
// concurrent submissions.
func (im *bidImpl) Accept(c ctx.Ctx, auctionId string, bid *auction.Bid) (*auction.Auction, error) {
	selector := bson.M{
		"id":            auctionId,
		"endDate":       bson.M{"$gt": time.Now().UTC()},
		"startingPrice": bson.M{"$lte": bid.Amount},
		"$or": []bson.M{
			{"winner": nil},
			{"winner.amount": bson.M{"$lt": bid.Amount}},
		},
	}

	updater := bson.M{
		"$push": bson.M{"bids": bid},
		"$set":  bson.M{"winner": bid},
	}

	res := auction.Auction{}
	if err := im.q.FindOneAndUpdate(c, domain.TableAuctions, selector, updater, &res); err == query.ErrNotFound {
		return nil, err
	} else if err != nil {
		c.WithField("err", err).WithField("auctionId", auctionId).Error("q.FindOneAndUpdate failed")
		return nil, err
	}
	return &res, nil
}
