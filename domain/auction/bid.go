package auction

import (
	"time"

	"github.com/bidhouse/goapi/base/ctx"
)

// Bid id and timestamp are assigned at acceptance, never taken from the client
type Bid struct {
	Id        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Amount    int64     `json:"amount" bson:"amount"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

// SubmitBidPayload is the client payload for a bid submission
type SubmitBidPayload struct {
	Name   string `json:"name" validate:"required"`
	Amount int64  `json:"amount"`
}

// BidRepo records an admissible bid as the new winner in one atomic
// conditional update against the auction record
type BidRepo interface {
	// Accept returns the post-update auction, or query.ErrNotFound when the
	// admission predicate matched no record
	Accept(c ctx.Ctx, auctionId string, bid *Bid) (*Auction, error)
}

type BidUsecase interface {
	Submit(c ctx.Ctx, auctionId string, payload *SubmitBidPayload) (*Auction, error)
}
