package auction

import (
	"time"

	"github.com/bidhouse/goapi/base/ctx"
)

// Status is derived from comparing the end date against the clock.
// It is never persisted; endDate is the single source of truth.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

type Auction struct {
	Id            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	StartingPrice int64     `json:"startingPrice" bson:"startingPrice"`
	EndDate       time.Time `json:"endDate" bson:"endDate"`
	Bids          []Bid     `json:"bids" bson:"bids"`
	Winner        *Bid      `json:"winner" bson:"winner"`
}

// Status reports whether the auction still accepts bids at the given time
func (a *Auction) Status(now time.Time) Status {
	if now.Before(a.EndDate) {
		return StatusActive
	}
	return StatusEnded
}

// CreatePayload is the client payload for creating an auction.
// EndDate is unix seconds on the wire.
type CreatePayload struct {
	Name          string `json:"name" validate:"required"`
	StartingPrice int64  `json:"startingPrice" validate:"gte=0"`
	EndDate       int64  `json:"endDate" validate:"required"`
}

// UpdatePayload carries the administratively mutable fields. Bids and winner
// are owned by the bid acceptance path and have no representation here.
type UpdatePayload struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	StartingPrice *int64  `json:"startingPrice" validate:"omitempty,gte=0"`
	EndDate       *int64  `json:"endDate"`
}

// Patchable is the bson-taggable projection of UpdatePayload handed to storage
type Patchable struct {
	Name          *string    `bson:"name,omitempty"`
	StartingPrice *int64     `bson:"startingPrice,omitempty"`
	EndDate       *time.Time `bson:"endDate,omitempty"`
}

// ListResult pairs the collection with its count for client-side sanity checks
type ListResult struct {
	Count    int        `json:"count"`
	Auctions []*Auction `json:"auctions"`
}

type AuctionRepo interface {
	Create(c ctx.Ctx, value *Auction) error
	FindOne(c ctx.Ctx, id string) (*Auction, error)
	FindAll(c ctx.Ctx) ([]*Auction, error)
	Patch(c ctx.Ctx, id string, patchable *Patchable) (*Auction, error)
	Remove(c ctx.Ctx, id string) (*Auction, error)
}

type AuctionUsecase interface {
	Create(c ctx.Ctx, payload *CreatePayload) (*Auction, error)
	Get(c ctx.Ctx, id string) (*Auction, error)
	List(c ctx.Ctx) (*ListResult, error)
	Update(c ctx.Ctx, id string, payload *UpdatePayload) (*Auction, error)
	Delete(c ctx.Ctx, id string) (*Auction, error)
}
