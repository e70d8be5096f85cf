package repository

import (
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/database/mongoclient"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type auctionImpl struct {
	q query.Mongo
}

func NewAuction(q query.Mongo) auction.AuctionRepo {
	return &auctionImpl{q}
}

func (im *auctionImpl) Create(c ctx.Ctx, value *auction.Auction) error {
	if err := im.q.Insert(c, domain.TableAuctions, value); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *auctionImpl) FindOne(c ctx.Ctx, id string) (*auction.Auction, error) {
	res := auction.Auction{}
	if err := im.q.FindOne(c, domain.TableAuctions, bson.M{"id": id}, &res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOne failed")
		return nil, err
	}
	return &res, nil
}

func (im *auctionImpl) FindAll(c ctx.Ctx) ([]*auction.Auction, error) {
	res := []*auction.Auction{}
	if err := im.q.Search(c, domain.TableAuctions, 0, 0, "_id", bson.M{}, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *auctionImpl) Patch(c ctx.Ctx, id string, patchable *auction.Patchable) (*auction.Auction, error) {
	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}

	res := auction.Auction{}
	if err := im.q.FindOneAndUpdate(c, domain.TableAuctions, bson.M{"id": id}, bson.M{"$set": updater}, &res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOneAndUpdate failed")
		return nil, err
	}
	return &res, nil
}

func (im *auctionImpl) Remove(c ctx.Ctx, id string) (*auction.Auction, error) {
	res := auction.Auction{}
	if err := im.q.FindOneAndDelete(c, domain.TableAuctions, bson.M{"id": id}, &res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("id", id).Error("q.FindOneAndDelete failed")
		return nil, err
	}
	return &res, nil
}
