package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/domain"
	hcdomain "github.com/bidhouse/goapi/domain/healthcheck"
	"github.com/bidhouse/goapi/domain/keys"
	"github.com/bidhouse/goapi/service/query"
	"github.com/bidhouse/goapi/service/redis"
)

type impl struct {
	q          query.Mongo
	redisCache redis.Service
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface
func New(q query.Mongo, redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		q:          q,
		redisCache: redisCache,
	}
}

// PingDB round-trips both stores: a cheap count against the auctions table
// and a short-lived redis set
func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()

	if _, err := im.q.Count(ctx, domain.TableAuctions, bson.M{}); err != nil {
		ctx.WithField("err", err).Error("q.Count failed")
		return err
	}

	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		ctx.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
