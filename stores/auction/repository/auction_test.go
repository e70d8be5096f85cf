package repository

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/database/mongoclient"
	"github.com/bidhouse/goapi/base/ptr"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type auctionSuite struct {
	suite.Suite

	query query.Mongo
	im    *auctionImpl
}

func (s *auctionSuite) SetupSuite() {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		s.T().Skip("MONGO_URI not set")
	}
	authDBName := "admin"
	dbName := "test"
	enableSSL := false
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, false)

	s.query = q

	s.im = NewAuction(q).(*auctionImpl)
}

func (s *auctionSuite) TearDownTest() {
	if _, err := s.query.RemoveAll(ctx.Background(), domain.TableAuctions, bson.M{}); err != nil {
		s.T().Fatal(err)
	}
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) TestCreateAndFindOne() {
	c := ctx.Background()

	a := &auction.Auction{
		Id:            "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1",
		Name:          "vintage guitar",
		StartingPrice: 100,
		EndDate:       time.Now().Add(time.Hour).UTC().Truncate(time.Millisecond),
		Bids:          []auction.Bid{},
	}

	s.Nil(s.im.Create(c, a))

	got, err := s.im.FindOne(c, a.Id)
	s.Nil(err)
	s.Equal(a.Id, got.Id)
	s.Equal(a.Name, got.Name)
	s.Equal(a.StartingPrice, got.StartingPrice)
	s.Nil(got.Winner)
	s.Len(got.Bids, 0)
}

func (s *auctionSuite) TestFindOneNotFound() {
	c := ctx.Background()

	_, err := s.im.FindOne(c, "2b1f7a90-0000-0000-0000-000000000000")
	s.Equal(domain.ErrNotFound, err)
}

func (s *auctionSuite) TestFindAll() {
	c := ctx.Background()

	ids := []string{
		"41da5b7a-76ee-4b22-bcfa-5c8cf4dbd7f1",
		"e3f2a1ce-2a01-44f0-b9c0-3c4ca64f0a42",
	}
	for i, id := range ids {
		s.Nil(s.im.Create(c, &auction.Auction{
			Id:            id,
			Name:          "auction",
			StartingPrice: int64(i),
			EndDate:       time.Now().Add(time.Hour),
			Bids:          []auction.Bid{},
		}))
	}

	got, err := s.im.FindAll(c)
	s.Nil(err)
	s.Len(got, 2)
	// insertion order preserved via _id sort
	s.Equal(ids[0], got[0].Id)
	s.Equal(ids[1], got[1].Id)
}

func (s *auctionSuite) TestPatch() {
	c := ctx.Background()

	a := &auction.Auction{
		Id:            "7dbb12f4-9c4d-4b9e-8f8e-12c2cf6a7b11",
		Name:          "old name",
		StartingPrice: 10,
		EndDate:       time.Now().Add(time.Hour),
		Bids:          []auction.Bid{},
	}
	s.Nil(s.im.Create(c, a))

	got, err := s.im.Patch(c, a.Id, &auction.Patchable{
		Name:          ptr.String("new name"),
		StartingPrice: ptr.Int64(25),
	})
	s.Nil(err)
	s.Equal("new name", got.Name)
	s.Equal(int64(25), got.StartingPrice)

	_, err = s.im.Patch(c, "2b1f7a90-0000-0000-0000-000000000000", &auction.Patchable{Name: ptr.String("x")})
	s.Equal(domain.ErrNotFound, err)
}

func (s *auctionSuite) TestRemove() {
	c := ctx.Background()

	a := &auction.Auction{
		Id:            "0a64c7de-54f8-4f1d-9d94-41f7f64e4f6c",
		Name:          "to delete",
		StartingPrice: 0,
		EndDate:       time.Now().Add(time.Hour),
		Bids:          []auction.Bid{},
	}
	s.Nil(s.im.Create(c, a))

	got, err := s.im.Remove(c, a.Id)
	s.Nil(err)
	s.Equal(a.Id, got.Id)

	_, err = s.im.FindOne(c, a.Id)
	s.Equal(domain.ErrNotFound, err)

	_, err = s.im.Remove(c, a.Id)
	s.Equal(domain.ErrNotFound, err)
}
