package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/domain/auction/mocks"
	"github.com/bidhouse/goapi/service/cache"
	"github.com/bidhouse/goapi/service/cache/provider/primitive"
	"github.com/bidhouse/goapi/service/query"
)

func newTestCache() cache.Service {
	return cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "auction",
		Cache: primitive.NewPrimitive("auction", 16),
	})
}

type bidUsecaseSuite struct {
	suite.Suite

	repo *mocks.BidRepo
	im   auction.BidUsecase
}

func (s *bidUsecaseSuite) SetupTest() {
	s.repo = &mocks.BidRepo{}
	s.im = NewBid(s.repo, newTestCache())
}

func TestBidUsecaseSuite(t *testing.T) {
	suite.Run(t, new(bidUsecaseSuite))
}

func (s *bidUsecaseSuite) TestSubmitAssignsIdAndTimestamp() {
	c := ctx.Background()
	auctionId := "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1"
	before := time.Now()

	s.repo.On("Accept", mock.Anything, auctionId, mock.MatchedBy(func(b *auction.Bid) bool {
		_, err := uuid.Parse(b.Id)
		return err == nil && b.Name == "alice" && b.Amount == 150 && !b.Timestamp.Before(before)
	})).Return(&auction.Auction{Id: auctionId}, nil)

	res, err := s.im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "alice", Amount: 150})
	s.Nil(err)
	s.Equal(auctionId, res.Id)
	s.repo.AssertExpectations(s.T())
}

func (s *bidUsecaseSuite) TestSubmitNonPositiveAmount() {
	c := ctx.Background()

	for _, amount := range []int64{0, -1, -100} {
		_, err := s.im.Submit(c, "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1", &auction.SubmitBidPayload{Name: "alice", Amount: amount})
		s.Equal(domain.ErrInvalidAmount, err)
	}
	s.repo.AssertNotCalled(s.T(), "Accept", mock.Anything, mock.Anything, mock.Anything)
}

func (s *bidUsecaseSuite) TestSubmitInvalidAuctionId() {
	c := ctx.Background()

	_, err := s.im.Submit(c, "not-a-uuid", &auction.SubmitBidPayload{Name: "alice", Amount: 100})
	s.Equal(domain.ErrInvalidAuctionId, err)
	s.repo.AssertNotCalled(s.T(), "Accept", mock.Anything, mock.Anything, mock.Anything)
}

func (s *bidUsecaseSuite) TestSubmitNotAdmissible() {
	c := ctx.Background()
	auctionId := "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1"

	s.repo.On("Accept", mock.Anything, auctionId, mock.Anything).Return(nil, query.ErrNotFound)

	_, err := s.im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "alice", Amount: 100})
	s.Equal(domain.ErrBidNotAdmissible, err)
}

func (s *bidUsecaseSuite) TestSubmitStorageFailure() {
	c := ctx.Background()
	auctionId := "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1"

	s.repo.On("Accept", mock.Anything, auctionId, mock.Anything).Return(nil, errors.New("socket closed"))

	_, err := s.im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "alice", Amount: 100})
	s.True(errors.Is(err, domain.ErrStorageUnavailable))
}

// fakeBidRepo reproduces the storage contract in memory: the admission check
// and the mutation happen under one lock, as a single conditional update.
type fakeBidRepo struct {
	sync.Mutex
	auctions map[string]*auction.Auction
}

func newFakeBidRepo(auctions ...*auction.Auction) *fakeBidRepo {
	m := map[string]*auction.Auction{}
	for _, a := range auctions {
		m[a.Id] = a
	}
	return &fakeBidRepo{auctions: m}
}

func (f *fakeBidRepo) Accept(c ctx.Ctx, auctionId string, bid *auction.Bid) (*auction.Auction, error) {
	f.Lock()
	defer f.Unlock()

	a, ok := f.auctions[auctionId]
	if !ok ||
		!time.Now().Before(a.EndDate) ||
		bid.Amount < a.StartingPrice ||
		(a.Winner != nil && bid.Amount <= a.Winner.Amount) {
		return nil, query.ErrNotFound
	}

	a.Bids = append(a.Bids, *bid)
	a.Winner = bid

	snapshot := *a
	snapshot.Bids = append([]auction.Bid{}, a.Bids...)
	return &snapshot, nil
}

func (s *bidUsecaseSuite) TestSubmitScenario() {
	c := ctx.Background()
	auctionId := uuid.NewString()

	repo := newFakeBidRepo(&auction.Auction{
		Id:            auctionId,
		Name:          "vintage guitar",
		StartingPrice: 100,
		EndDate:       time.Now().Add(time.Hour),
		Bids:          []auction.Bid{},
	})
	im := NewBid(repo, newTestCache())

	// first bid at the floor is accepted
	res, err := im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "alice", Amount: 100})
	s.Nil(err)
	s.Equal(int64(100), res.Winner.Amount)

	// a tie with the standing winner is rejected
	_, err = im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "bob", Amount: 100})
	s.Equal(domain.ErrBidNotAdmissible, err)

	// a higher bid displaces the winner
	res, err = im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "bob", Amount: 150})
	s.Nil(err)
	s.Equal(int64(150), res.Winner.Amount)
	s.Equal("bob", res.Winner.Name)
	s.Len(res.Bids, 2)
	s.Equal(int64(100), res.Bids[0].Amount)
	s.Equal(int64(150), res.Bids[1].Amount)
}

func (s *bidUsecaseSuite) TestSubmitConcurrent() {
	c := ctx.Background()
	auctionId := uuid.NewString()

	repo := newFakeBidRepo(&auction.Auction{
		Id:            auctionId,
		Name:          "vintage guitar",
		StartingPrice: 1,
		EndDate:       time.Now().Add(time.Hour),
		Bids:          []auction.Bid{},
	})
	im := NewBid(repo, newTestCache())

	const n = 64

	var wg sync.WaitGroup
	accepted := make([]int64, 0, n)
	var mu sync.Mutex

	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(amount int64) {
			defer wg.Done()
			if _, err := im.Submit(c, auctionId, &auction.SubmitBidPayload{Name: "racer", Amount: amount}); err == nil {
				mu.Lock()
				accepted = append(accepted, amount)
				mu.Unlock()
			} else if err != domain.ErrBidNotAdmissible {
				s.T().Errorf("unexpected error: %v", err)
			}
		}(int64(i))
	}
	wg.Wait()

	final := repo.auctions[auctionId]

	// the winner always carries the highest accepted amount
	s.Equal(int64(n), final.Winner.Amount)
	s.Len(final.Bids, len(accepted))

	// recorded bids are strictly increasing, since each accepted bid had to
	// beat every bid accepted before it
	for i := 1; i < len(final.Bids); i++ {
		s.Less(final.Bids[i-1].Amount, final.Bids[i].Amount)
	}
	s.Equal(final.Winner.Id, final.Bids[len(final.Bids)-1].Id)
}
