package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type auctionSuite struct {
	suite.Suite
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

func (s *auctionSuite) TestStatus() {
	now := time.Now()
	a := &Auction{EndDate: now.Add(time.Hour)}

	s.Equal(StatusActive, a.Status(now))
	s.Equal(StatusEnded, a.Status(now.Add(time.Hour)))
	s.Equal(StatusEnded, a.Status(now.Add(2*time.Hour)))
}
