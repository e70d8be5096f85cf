package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/base/delivery"
	bValidator "github.com/bidhouse/goapi/base/validator"
	"github.com/bidhouse/goapi/domain"
	"github.com/bidhouse/goapi/domain/auction"
	"github.com/bidhouse/goapi/domain/auction/mocks"
)

type auctionHandlerSuite struct {
	suite.Suite

	e       *echo.Echo
	usecase *mocks.AuctionUsecase
}

func (s *auctionHandlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = bValidator.NewCustomValidator(validator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.usecase = &mocks.AuctionUsecase{}
	New(s.e, s.usecase)
}

func TestAuctionHandlerSuite(t *testing.T) {
	suite.Run(t, new(auctionHandlerSuite))
}

func (s *auctionHandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *auctionHandlerSuite) decode(rec *httptest.ResponseRecorder) delivery.JsonResponse {
	res := delivery.JsonResponse{}
	s.Nil(json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func (s *auctionHandlerSuite) TestCreate() {
	endDate := time.Now().Add(time.Hour)

	s.usecase.On("Create", mock.Anything, &auction.CreatePayload{
		Name:          "vintage guitar",
		StartingPrice: 100,
		EndDate:       endDate.Unix(),
	}).Return(&auction.Auction{
		Id:            "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1",
		Name:          "vintage guitar",
		StartingPrice: 100,
		EndDate:       endDate,
		Bids:          []auction.Bid{},
	}, nil)

	rec := s.do(http.MethodPost, "/auctions",
		`{"name":"vintage guitar","startingPrice":100,"endDate":`+toJson(endDate.Unix())+`}`)

	s.Equal(http.StatusCreated, rec.Code)
	res := s.decode(rec)
	s.Equal(delivery.JsonResponseStatusSuccess, res.Status)
}

func (s *auctionHandlerSuite) TestCreateMissingName() {
	rec := s.do(http.MethodPost, "/auctions", `{"startingPrice":100,"endDate":1893456000}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(delivery.JsonResponseStatusFail, s.decode(rec).Status)
	s.usecase.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *auctionHandlerSuite) TestCreatePastEndDate() {
	s.usecase.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidEndDate)

	rec := s.do(http.MethodPost, "/auctions", `{"name":"guitar","startingPrice":100,"endDate":1500000000}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *auctionHandlerSuite) TestList() {
	s.usecase.On("List", mock.Anything).Return(&auction.ListResult{
		Count:    1,
		Auctions: []*auction.Auction{{Id: "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1"}},
	}, nil)

	rec := s.do(http.MethodGet, "/auctions", "")

	s.Equal(http.StatusOK, rec.Code)
	res := s.decode(rec)
	s.Equal(delivery.JsonResponseStatusSuccess, res.Status)

	data := res.Data.(map[string]interface{})
	s.Equal(float64(1), data["count"])
}

func (s *auctionHandlerSuite) TestGet() {
	id := "9f8b0f1e-10a2-4f33-9a22-5aa9e67e71d1"
	s.usecase.On("Get", mock.Anything, id).Return(&auction.Auction{Id: id}, nil)

	rec := s.do(http.MethodGet, "/auctions/"+id, "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *auctionHandlerSuite) TestGetNotFound() {
	id := "2b1f7a90-0000-4000-8000-000000000000"
	s.usecase.On("Get", mock.Anything, id).Return(nil, domain.ErrNotFound)

	rec := s.do(http.MethodGet, "/auctions/"+id, "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(delivery.JsonResponseStatusFail, s.decode(rec).Status)
}

func (s *auctionHandlerSuite) TestGetInvalidId() {
	rec := s.do(http.MethodGet, "/auctions/not-a-uuid", "")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.usecase.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *auctionHandlerSuite) TestUpdate() {
	id := "7dbb12f4-9c4d-4b9e-8f8e-12c2cf6a7b11"
	s.usecase.On("Update", mock.Anything, id, mock.MatchedBy(func(p *auction.UpdatePayload) bool {
		return p.Name != nil && *p.Name == "new name" && p.StartingPrice == nil
	})).Return(&auction.Auction{Id: id, Name: "new name"}, nil)

	rec := s.do(http.MethodPatch, "/auctions/"+id, `{"name":"new name"}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *auctionHandlerSuite) TestDelete() {
	id := "0a64c7de-54f8-4f1d-9d94-41f7f64e4f6c"
	s.usecase.On("Delete", mock.Anything, id).Return(&auction.Auction{Id: id}, nil)

	rec := s.do(http.MethodDelete, "/auctions/"+id, "")

	s.Equal(http.StatusOK, rec.Code)
}

func toJson(v int64) string {
	b, _ := json.Marshal(v)
	return string(b)
}
