package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/bidhouse/goapi/base/ctx"
	"github.com/bidhouse/goapi/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)

	repo := &mocks.HealthCheckRepo{}
	repo.On("PingDB", mock.Anything).Return(nil).Once()
	repo.On("PingDB", mock.Anything).Return(errors.New("redis unreachable")).Once()

	uc := New(repo)

	req.NoError(uc.Check(ctx.Background()))
	req.Error(uc.Check(ctx.Background()))
}
