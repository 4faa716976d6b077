package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftcommerce/base/ctx"
	mHealthcheck "github.com/x-xyz/nftcommerce/domain/healthcheck/mocks"
)

func TestCheck(t *testing.T) {
	req := require.New(t)
	repo := mHealthcheck.NewHealthCheckRepo(t)
	im := New(repo)

	repo.On("PingMongo", mock.Anything).Return(nil).Twice()
	repo.On("PingRedis", mock.Anything).Return(nil).Once()
	req.NoError(im.Check(ctx.Background()))

	down := errors.New("connection refused")
	repo.On("PingRedis", mock.Anything).Return(down).Once()
	err := im.Check(ctx.Background())
	req.ErrorIs(err, down)
	req.Contains(err.Error(), "redis")
}

func TestCheckMongoDown(t *testing.T) {
	req := require.New(t)
	repo := mHealthcheck.NewHealthCheckRepo(t)
	im := New(repo)

	down := errors.New("no reachable servers")
	repo.On("PingMongo", mock.Anything).Return(down).Once()
	req.ErrorIs(im.Check(ctx.Background()), down)
}
