package usecase

import (
	"golang.org/x/xerrors"

	"github.com/x-xyz/nftcommerce/base/ctx"
	hcdomain "github.com/x-xyz/nftcommerce/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(context ctx.Ctx) error {
	if err := im.repo.PingMongo(context); err != nil {
		return xerrors.Errorf("mongo: %w", err)
	}
	if err := im.repo.PingRedis(context); err != nil {
		return xerrors.Errorf("redis: %w", err)
	}
	return nil
}
