package healthcheck

import (
	"github.com/x-xyz/nftcommerce/base/ctx"
)

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(ctx ctx.Ctx) error
}

// HealthCheckRepo checks every backing store
type HealthCheckRepo interface {
	PingMongo(ctx ctx.Ctx) error
	PingRedis(ctx ctx.Ctx) error
}
