package healthcheck

import (
	"github.com/hoanm/simple-marketplace/base/ctx"
)

// HealthCheckRepo represent the healthcheck's repository contract
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}

// HealthCheckUsecase represent the healthcheck's usecase contract
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}
