package db_fx

import (
	"go.uber.org/fx"

	"growstory/internal/infra"
)

var Module = fx.Provide(
	infra.InitPostgresql,
)
