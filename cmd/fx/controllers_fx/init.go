package controllers_fx

import (
	"go.uber.org/fx"

	"growstory/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewLeafController,
	controllers.NewGardenController,
)
