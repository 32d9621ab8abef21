package storage_fx

import (
	"go.uber.org/fx"

	"growstory/internal/services"
)

var Module = fx.Provide(
	provideStorageService,
)

func provideStorageService() (services.StorageService, error) {
	return services.NewS3StorageService(services.S3ConfigFromEnv())
}
