package leaf_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"growstory/internal/repositories"
	"growstory/internal/services"
)

var Module = fx.Provide(
	provideLeafRepo, provideLeafService)

func provideLeafRepo(db *gorm.DB) repositories.LeafRepository {
	return repositories.NewLeafRepository(db)
}

func provideLeafService(
	leafRepo repositories.LeafRepository,
	accountService services.AccountServiceInterface,
	storage services.StorageService,
) services.LeafServiceInterface {
	return services.NewLeafService(leafRepo, accountService, storage)
}
