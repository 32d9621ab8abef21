package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"growstory/internal/repositories"
	"growstory/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, providePointHistoryRepo, providePointService, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func providePointHistoryRepo(db *gorm.DB) repositories.PointHistoryRepository {
	return repositories.NewPointHistoryRepository(db)
}

func providePointService(historyRepo repositories.PointHistoryRepository) services.PointServiceInterface {
	return services.NewPointService(historyRepo)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	pointService services.PointServiceInterface,
	storage services.StorageService,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, pointService, storage)
}
