package garden_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"growstory/internal/repositories"
	"growstory/internal/services"
)

var Module = fx.Provide(
	providePlantObjRepo, provideGardenService)

func providePlantObjRepo(db *gorm.DB) repositories.PlantObjRepository {
	return repositories.NewPlantObjRepository(db)
}

func provideGardenService(
	db *gorm.DB,
	plantObjRepo repositories.PlantObjRepository,
	accountService services.AccountServiceInterface,
) services.GardenServiceInterface {
	return services.NewGardenService(db, plantObjRepo, accountService)
}
