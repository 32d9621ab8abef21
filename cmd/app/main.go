package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"growstory/cmd/fx/account_fx"
	"growstory/cmd/fx/controllers_fx"
	"growstory/cmd/fx/db_fx"
	"growstory/cmd/fx/garden_fx"
	"growstory/cmd/fx/leaf_fx"
	"growstory/cmd/fx/storage_fx"
	"growstory/internal/api/controllers"
	"growstory/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		storage_fx.Module,
		account_fx.Module,
		leaf_fx.Module,
		garden_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	leafController *controllers.LeafController,
	gardenController *controllers.GardenController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, leafController, gardenController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	leafController *controllers.LeafController,
	gardenController *controllers.GardenController) {

	accounts := r.Group("/accounts")
	accounts.POST("", accountController.Register)
	accounts.POST("/login", accountController.Login)

	authedAccounts := accounts.Group("")
	authedAccounts.Use(middleware.JWTAuthMiddleware())
	authedAccounts.GET("", accountController.GetAccount)
	authedAccounts.PATCH("/displayname", accountController.UpdateDisplayName)
	authedAccounts.PATCH("/password", accountController.UpdatePassword)
	authedAccounts.PATCH("/profileimage", accountController.UpdateProfileImage)
	authedAccounts.POST("/attendance", accountController.CheckAttendance)
	authedAccounts.DELETE("", accountController.DeleteAccount)

	leaves := r.Group("/leaves")
	leaves.GET("/:leafId", leafController.GetLeaf)

	authedLeaves := leaves.Group("")
	authedLeaves.Use(middleware.JWTAuthMiddleware())
	authedLeaves.GET("", leafController.ListLeaves)
	authedLeaves.POST("", leafController.CreateLeaf)
	authedLeaves.PATCH("/:leafId", leafController.UpdateLeaf)
	authedLeaves.DELETE("/:leafId", leafController.DeleteLeaf)
	authedLeaves.POST("/:leafId/journals", leafController.AddJournal)

	garden := r.Group("/garden")
	garden.GET("/products", gardenController.ListProducts)

	authedGarden := garden.Group("")
	authedGarden.Use(middleware.JWTAuthMiddleware())
	authedGarden.GET("", gardenController.GetGarden)
	authedGarden.POST("/buy", gardenController.BuyPlantObj)
	authedGarden.POST("/resell/:plantObjId", gardenController.ResellPlantObj)
	authedGarden.PATCH("/location/:plantObjId", gardenController.MoveLocation)
	authedGarden.POST("/leaf/:plantObjId", gardenController.RegisterLeaf)
}
