package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"growstory/internal/models/db_models"
	"growstory/internal/models/request_models"
	"growstory/internal/models/response_models"
	"growstory/internal/repositories"
	"growstory/pkg/utils"
)

type GardenServiceInterface interface {
	ListProducts(ctx context.Context) ([]response_models.ProductResponse, error)
	GetGarden(ctx context.Context, accountID uuid.UUID) (*response_models.GardenResponse, error)
	BuyPlantObj(ctx context.Context, accountID uuid.UUID, productID uuid.UUID) (uuid.UUID, error)
	ResellPlantObj(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID) error
	MoveLocation(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID, request request_models.LocationPatchRequest) error
	RegisterLeaf(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID, leafID uuid.UUID) error
}

// GardenService orchestrates the point-currency shop. Every balance
// mutation locks the point row first, so concurrent purchases against
// one account serialize instead of overdrawing.
type GardenService struct {
	db             *gorm.DB
	plantObjRepo   repositories.PlantObjRepository
	accountService AccountServiceInterface
}

func NewGardenService(
	db *gorm.DB,
	plantObjRepo repositories.PlantObjRepository,
	accountService AccountServiceInterface,
) GardenServiceInterface {
	return &GardenService{
		db:             db,
		plantObjRepo:   plantObjRepo,
		accountService: accountService,
	}
}

func (g *GardenService) ListProducts(ctx context.Context) ([]response_models.ProductResponse, error) {
	products, err := g.plantObjRepo.ListProducts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, response_models.ProductResponse{
			ProductID: product.ID.String(),
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			Price:     product.Price,
		})
	}
	return responses, nil
}

func (g *GardenService) GetGarden(ctx context.Context, accountID uuid.UUID) (*response_models.GardenResponse, error) {
	plantObjs, err := g.plantObjRepo.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var point db_models.Point
	if err := g.db.WithContext(ctx).First(&point, "account_id = ?", accountID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrDatabaseError
		}
	}

	response := &response_models.GardenResponse{
		Point:     point.Score,
		PlantObjs: make([]response_models.PlantObjResponse, 0, len(plantObjs)),
	}

	for i := range plantObjs {
		response.PlantObjs = append(response.PlantObjs, toPlantObjResponse(&plantObjs[i]))
	}
	return response, nil
}

// BuyPlantObj debits the product price and attaches a new plant object
// to the buyer, atomically under a row lock on the point ledger.
func (g *GardenService) BuyPlantObj(ctx context.Context, accountID uuid.UUID, productID uuid.UUID) (uuid.UUID, error) {
	product, err := g.plantObjRepo.FindProductByID(ctx, productID)
	if err != nil {
		return uuid.Nil, utils.ErrDatabaseError
	}
	if product == nil {
		return uuid.Nil, utils.ErrProductNotFound
	}

	var plantObjID uuid.UUID
	err = g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccountWithPoint(tx, accountID)
		if err != nil {
			return err
		}

		if err := g.accountService.Buy(account, product.Price); err != nil {
			return err
		}
		if err := tx.Save(account.Point).Error; err != nil {
			return utils.ErrDatabaseError
		}

		plantObj := &db_models.PlantObj{
			ProductID: product.ID,
		}
		account.AddPlantObj(plantObj)

		if err := tx.Create(plantObj).Error; err != nil {
			return utils.ErrDatabaseError
		}
		plantObjID = plantObj.ID

		return recordHistoryTx(tx, account.ID, db_models.PointEventBuy, -product.Price, account.Point.Score, map[string]interface{}{
			"product_id":   product.ID.String(),
			"product_name": product.Name,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}

	return plantObjID, nil
}

// ResellPlantObj pays back half the purchase price, detaches the object
// from the seller and removes it.
func (g *GardenService) ResellPlantObj(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID) error {
	plantObj, err := g.plantObjRepo.FindByID(ctx, plantObjID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plantObj == nil {
		return utils.ErrPlantObjNotFound
	}
	if plantObj.AccountID == nil {
		return utils.ErrAccountNotAllowed
	}
	if err := g.accountService.IsAuthIDMatching(accountID, *plantObj.AccountID); err != nil {
		return err
	}

	resellPrice := plantObj.Product.ResellPrice()

	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccountWithPoint(tx, accountID)
		if err != nil {
			return err
		}

		if err := g.accountService.Resell(account, resellPrice); err != nil {
			return err
		}
		if err := tx.Save(account.Point).Error; err != nil {
			return utils.ErrDatabaseError
		}

		account.RemovePlantObj(plantObj)

		if err := tx.Where("plant_obj_id = ?", plantObj.ID).Delete(&db_models.Location{}).Error; err != nil {
			return utils.ErrDatabaseError
		}
		if err := tx.Delete(plantObj).Error; err != nil {
			return utils.ErrDatabaseError
		}

		return recordHistoryTx(tx, account.ID, db_models.PointEventResell, resellPrice, account.Point.Score, map[string]interface{}{
			"plant_obj_id": plantObj.ID.String(),
			"product_id":   plantObj.ProductID.String(),
		})
	})
}

func (g *GardenService) MoveLocation(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID, request request_models.LocationPatchRequest) error {
	plantObj, err := g.ownedPlantObj(ctx, accountID, plantObjID)
	if err != nil {
		return err
	}

	location := plantObj.Location
	if location == nil {
		location = &db_models.Location{
			PlantObjID: plantObj.ID,
		}
	}
	location.X = request.X
	location.Y = request.Y
	location.IsInstalled = request.IsInstalled
	plantObj.UpdateLocation(location)

	if err := g.db.WithContext(ctx).Save(location).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// RegisterLeaf links a plant object with a leaf one-to-one; both records
// must belong to the caller.
func (g *GardenService) RegisterLeaf(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID, leafID uuid.UUID) error {
	plantObj, err := g.ownedPlantObj(ctx, accountID, plantObjID)
	if err != nil {
		return err
	}

	var leaf db_models.Leaf
	if err := g.db.WithContext(ctx).First(&leaf, "id = ?", leafID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrLeafNotFound
		}
		return utils.ErrDatabaseError
	}
	if leaf.AccountID == nil {
		return utils.ErrAccountNotAllowed
	}
	if err := g.accountService.IsAuthIDMatching(accountID, *leaf.AccountID); err != nil {
		return err
	}

	leaf.UpdatePlantObj(plantObj)

	if err := g.db.WithContext(ctx).Model(plantObj).Update("leaf_id", leaf.ID).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (g *GardenService) ownedPlantObj(ctx context.Context, accountID uuid.UUID, plantObjID uuid.UUID) (*db_models.PlantObj, error) {
	plantObj, err := g.plantObjRepo.FindByID(ctx, plantObjID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plantObj == nil {
		return nil, utils.ErrPlantObjNotFound
	}
	if plantObj.AccountID == nil {
		return nil, utils.ErrAccountNotAllowed
	}
	if err := g.accountService.IsAuthIDMatching(accountID, *plantObj.AccountID); err != nil {
		return nil, err
	}
	return plantObj, nil
}

// lockAccountWithPoint loads the account and takes SELECT ... FOR UPDATE
// on its point row, so check-then-debit cannot interleave across
// concurrent requests.
func lockAccountWithPoint(tx *gorm.DB, accountID uuid.UUID) (*db_models.Account, error) {
	var account db_models.Account
	if err := tx.First(&account, "id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	var point db_models.Point
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&point, "account_id = ?", accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrAccountNotFound
		}
		return nil, utils.ErrDatabaseError
	}

	account.UpdatePoint(&point)
	return &account, nil
}

func recordHistoryTx(tx *gorm.DB, accountID uuid.UUID, eventType db_models.PointEventType, amount int, balance int, metadata map[string]interface{}) error {
	history := &db_models.PointHistory{
		AccountID: accountID,
		EventType: eventType,
		Amount:    amount,
		Balance:   balance,
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			history.Metadata = datatypes.JSON(raw)
		}
	}
	return tx.Create(history).Error
}

func toPlantObjResponse(plantObj *db_models.PlantObj) response_models.PlantObjResponse {
	response := response_models.PlantObjResponse{
		PlantObjID: plantObj.ID.String(),
		Product: response_models.ProductResponse{
			ProductID: plantObj.Product.ID.String(),
			Name:      plantObj.Product.Name,
			ImageURL:  plantObj.Product.ImageURL,
			Price:     plantObj.Product.Price,
		},
	}
	if plantObj.LeafID != nil {
		leafID := plantObj.LeafID.String()
		response.LeafID = &leafID
	}
	if plantObj.Location != nil {
		response.Location = &response_models.LocationResponse{
			X:           plantObj.Location.X,
			Y:           plantObj.Location.Y,
			IsInstalled: plantObj.Location.IsInstalled,
		}
	}
	return response
}
