package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"growstory/internal/models/request_models"
	"growstory/internal/services"
	"growstory/pkg/utils"
)

type GardenController struct {
	gardenService services.GardenServiceInterface
}

func NewGardenController(gardenService services.GardenServiceInterface) *GardenController {
	return &GardenController{
		gardenService: gardenService,
	}
}

// ListProducts godoc
// @Summary List purchasable plant objects
// @Tags Garden
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /garden/products [get]
func (g *GardenController) ListProducts(c *gin.Context) {
	products, err := g.gardenService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// GetGarden godoc
// @Summary Get the current account's garden
// @Tags Garden
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /garden [get]
func (g *GardenController) GetGarden(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	garden, err := g.gardenService.GetGarden(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, garden, "Garden fetched successfully")
}

// BuyPlantObj godoc
// @Summary Buy a plant object with points
// @Tags Garden
// @Accept json
// @Produce json
// @Param request body request_models.BuyPlantObjRequest true "Purchase payload"
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Security BearerAuth
// @Router /garden/buy [post]
func (g *GardenController) BuyPlantObj(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.BuyPlantObjRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid product id")
		return
	}

	plantObjID, err := g.gardenService.BuyPlantObj(c.Request.Context(), accountID, productID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"plant_obj_id": plantObjID.String()}, "Plant object purchased")
}

// ResellPlantObj godoc
// @Summary Resell a plant object for half price
// @Tags Garden
// @Produce json
// @Param plantObjId path string true "Plant object id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /garden/resell/{plantObjId} [post]
func (g *GardenController) ResellPlantObj(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plantObjID, err := uuid.Parse(c.Param("plantObjId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plant object id")
		return
	}

	if err := g.gardenService.ResellPlantObj(c.Request.Context(), accountID, plantObjID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plant object resold")
}

// MoveLocation godoc
// @Summary Move a plant object on the garden grid
// @Tags Garden
// @Accept json
// @Produce json
// @Param plantObjId path string true "Plant object id"
// @Param request body request_models.LocationPatchRequest true "Location payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /garden/location/{plantObjId} [patch]
func (g *GardenController) MoveLocation(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plantObjID, err := uuid.Parse(c.Param("plantObjId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plant object id")
		return
	}

	var req request_models.LocationPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := g.gardenService.MoveLocation(c.Request.Context(), accountID, plantObjID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location updated")
}

// RegisterLeaf godoc
// @Summary Link a plant object with a leaf
// @Tags Garden
// @Accept json
// @Produce json
// @Param plantObjId path string true "Plant object id"
// @Param request body request_models.RegisterLeafRequest true "Leaf payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /garden/leaf/{plantObjId} [post]
func (g *GardenController) RegisterLeaf(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plantObjID, err := uuid.Parse(c.Param("plantObjId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid plant object id")
		return
	}

	var req request_models.RegisterLeafRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	leafID, err := uuid.Parse(req.LeafID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid leaf id")
		return
	}

	if err := g.gardenService.RegisterLeaf(c.Request.Context(), accountID, plantObjID, leafID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Leaf registered to plant object")
}
