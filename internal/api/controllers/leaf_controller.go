package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"growstory/internal/models/request_models"
	"growstory/internal/services"
	"growstory/pkg/utils"
)

type LeafController struct {
	leafService services.LeafServiceInterface
}

func NewLeafController(leafService services.LeafServiceInterface) *LeafController {
	return &LeafController{
		leafService: leafService,
	}
}

// CreateLeaf godoc
// @Summary Create a leaf
// @Tags Leaves
// @Accept mpfd
// @Produce json
// @Param leaf_name formData string true "Leaf name"
// @Param content formData string false "Content"
// @Param leaf_image formData file false "Leaf image"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leaves [post]
func (l *LeafController) CreateLeaf(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.LeafPostRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	image, _ := c.FormFile("leaf_image")

	leafID, err := l.leafService.CreateLeaf(c.Request.Context(), accountID, req, image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"leaf_id": leafID.String()}, "Leaf created successfully")
}

// UpdateLeaf godoc
// @Summary Update a leaf
// @Tags Leaves
// @Accept mpfd
// @Produce json
// @Param leafId path string true "Leaf id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leaves/{leafId} [patch]
func (l *LeafController) UpdateLeaf(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	leafID, err := uuid.Parse(c.Param("leafId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid leaf id")
		return
	}

	var req request_models.LeafPatchRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	image, _ := c.FormFile("leaf_image")

	if err := l.leafService.UpdateLeaf(c.Request.Context(), accountID, leafID, req, image); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Leaf updated successfully")
}

// GetLeaf godoc
// @Summary Get a leaf with its journals
// @Tags Leaves
// @Produce json
// @Param leafId path string true "Leaf id"
// @Success 200 {object} utils.APIResponse
// @Router /leaves/{leafId} [get]
func (l *LeafController) GetLeaf(c *gin.Context) {
	leafID, err := uuid.Parse(c.Param("leafId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid leaf id")
		return
	}

	leaf, err := l.leafService.GetLeaf(c.Request.Context(), leafID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leaf, "Leaf fetched successfully")
}

// ListLeaves godoc
// @Summary List the current account's leaves
// @Tags Leaves
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leaves [get]
func (l *LeafController) ListLeaves(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	leaves, err := l.leafService.ListLeaves(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, leaves, "Leaves fetched successfully")
}

// AddJournal godoc
// @Summary Add a journal entry to a leaf
// @Tags Leaves
// @Accept mpfd
// @Produce json
// @Param leafId path string true "Leaf id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leaves/{leafId}/journals [post]
func (l *LeafController) AddJournal(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	leafID, err := uuid.Parse(c.Param("leafId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid leaf id")
		return
	}

	var req request_models.JournalPostRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	image, _ := c.FormFile("journal_image")

	if err := l.leafService.AddJournal(c.Request.Context(), accountID, leafID, req, image); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Journal added successfully")
}

// DeleteLeaf godoc
// @Summary Delete a leaf
// @Tags Leaves
// @Produce json
// @Param leafId path string true "Leaf id"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /leaves/{leafId} [delete]
func (l *LeafController) DeleteLeaf(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	leafID, err := uuid.Parse(c.Param("leafId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid leaf id")
		return
	}

	if err := l.leafService.DeleteLeaf(c.Request.Context(), accountID, leafID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Leaf deleted successfully")
}
