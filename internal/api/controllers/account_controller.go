package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"growstory/internal/models/request_models"
	"growstory/internal/models/response_models"
	"growstory/internal/services"
	"growstory/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a new account with an optional profile image
// @Tags Accounts
// @Accept mpfd
// @Produce json
// @Param display_name formData string true "Display name"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param profile_image formData file false "Profile image"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /accounts [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profileImage, _ := c.FormFile("profile_image")

	accountID, err := a.accountService.CreateAccount(c.Request.Context(), req, profileImage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.AccountCreatedResponse{AccountID: accountID.String()},
		"Account created successfully")
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate and return a JWT
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.AccountLoginResponse{Token: token},
		"Login successful")
}

// GetAccount godoc
// @Summary Get the current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts [get]
func (a *AccountController) GetAccount(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	account, err := a.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, account, "Account fetched successfully")
}

// UpdateDisplayName godoc
// @Summary Change the display name
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.DisplayNamePatchRequest true "Display name payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/displayname [patch]
func (a *AccountController) UpdateDisplayName(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.DisplayNamePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.UpdateDisplayName(c.Request.Context(), accountID, req.DisplayName); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Display name updated successfully")
}

// UpdatePassword godoc
// @Summary Change the password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.PasswordPatchRequest true "Password payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/password [patch]
func (a *AccountController) UpdatePassword(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	var req request_models.PasswordPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := a.accountService.UpdatePassword(c.Request.Context(), accountID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password updated successfully")
}

// UpdateProfileImage godoc
// @Summary Replace the profile image
// @Tags Accounts
// @Accept mpfd
// @Produce json
// @Param profile_image formData file true "Profile image"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/profileimage [patch]
func (a *AccountController) UpdateProfileImage(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	profileImage, err := c.FormFile("profile_image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Profile image is required")
		return
	}

	if err := a.accountService.UpdateProfileImage(c.Request.Context(), accountID, profileImage); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile image updated successfully")
}

// CheckAttendance godoc
// @Summary Check daily attendance
// @Description Credits the attendance bonus once per day
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts/attendance [post]
func (a *AccountController) CheckAttendance(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	score, err := a.accountService.CheckAttendance(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"point": score}, "Attendance checked")
}

// DeleteAccount godoc
// @Summary Delete the current account
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /accounts [delete]
func (a *AccountController) DeleteAccount(c *gin.Context) {
	accountID, err := utils.CurrentAccountID(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := a.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Account deleted successfully")
}
