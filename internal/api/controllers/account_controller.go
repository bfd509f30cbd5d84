package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travigo/internal/models/request_models"
	"travigo/internal/services"
	"travigo/pkg/middleware"
	"travigo/pkg/utils"
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
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /users/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, resp, "User registered successfully")
}

// Login godoc
// @Summary Login to an account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /users/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Login successful")
}

func (a *AccountController) Logout(c *gin.Context) {
	expiresAt, _ := c.Get(middleware.ContextTokenExpiresAt)
	exp, _ := expiresAt.(time.Time)

	if err := a.accountService.Logout(c.Request.Context(), c.GetString(middleware.ContextTokenID), exp); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	utils.RespondSuccess(c, nil, "Logged out successfully")
}

func (a *AccountController) GetPreferences(c *gin.Context) {
	prefs, err := a.accountService.GetPreferences(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "Preferences fetched successfully")
}

func (a *AccountController) UpdatePreferences(c *gin.Context) {
	var req request_models.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := a.accountService.UpdatePreferences(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prefs, "Preferences updated successfully")
}

// HealthCheck reports liveness without touching any dependency.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Welcome to Travigo API",
	})
}
