package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travigo/internal/models/request_models"
	"travigo/internal/services"
	"travigo/pkg/middleware"
	"travigo/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary with the AI planner
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/generate [post]
func (ic *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if !bindJSON(c, &req) {
		return
	}

	// a client disconnect does not abort the provider call or the save
	ctx := context.WithoutCancel(c.Request.Context())

	itinerary, err := ic.itineraryService.GenerateItinerary(ctx, c.GetString(middleware.ContextUserID), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary generated successfully")
}

func (ic *ItineraryController) ListItineraries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	result, err := ic.itineraryService.ListItineraries(c.Request.Context(), c.GetString(middleware.ContextUserID), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Fetched itineraries successfully")
}

func (ic *ItineraryController) GetItinerary(c *gin.Context) {
	itinerary, err := ic.itineraryService.GetItinerary(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Fetched itinerary successfully")
}
