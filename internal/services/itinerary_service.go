package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"travigo/internal/models/db_models"
	"travigo/internal/models/request_models"
	"travigo/internal/models/response_models"
	"travigo/internal/repositories"
	"travigo/pkg/observability"
	"travigo/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, userID string, req request_models.TripRequest) (*db_models.Itinerary, error)
	ListItineraries(ctx context.Context, userID string, page, pageSize int) (*response_models.ItineraryPage, error)
	GetItinerary(ctx context.Context, userID, id string) (*db_models.Itinerary, error)
}

type ItineraryService struct {
	client      utils.CompletionClientInterface
	transformer ItineraryTransformerInterface
	repo        repositories.ItineraryRepositoryInterface
	logger      zerolog.Logger
}

func NewItineraryService(
	client utils.CompletionClientInterface,
	transformer ItineraryTransformerInterface,
	repo repositories.ItineraryRepositoryInterface,
	logger zerolog.Logger,
) ItineraryServiceInterface {
	return &ItineraryService{
		client:      client,
		transformer: transformer,
		repo:        repo,
		logger:      logger.With().Str("component", "itinerary_service").Logger(),
	}
}

// GenerateItinerary validates the request, asks the AI provider for a plan, normalizes it
// and stores it as a draft. Nothing is stored unless every step succeeds.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, userID string, req request_models.TripRequest) (*db_models.Itinerary, error) {
	if strings.TrimSpace(userID) == "" {
		observability.ObserveGeneration("unauthorized")
		return nil, utils.ErrUnauthorized
	}

	req.Destination = strings.TrimSpace(req.Destination)
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)

	if missing := missingTripFields(req); len(missing) > 0 {
		s.logger.Warn().
			Str("user_id", userID).
			Strs("missing", missing).
			Msg("Missing required fields for itinerary generation")
		observability.ObserveGeneration("invalid")
		return nil, utils.NewValidationError(missing...)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("destination", req.Destination).
		Str("start_date", req.StartDate).
		Str("end_date", req.EndDate).
		Msg("Starting AI itinerary generation")

	ai, err := s.client.Complete(ctx, buildAIInput(req))
	if err != nil {
		return nil, s.fail(userID, req.Destination, err)
	}

	itinerary, err := s.transformer.Transform(ai, userID, req.Destination)
	if err != nil {
		return nil, s.fail(userID, req.Destination, err)
	}

	if err := s.repo.Create(ctx, itinerary); err != nil {
		if !errors.Is(err, utils.ErrPersistence) {
			err = fmt.Errorf("%w: %v", utils.ErrPersistence, err)
		}
		return nil, s.fail(userID, req.Destination, err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("itinerary_id", itinerary.ID.String()).
		Msg("AI-generated itinerary saved successfully")
	observability.ObserveGeneration("success")
	return itinerary, nil
}

func (s *ItineraryService) fail(userID, destination string, err error) error {
	s.logger.Error().
		Err(err).
		Str("user_id", userID).
		Str("destination", destination).
		Msg("Failed to generate/save AI itinerary")
	observability.ObserveGeneration(generationOutcome(err))
	return &utils.GenerationError{Err: err}
}

func generationOutcome(err error) string {
	switch {
	case errors.Is(err, utils.ErrUpstream):
		return "upstream_error"
	case errors.Is(err, utils.ErrParse):
		return "parse_error"
	case errors.Is(err, utils.ErrValidation):
		return "invalid"
	case errors.Is(err, utils.ErrPersistence):
		return "persistence_error"
	default:
		return "error"
	}
}

func missingTripFields(req request_models.TripRequest) []string {
	var missing []string
	if req.Destination == "" {
		missing = append(missing, "destination")
	}
	if req.StartDate == "" {
		missing = append(missing, "startDate")
	}
	if req.EndDate == "" {
		missing = append(missing, "endDate")
	}
	return missing
}

func buildAIInput(req request_models.TripRequest) request_models.AIItineraryInput {
	input := request_models.AIItineraryInput{
		TripName:        req.TripName,
		Destination:     req.Destination,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Duration:        req.Duration.OrElse(1),
		TravelType:      req.TravelType,
		Activities:      req.Activities,
		Accommodation:   req.Accommodation,
		Transportation:  req.Transportation,
		SpecialRequests: req.SpecialRequests,
		Travelers:       req.Travelers.OrElse(1),
	}
	if input.TripName == "" {
		input.TripName = defaultTripName
	}
	if req.Budget.Valid {
		input.TotalBudget = req.Budget.Value
	}
	if input.TravelType == "" {
		input.TravelType = defaultTravelStyle
	}
	if input.Activities == nil {
		input.Activities = []string{}
	}
	return input
}

func (s *ItineraryService) ListItineraries(ctx context.Context, userID string, page, pageSize int) (*response_models.ItineraryPage, error) {
	if userID == "" {
		return nil, utils.ErrUnauthorized
	}
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	items, total, err := s.repo.ListByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []db_models.Itinerary{}
	}
	return &response_models.ItineraryPage{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (s *ItineraryService) GetItinerary(ctx context.Context, userID, id string) (*db_models.Itinerary, error) {
	if userID == "" {
		return nil, utils.ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	itinerary, err := s.repo.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}
