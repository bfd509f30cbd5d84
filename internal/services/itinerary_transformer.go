package services

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"travigo/internal/models/db_models"
	"travigo/internal/models/response_models"
	"travigo/pkg/utils"
)

const (
	defaultTripName      = "My Trip"
	defaultTravelStyle   = "balanced"
	defaultTransportMode = "walk"
	maxTripDays          = 365
)

type ItineraryTransformerInterface interface {
	Transform(ai *response_models.AIItineraryResult, ownerID, destination string) (*db_models.Itinerary, error)
}

// ItineraryTransformer maps the provider's itinerary onto the persisted entity.
type ItineraryTransformer struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewItineraryTransformer(logger zerolog.Logger) *ItineraryTransformer {
	return &ItineraryTransformer{
		logger: logger.With().Str("component", "itinerary_transformer").Logger(),
		now:    time.Now,
	}
}

func (t *ItineraryTransformer) Transform(ai *response_models.AIItineraryResult, ownerID, destination string) (*db_models.Itinerary, error) {
	var missing []string
	if ai == nil {
		missing = append(missing, "aiResponse")
	}
	if strings.TrimSpace(ownerID) == "" {
		missing = append(missing, "userId")
	}
	if strings.TrimSpace(destination) == "" {
		missing = append(missing, "destination")
	}
	if len(missing) > 0 {
		return nil, utils.NewValidationError(missing...)
	}

	// one clock reading per call so every defaulted date agrees
	now := t.now().UTC()
	summary := ai.CostSummary()

	itinerary := &db_models.Itinerary{
		UserID:      ownerID,
		Destination: destination,
		TripName:    ai.TripName.OrElse(defaultTripName),
		StartDate:   t.dateOrNow("startDate", ai.StartDate, now),
		EndDate:     t.dateOrNow("endDate", ai.EndDate, now),
		TotalDays:   tripDays(ai.Duration),
		Budget:      ai.TotalBudget.OrElse(0),
		TravelStyle: ai.TravelType.OrElse(defaultTravelStyle),
		Status:      db_models.ItineraryStatusDraft,
		DailyPlan:   []db_models.DayPlan{},
		CostBreakdown: db_models.CostBreakdown{
			Transport:     summary.Transport.OrElse(0),
			Accommodation: summary.Accommodation.OrElse(0),
			Activities:    summary.Activities.OrElse(0),
			// flights and meals only show up in the total
			Total: summary.Flights.OrElse(0) +
				summary.Accommodation.OrElse(0) +
				summary.Activities.OrElse(0) +
				summary.Meals.OrElse(0) +
				summary.Transport.OrElse(0),
			Currency: db_models.DefaultCurrency,
		},
	}

	days, ok := ai.DailyDays()
	if !ok {
		t.logger.Warn().
			Str("user_id", ownerID).
			Str("destination", destination).
			RawJSON("daily_itinerary", rawOrNull(ai.DailyItinerary)).
			Msg("AI response dailyItinerary is missing or invalid")
	} else {
		itinerary.DailyPlan = make([]db_models.DayPlan, 0, len(days))
		for i, day := range days {
			itinerary.DailyPlan = append(itinerary.DailyPlan, db_models.DayPlan{
				Date:       t.dateOrNow("dailyItinerary["+strconv.Itoa(i)+"].date", day.Date, now),
				Activities: toPlannedActivities(day.ActivityList()),
			})
		}
	}

	t.logger.Info().
		Str("user_id", ownerID).
		Int("days", len(itinerary.DailyPlan)).
		Msg("AI response transformed successfully for DB")
	return itinerary, nil
}

// tripDays rounds a fractional duration up and keeps it within 1..maxTripDays.
func tripDays(n response_models.Number) int {
	d := math.Ceil(n.PositiveOrElse(1))
	if math.IsNaN(d) || d < 1 {
		return 1
	}
	if d > maxTripDays {
		return maxTripDays
	}
	return int(d)
}

func toPlannedActivities(acts []response_models.AIActivity) []db_models.PlannedActivity {
	out := make([]db_models.PlannedActivity, 0, len(acts))
	for _, a := range acts {
		out = append(out, db_models.PlannedActivity{
			PoiID:           nil,
			AccommodationID: nil,
			TransportMode:   a.Type.OrElse(defaultTransportMode),
			Notes:           a.Title.OrElse(""),
			EstimatedCost:   a.Cost.OrElse(0),
		})
	}
	return out
}

func (t *ItineraryTransformer) dateOrNow(field string, v response_models.Text, now time.Time) time.Time {
	raw := v.OrElse("")
	if raw == "" {
		return now
	}
	parsed, ok := utils.ParseTripDate(raw)
	if !ok {
		t.logger.Warn().Str("field", field).Str("value", raw).Msg("unparseable date from AI response, using current time")
		return now
	}
	return parsed
}

func rawOrNull(b []byte) []byte {
	if len(b) == 0 {
		return []byte("null")
	}
	return b
}
