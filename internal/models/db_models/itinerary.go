package db_models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ItineraryStatus string

const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusConfirmed ItineraryStatus = "confirmed"
	ItineraryStatusCompleted ItineraryStatus = "completed"
	ItineraryStatusCancelled ItineraryStatus = "cancelled"
)

func (s ItineraryStatus) Valid() bool {
	switch s {
	case ItineraryStatusDraft, ItineraryStatusConfirmed, ItineraryStatusCompleted, ItineraryStatusCancelled:
		return true
	}
	return false
}

var ErrInvalidItineraryStatus = errors.New("invalid itinerary status")

const DefaultCurrency = "INR"

// Itinerary is the persisted, authoritative trip plan. DailyPlan and CostBreakdown
// belong to a single itinerary and are stored inline as jsonb.
type Itinerary struct {
	BaseModel
	UserID        string          `gorm:"index;not null" json:"user"`
	Destination   string          `gorm:"not null" json:"destination"`
	TripName      string          `json:"trip_name"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	TotalDays     int             `json:"total_days"`
	Budget        float64         `json:"budget"`
	TravelStyle   string          `json:"travel_style"`
	Status        ItineraryStatus `gorm:"type:varchar(16);index;not null" json:"status"`
	DailyPlan     []DayPlan       `gorm:"type:jsonb;serializer:json" json:"daily_plan"`
	CostBreakdown CostBreakdown   `gorm:"type:jsonb;serializer:json" json:"cost_breakdown"`
}

// BeforeSave defaults an empty status to draft and refuses anything outside the lifecycle.
func (i *Itinerary) BeforeSave(tx *gorm.DB) error {
	if i.Status == "" {
		i.Status = ItineraryStatusDraft
	}
	if !i.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidItineraryStatus, i.Status)
	}
	return nil
}

type DayPlan struct {
	Date       time.Time         `json:"date"`
	Activities []PlannedActivity `json:"activities"`
}

// PlannedActivity references catalog entries by id; both ids stay nil until a
// catalog lookup resolves them.
type PlannedActivity struct {
	PoiID           *uuid.UUID `json:"poi_id"`
	AccommodationID *uuid.UUID `json:"accommodation_id"`
	TransportMode   string     `json:"transport_mode"`
	Notes           string     `json:"notes"`
	EstimatedCost   float64    `json:"estimated_cost"`
}

// CostBreakdown keeps three of the five AI summary components. Total is the sum of
// all five (flights and meals included), so it can exceed Transport+Accommodation+Activities.
type CostBreakdown struct {
	Transport     float64 `json:"transport"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}
