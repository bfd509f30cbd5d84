package request_models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Budget accepts a number, a numeric string, or a range array whose first element is used.
type Budget struct {
	Value float64
	Valid bool
}

func (b *Budget) UnmarshalJSON(data []byte) error {
	*b = Budget{}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil || len(items) == 0 {
			return nil
		}
		data = items[0]
	}
	if f, ok := lenientNumber(data); ok {
		*b = Budget{Value: f, Valid: true}
	}
	return nil
}

func (b Budget) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(b.Value)
}

// Count accepts a whole number sent as a number, a float such as 5.0 or a numeric string.
// Fractions round up; zero, negatives and out-of-range values decode as absent.
type Count struct {
	Value int
	Valid bool
}

const maxCount = 1 << 20

func CountOf(n int) Count { return Count{Value: n, Valid: true} }

func (c *Count) UnmarshalJSON(data []byte) error {
	*c = Count{}
	f, ok := lenientNumber(bytes.TrimSpace(data))
	if !ok {
		return nil
	}
	f = math.Ceil(f)
	if f < 1 || f > maxCount {
		return nil
	}
	*c = Count{Value: int(f), Valid: true}
	return nil
}

func (c Count) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// OrElse returns the count, or fallback when it was absent.
func (c Count) OrElse(fallback int) int {
	if c.Valid {
		return c.Value
	}
	return fallback
}

// lenientNumber reads a JSON number or numeric string. Anything else reports false.
func lenientNumber(data []byte) (float64, bool) {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var s string
		if json.Unmarshal(data, &s) != nil {
			return 0, false
		}
		parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr != nil {
			return 0, false
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// TripRequest is the generate-itinerary body. Required fields are checked by the
// service so it can report every missing field at once.
type TripRequest struct {
	TripName        string   `json:"tripName"`
	Destination     string   `json:"destination"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	Budget          Budget   `json:"budget"`
	TravelType      string   `json:"travelType"`
	Duration        Count    `json:"duration"`
	Activities      []string `json:"activities"`
	Accommodation   string   `json:"accommodation"`
	Transportation  string   `json:"transportation"`
	SpecialRequests string   `json:"specialRequests"`
	Travelers       Count    `json:"travelers"`
}

// AIItineraryInput is what gets serialized into the user message of the completion prompt.
type AIItineraryInput struct {
	TripName        string   `json:"tripName"`
	Destination     string   `json:"destination"`
	StartDate       string   `json:"startDate"`
	EndDate         string   `json:"endDate"`
	TotalBudget     float64  `json:"totalBudget"`
	Duration        int      `json:"duration"`
	TravelType      string   `json:"travelType"`
	Activities      []string `json:"activities"`
	Accommodation   string   `json:"accommodation"`
	Transportation  string   `json:"transportation"`
	SpecialRequests string   `json:"specialRequests"`
	Travelers       int      `json:"travelers"`
}
