package response_models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON scalar that may arrive as a number or a numeric string.
// Anything else (objects, booleans, garbage strings) decodes as absent instead of failing.
type Number struct {
	Value float64
	Valid bool
}

func NumberOf(v float64) Number { return Number{Value: v, Valid: true} }

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var s string
		if json.Unmarshal(data, &s) != nil {
			return nil
		}
		parsed, perr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if perr != nil {
			return nil
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number{Value: f, Valid: true}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// OrElse treats absent and zero as missing, so a literal 0 falls through to fallback.
func (n Number) OrElse(fallback float64) float64 {
	if n.Valid && n.Value != 0 {
		return n.Value
	}
	return fallback
}

// PositiveOrElse is OrElse for counts: zero and negative values fall through to fallback.
func (n Number) PositiveOrElse(fallback float64) float64 {
	if n.Valid && n.Value > 0 {
		return n.Value
	}
	return fallback
}

// Text is a JSON scalar expected to be a string; numbers are kept in their textual form.
type Text struct {
	Value string
	Valid bool
}

func TextOf(s string) Text { return Text{Value: s, Valid: true} }

func (t *Text) UnmarshalJSON(data []byte) error {
	*t = Text{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text{Value: s, Valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*t = Text{Value: strconv.FormatFloat(f, 'f', -1, 64), Valid: true}
	}
	return nil
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

// OrElse treats absent and empty as missing.
func (t Text) OrElse(fallback string) string {
	if t.Valid && t.Value != "" {
		return t.Value
	}
	return fallback
}

// AIItineraryResult is the itinerary as returned by the completion provider. None of it is
// trusted: every field may be absent or of the wrong type.
type AIItineraryResult struct {
	TripName       Text            `json:"tripName"`
	Destination    Text            `json:"destination"`
	Duration       Number          `json:"duration"`
	Travelers      Number          `json:"travelers"`
	TotalBudget    Number          `json:"totalBudget"`
	TravelType     Text            `json:"travelType"`
	StartDate      Text            `json:"startDate"`
	EndDate        Text            `json:"endDate"`
	Summary        json.RawMessage `json:"summary,omitempty"`
	DailyItinerary json.RawMessage `json:"dailyItinerary,omitempty"`
	Accommodations json.RawMessage `json:"accommodations,omitempty"`
	Transportation json.RawMessage `json:"transportation,omitempty"`
}

type AISummary struct {
	Flights       Number `json:"flights"`
	Accommodation Number `json:"accommodation"`
	Activities    Number `json:"activities"`
	Meals         Number `json:"meals"`
	Transport     Number `json:"transport"`
}

type AIDay struct {
	Day        Number          `json:"day"`
	Date       Text            `json:"date"`
	City       Text            `json:"city"`
	Title      Text            `json:"title"`
	Activities json.RawMessage `json:"activities,omitempty"`
}

type AIActivity struct {
	Time     Text   `json:"time"`
	Type     Text   `json:"type"`
	Title    Text   `json:"title"`
	Duration Text   `json:"duration"`
	Cost     Number `json:"cost"`
}

// CostSummary returns the summary block; a missing or malformed block yields all-absent values.
func (r *AIItineraryResult) CostSummary() AISummary {
	var s AISummary
	if len(r.Summary) == 0 {
		return s
	}
	if err := json.Unmarshal(r.Summary, &s); err != nil {
		return AISummary{}
	}
	return s
}

// DailyDays returns the day entries in their original order. ok is false when
// dailyItinerary is absent, null or not an array. An element that is not an object
// becomes a zero AIDay so the number of days is preserved.
func (r *AIItineraryResult) DailyDays() (days []AIDay, ok bool) {
	raw, ok := rawArray(r.DailyItinerary)
	if !ok {
		return nil, false
	}
	days = make([]AIDay, len(raw))
	for i, item := range raw {
		var d AIDay
		if err := json.Unmarshal(item, &d); err != nil {
			d = AIDay{}
		}
		days[i] = d
	}
	return days, true
}

// ActivityList returns the day's activities in order, or nil when the field is not an array.
func (d AIDay) ActivityList() []AIActivity {
	raw, ok := rawArray(d.Activities)
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make([]AIActivity, len(raw))
	for i, item := range raw {
		var a AIActivity
		if err := json.Unmarshal(item, &a); err != nil {
			a = AIActivity{}
		}
		out[i] = a
	}
	return out
}

func rawArray(msg json.RawMessage) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(msg)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, false
	}
	return raw, true
}
