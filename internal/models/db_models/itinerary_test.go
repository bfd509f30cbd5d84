package db_models

import (
	"errors"
	"testing"
)

func TestItinerary_BeforeSaveStatus(t *testing.T) {
	it := &Itinerary{}
	if err := it.BeforeSave(nil); err != nil {
		t.Fatalf("empty status: %v", err)
	}
	if it.Status != ItineraryStatusDraft {
		t.Fatalf("empty status should default to draft, got %q", it.Status)
	}

	for _, s := range []ItineraryStatus{ItineraryStatusConfirmed, ItineraryStatusCompleted, ItineraryStatusCancelled} {
		if err := (&Itinerary{Status: s}).BeforeSave(nil); err != nil {
			t.Fatalf("%s rejected: %v", s, err)
		}
	}

	err := (&Itinerary{Status: "archived"}).BeforeSave(nil)
	if !errors.Is(err, ErrInvalidItineraryStatus) {
		t.Fatalf("expected ErrInvalidItineraryStatus, got %v", err)
	}
}
