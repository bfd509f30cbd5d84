package request_models

import (
	"encoding/json"
	"testing"
)

func TestTripRequest_LenientCounts(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		duration  Count
		travelers Count
	}{
		{"integers", `{"duration":5,"travelers":2}`, CountOf(5), CountOf(2)},
		{"numeric strings", `{"duration":"5","travelers":" 3 "}`, CountOf(5), CountOf(3)},
		{"whole floats", `{"duration":5.0,"travelers":2.0}`, CountOf(5), CountOf(2)},
		{"fraction rounds up", `{"duration":2.5}`, CountOf(3), Count{}},
		{"non positive is absent", `{"duration":0,"travelers":-2}`, Count{}, Count{}},
		{"garbage is absent", `{"duration":"soon","travelers":true}`, Count{}, Count{}},
		{"huge is absent", `{"duration":1e20}`, Count{}, Count{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req TripRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.Duration != tc.duration || req.Travelers != tc.travelers {
				t.Fatalf("got duration=%+v travelers=%+v", req.Duration, req.Travelers)
			}
		})
	}
}

func TestTripRequest_BudgetForms(t *testing.T) {
	cases := map[string]Budget{
		`{"budget":1500}`:          {Value: 1500, Valid: true},
		`{"budget":"2000"}`:        {Value: 2000, Valid: true},
		`{"budget":[1000,3000]}`:   {Value: 1000, Valid: true},
		`{"budget":["800","900"]}`: {Value: 800, Valid: true},
		`{"budget":[]}`:            {},
		`{"budget":"cheap"}`:       {},
		`{"budget":null}`:          {},
	}
	for body, want := range cases {
		var req TripRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: decode: %v", body, err)
		}
		if req.Budget != want {
			t.Fatalf("%s: got %+v, want %+v", body, req.Budget, want)
		}
	}
}
