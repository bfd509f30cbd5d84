package response_models

import "travigo/internal/models/db_models"

type AccountLoginResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Token string `json:"token"`
}

type PreferencesResponse = db_models.AccountPreferences

type ItineraryPage struct {
	Items    []db_models.Itinerary `json:"items"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"page_size"`
	Total    int64                 `json:"total"`
}
