package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

// UpdatePreferencesRequest needs at least one of Interests or TravelStyle.
type UpdatePreferencesRequest struct {
	Interests   []string `json:"interests"`
	TravelStyle string   `json:"travelStyle"`
}
