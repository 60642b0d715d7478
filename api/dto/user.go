package dto

// RegisterRequestDTO is the /users/register request body.
type RegisterRequestDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterResponseDTO is returned after a successful registration.
type RegisterResponseDTO struct {
	Message string `json:"message" example:"user registered successfully"`
	UserID  string `json:"user_id"`
}

// LoginResponseDTO carries the issued bearer token.
type LoginResponseDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// UserProfileDTO is the /users/profile response schema.
type UserProfileDTO struct {
	Name               string   `json:"name"`
	Email              string   `json:"email" example:"user@example.com"`
	CreatedAt          string   `json:"created_at" example:"2025-01-01T12:00:00Z"`
	ProfileImage       string   `json:"profile_image"`
	SelectedCategories []string `json:"selected_categories"`
	Favourites         []string `json:"favourites"`
}

// UpdateCategoriesRequestDTO is the PUT /users/categories request body.
type UpdateCategoriesRequestDTO struct {
	SelectedCategories []string `json:"selected_categories" binding:"required"`
}
