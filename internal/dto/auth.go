package dto

// SignupRequest represents the payload to create an account
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse represents a user object in responses
type UserResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	PixKey          *string `json:"pix_key,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// AuthResponse is returned on successful signup or login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// GoogleUserInfo is the profile subset fetched from Google after an OAuth
// exchange
type GoogleUserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
	Verified bool   `json:"verified"`
}

// UpdateProfileRequest represents profile changes. Password change requires
// the current password alongside the new one.
type UpdateProfileRequest struct {
	Name            string  `json:"name"`
	CurrentPassword *string `json:"current_password"`
	NewPassword     *string `json:"new_password"`
	ProfileImageURL *string `json:"profile_image_url"`
	PixKey          *string `json:"pix_key"`
}
