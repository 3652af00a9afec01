package request

import "pourup/internal/domain/user"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// ToDomain revalidates through the credentials value object; binding tags
// only gate obviously malformed input.
func (r LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RefreshRequest is the body fallback for clients that cannot send the
// refresh-token cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
