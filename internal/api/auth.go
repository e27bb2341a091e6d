package api

// Request DTOs

type CredentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type SignupResponse struct {
	Id      int64  `json:"id"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token,omitempty"` // for clients that do not keep cookies
}

type LogoutResponse struct {
	Message string `json:"message"`
}
