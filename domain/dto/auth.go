package dto

type RegisterRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=50"`
	Password string `json:"password" validate:"required,min=1,maxbytes=72"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

const TokenTypeBearer = "bearer"

// TokenResponse ใช้รูปแบบ OAuth2 bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
