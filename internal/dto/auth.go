package dto

type RegisterRequestDTO struct {
	Phone      string `json:"phone" validate:"required,min=10,max=15"`
	Name       string `json:"name" validate:"required"`
	Password   string `json:"password" validate:"required,min=8"`
	ReferredBy string `json:"referred_by,omitempty"`
}

type RegisterResponseDTO struct {
	ID      int    `json:"id"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token string `json:"token"`
}

type OTPRequestDTO struct {
	Phone string `json:"phone" validate:"required"`
}
