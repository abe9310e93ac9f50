package dto

import "time"

type AdjustWalletRequestDTO struct {
	CustomerID int     `json:"customer_id" example:"1"`
	Type       string  `json:"type" example:"balance"`
	Action     string  `json:"action" example:"increase"`
	Amount     float64 `json:"amount" example:"100"`
	Reason     string  `json:"reason" example:"Goodwill credit"`
}

type AdjustWalletResponseDTO struct {
	OldValue float64 `json:"old_value" example:"50"`
	NewValue float64 `json:"new_value" example:"150"`
}

type TransactionResponseDTO struct {
	Type          string    `json:"type" example:"balance"`
	Action        string    `json:"action" example:"decrease"`
	Amount        float64   `json:"amount" example:"100"`
	Reason        string    `json:"reason"`
	PreviousValue float64   `json:"previous_value"`
	NewValue      float64   `json:"new_value"`
	AdjustedBy    string    `json:"adjusted_by" example:"System"`
	CreatedAt     time.Time `json:"created_at"`
}
