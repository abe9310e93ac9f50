package dto

type OrderChargesDTO struct {
	CancellationPercentage float64 `json:"cancellation_percentage" example:"20"`
	CustomerUnavailable    float64 `json:"customer_unavailable" example:"150"`
	IncorrectAddress       float64 `json:"incorrect_address" example:"150"`
	RefusalToAccept        float64 `json:"refusal_to_accept" example:"150"`
}

type UpdateOrderChargesRequestDTO struct {
	CancellationPercentage *float64 `json:"cancellation_percentage,omitempty"`
	CustomerUnavailable    *float64 `json:"customer_unavailable,omitempty"`
	IncorrectAddress       *float64 `json:"incorrect_address,omitempty"`
	RefusalToAccept        *float64 `json:"refusal_to_accept,omitempty"`
}

type WalletSettingsDTO struct {
	PointsPerRupee        float64 `json:"points_per_rupee" example:"1"`
	MinRedeemPoints       int     `json:"min_redeem_points" example:"100"`
	ReferralPoints        int     `json:"referral_points" example:"50"`
	SignupBonusPoints     int     `json:"signup_bonus_points" example:"25"`
	OrderCompletionPoints int     `json:"order_completion_points" example:"10"`
	MinOrderPrice         float64 `json:"min_order_price" example:"100"`
}

type UpdateWalletSettingsRequestDTO struct {
	PointsPerRupee        *float64 `json:"points_per_rupee,omitempty"`
	MinRedeemPoints       *int     `json:"min_redeem_points,omitempty"`
	ReferralPoints        *int     `json:"referral_points,omitempty"`
	SignupBonusPoints     *int     `json:"signup_bonus_points,omitempty"`
	OrderCompletionPoints *int     `json:"order_completion_points,omitempty"`
	MinOrderPrice         *float64 `json:"min_order_price,omitempty"`
}
