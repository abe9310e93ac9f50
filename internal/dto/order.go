package dto

import "time"

type OrderItemDTO struct {
	Name     string  `json:"name" example:"Shirt"`
	Quantity int     `json:"quantity" example:"3"`
	Price    float64 `json:"price" example:"30"`
}

type CreateOrderRequestDTO struct {
	CustomerID         int            `json:"customer_id" example:"1"`
	Items              []OrderItemDTO `json:"items,omitempty"`
	TotalAmount        float64        `json:"total_amount" example:"500"`
	PaymentMethod      string         `json:"payment_method" example:"cod"`
	PaymentStatus      string         `json:"payment_status,omitempty" example:"pending"`
	WalletUsed         float64        `json:"wallet_used,omitempty" example:"0"`
	AppliedVoucherCode string         `json:"applied_voucher_code,omitempty"`
	PickupAddress      string         `json:"pickup_address"`
	PickupPincode      string         `json:"pickup_pincode" example:"560001"`
	DeliveryAddress    string         `json:"delivery_address,omitempty"`
	Notes              string         `json:"notes,omitempty"`
}

type UpdateOrderRequestDTO struct {
	Status             *string    `json:"status,omitempty" example:"cancelled"`
	DeliveryFailureFee *float64   `json:"delivery_failure_fee,omitempty" example:"150"`
	FailureReason      string     `json:"failure_reason,omitempty" example:"customer_unavailable"`
	PartnerID          *int       `json:"partner_id,omitempty"`
	HubID              *int       `json:"hub_id,omitempty"`
	PaymentStatus      *string    `json:"payment_status,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	ReachedLocationAt  *time.Time `json:"reached_location_at,omitempty"`
	PickedUpAt         *time.Time `json:"picked_up_at,omitempty"`
	DeliveredToHubAt   *time.Time `json:"delivered_to_hub_at,omitempty"`
	OutForDeliveryAt   *time.Time `json:"out_for_delivery_at,omitempty"`
}

type OrderResponseDTO struct {
	ID                 int        `json:"id"`
	Code               string     `json:"code" example:"7KQ2M"`
	CustomerID         int        `json:"customer_id"`
	PartnerID          *int       `json:"partner_id,omitempty"`
	HubID              *int       `json:"hub_id,omitempty"`
	Status             string     `json:"status" example:"pending"`
	TotalAmount        float64    `json:"total_amount"`
	CancellationFee    float64    `json:"cancellation_fee,omitempty"`
	DeliveryFailureFee float64    `json:"delivery_failure_fee,omitempty"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentStatus      string     `json:"payment_status"`
	WalletUsed         float64    `json:"wallet_used,omitempty"`
	AppliedVoucherCode string     `json:"applied_voucher_code,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
	DeliveryFailedAt   *time.Time `json:"delivery_failed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type StatusEntryDTO struct {
	Status    string    `json:"status"`
	UpdatedBy string    `json:"updated_by"`
	CreatedAt time.Time `json:"created_at"`
}

type GetOrderResponseDTO struct {
	Order   OrderResponseDTO `json:"order"`
	History []StatusEntryDTO `json:"history"`
}

type UpdateOrderResponseDTO struct {
	Order   OrderResponseDTO `json:"order"`
	Fee     float64          `json:"fee,omitempty" example:"100"`
	Message string           `json:"message,omitempty" example:"Cancellation fee of 100.00 charged"`
}
