package domain

import "time"

type Customer struct {
	ID            int       `db:"id"`
	Phone         string    `db:"phone"`
	Name          string    `db:"name"`
	PasswordHash  string    `db:"password_hash"`
	WalletBalance float64   `db:"wallet_balance"`
	DueAmount     float64   `db:"due_amount"`
	LoyaltyPoints int       `db:"loyalty_points"`
	TotalOrders   int       `db:"total_orders"`
	ReferredBy    string    `db:"referred_by"`
	CreatedAt     time.Time `db:"created_at"`
}

type Order struct {
	ID                 int        `db:"id"`
	Code               string     `db:"code"`
	CustomerID         int        `db:"customer_id"`
	PartnerID          *int       `db:"partner_id"`
	HubID              *int       `db:"hub_id"`
	Status             string     `db:"status"`
	TotalAmount        float64    `db:"total_amount"`
	CancellationFee    float64    `db:"cancellation_fee"`
	DeliveryFailureFee float64    `db:"delivery_failure_fee"`
	PaymentMethod      string     `db:"payment_method"`
	PaymentStatus      string     `db:"payment_status"`
	WalletUsed         float64    `db:"wallet_used"`
	AppliedVoucherCode string     `db:"applied_voucher_code"`
	PickupAddress      string     `db:"pickup_address"`
	PickupPincode      string     `db:"pickup_pincode"`
	DeliveryAddress    string     `db:"delivery_address"`
	Notes              string     `db:"notes"`
	ReachedLocationAt  *time.Time `db:"reached_location_at"`
	PickedUpAt         *time.Time `db:"picked_up_at"`
	DeliveredToHubAt   *time.Time `db:"delivered_to_hub_at"`
	OutForDeliveryAt   *time.Time `db:"out_for_delivery_at"`
	DeliveredAt        *time.Time `db:"delivered_at"`
	CancelledAt        *time.Time `db:"cancelled_at"`
	DeliveryFailedAt   *time.Time `db:"delivery_failed_at"`
	CreatedAt          time.Time  `db:"created_at"`
}

type OrderItem struct {
	ID       int     `db:"id"`
	OrderID  int     `db:"order_id"`
	Name     string  `db:"name"`
	Quantity int     `db:"quantity"`
	Price    float64 `db:"price"`
}

// StatusEntry is one row of an order's append-only status history.
type StatusEntry struct {
	ID        int       `db:"id"`
	OrderID   int       `db:"order_id"`
	Status    string    `db:"status"`
	UpdatedBy string    `db:"updated_by"`
	CreatedAt time.Time `db:"created_at"`
}

// WalletTransaction is the append-only audit record of every balance and
// points change. The customer row is the materialized view; this log is
// the source of truth for history.
type WalletTransaction struct {
	ID            int       `db:"id"`
	CustomerID    int       `db:"customer_id"`
	Type          string    `db:"type"`
	Action        string    `db:"action"`
	Amount        float64   `db:"amount"`
	Reason        string    `db:"reason"`
	PreviousValue float64   `db:"previous_value"`
	NewValue      float64   `db:"new_value"`
	AdjustedBy    string    `db:"adjusted_by"`
	CreatedAt     time.Time `db:"created_at"`
}

// ReferralCode is a per-customer single-use code redeemable by a new
// customer's first order for mutual bonuses.
type ReferralCode struct {
	ID         int        `db:"id"`
	CustomerID int        `db:"customer_id"`
	Code       string     `db:"code"`
	Used       bool       `db:"used"`
	UsedBy     *int       `db:"used_by"`
	UsedAt     *time.Time `db:"used_at"`
}

type UsedVoucher struct {
	ID          int       `db:"id"`
	CustomerID  int       `db:"customer_id"`
	VoucherCode string    `db:"voucher_code"`
	OrderID     *int      `db:"order_id"`
	UsedAt      time.Time `db:"used_at"`
}

type Hub struct {
	ID        int       `db:"id"`
	Name      string    `db:"name"`
	Pincodes  []string  `db:"pincodes"`
	CreatedAt time.Time `db:"created_at"`
}

type Notification struct {
	ID         int        `db:"id"`
	Title      string     `db:"title"`
	Message    string     `db:"message"`
	Audience   string     `db:"audience"`
	CustomerID *int       `db:"customer_id"`
	Status     string     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	SentAt     *time.Time `db:"sent_at"`
}

// OrderCharges is the admin-editable fee schedule. It is read live at the
// moment a fee is computed, never frozen at order creation.
type OrderCharges struct {
	ID                     int     `db:"id"`
	CancellationPercentage float64 `db:"cancellation_percentage"`
	CustomerUnavailable    float64 `db:"customer_unavailable"`
	IncorrectAddress       float64 `db:"incorrect_address"`
	RefusalToAccept        float64 `db:"refusal_to_accept"`
}

type WalletSettings struct {
	ID                    int     `db:"id"`
	PointsPerRupee        float64 `db:"points_per_rupee"`
	MinRedeemPoints       int     `db:"min_redeem_points"`
	ReferralPoints        int     `db:"referral_points"`
	SignupBonusPoints     int     `db:"signup_bonus_points"`
	OrderCompletionPoints int     `db:"order_completion_points"`
	MinOrderPrice         float64 `db:"min_order_price"`
}
