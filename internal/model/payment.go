package model

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentOffline PaymentMethod = "offline"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Payment is a tagged union over the online and offline variants.
// Only the online variant carries a status; it is mutated by the
// payment-status check after the gateway responds. Offline is terminal
// at creation.
type Payment struct {
	ID      int64         `json:"-"`
	OrderID int64         `json:"-"`
	Method  PaymentMethod `json:"method"`
	Status  PaymentStatus `json:"status,omitempty"`
}

type PaymentDTO struct {
	Method PaymentMethod `json:"method" validate:"required,oneof=online offline"`
}

type CheckPaymentStatusDTO struct {
	OrderID string `json:"order_id" validate:"required"`
}
