package model

type DeliveryMethod string

const (
	DeliveryPickup  DeliveryMethod = "pickup"
	DeliveryCourier DeliveryMethod = "courier"
)

// Delivery is a tagged union over the pickup and courier variants.
// Method selects the active variant; the address fields belong to the
// courier variant and to pickup points that carry an address.
type Delivery struct {
	ID        int64          `json:"-"`
	OrderID   int64          `json:"-"`
	Method    DeliveryMethod `json:"method"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Comment   string         `json:"comment,omitempty"`
	Street    string         `json:"street,omitempty"`
	House     string         `json:"house,omitempty"`
	Apartment string         `json:"apartment,omitempty"`
}

type DeliveryDTO struct {
	Method    DeliveryMethod `json:"method" validate:"required,oneof=pickup courier"`
	Name      string         `json:"name" validate:"required"`
	Phone     string         `json:"phone" validate:"required"`
	Comment   string         `json:"comment"`
	Street    string         `json:"street" validate:"required_if=Method courier"`
	House     string         `json:"house" validate:"required_if=Method courier"`
	Apartment string         `json:"apartment"`
}
