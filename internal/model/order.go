package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64           `json:"id"`
	PersonsQuantity int             `json:"persons_quantity"`
	Total           decimal.Decimal `json:"total"`
	Products        []OrderLine     `json:"products"`
	Delivery        *Delivery       `json:"delivery,omitempty"`
	Payment         *Payment        `json:"payment,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderLine keeps a snapshot of the product name and unit price at
// submission time. The total is never recomputed from the catalog later.
type OrderLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int32           `json:"quantity"`
}

type SubmitLineDTO struct {
	ID       int64 `json:"id" validate:"required,gt=0"`
	Quantity int32 `json:"quantity" validate:"required,gt=0"`
}

type SubmitOrderDTO struct {
	PersonsQuantity int             `json:"persons_quantity" validate:"gte=0"`
	Products        []SubmitLineDTO `json:"products" validate:"required,min=1,dive"`
	Coupon          string          `json:"coupon"`
	Delivery        DeliveryDTO     `json:"delivery"`
	Payment         PaymentDTO      `json:"payment"`
}

type SubmitOrderResult struct {
	RedirectURL string `json:"redirect_url"`
	External    bool   `json:"external"`
}
