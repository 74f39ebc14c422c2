package model

import "github.com/shopspring/decimal"

// Coupon lookup is by exact value match; only active coupons may affect
// an order total.
type Coupon struct {
	ID       int64           `json:"id"`
	Value    string          `json:"value"`
	Discount decimal.Decimal `json:"discount"`
	IsActive bool            `json:"is_active"`
}

type CreateCouponDTO struct {
	Value    string          `json:"value" validate:"required"`
	Discount decimal.Decimal `json:"discount"`
	IsActive bool            `json:"is_active"`
}
