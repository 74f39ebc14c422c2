package service

import (
	"testing"

	"github.com/papakado/store/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lines() []model.OrderLine {
	return []model.OrderLine{
		{ProductID: 1, Name: "Сет Филадельфия", Price: decimal.NewFromInt(100), Quantity: 2},
		{ProductID: 2, Name: "Ролл Калифорния", Price: decimal.NewFromInt(50), Quantity: 1},
	}
}

func TestCalculateTotal_NoCoupon(t *testing.T) {
	total := CalculateTotal(lines(), nil)

	assert.True(t, total.Equal(decimal.NewFromInt(250)), "got %s", total)
}

func TestCalculateTotal_ActiveCoupon(t *testing.T) {
	coupon := &model.Coupon{
		Value:    "SAVE10",
		Discount: decimal.NewFromInt(10),
		IsActive: true,
	}

	total := CalculateTotal(lines(), coupon)

	assert.True(t, total.Equal(decimal.NewFromInt(240)), "got %s", total)
}

func TestCalculateTotal_InactiveCoupon(t *testing.T) {
	coupon := &model.Coupon{
		Value:    "OLD",
		Discount: decimal.NewFromInt(10),
		IsActive: false,
	}

	total := CalculateTotal(lines(), coupon)

	assert.True(t, total.Equal(decimal.NewFromInt(250)), "got %s", total)
}

func TestCalculateTotal_DiscountLargerThanSum(t *testing.T) {
	coupon := &model.Coupon{
		Value:    "BIG",
		Discount: decimal.NewFromInt(1000),
		IsActive: true,
	}

	total := CalculateTotal(lines(), coupon)

	assert.True(t, total.Equal(decimal.Zero), "got %s", total)
}

func TestCalculateTotal_EmptyOrder(t *testing.T) {
	total := CalculateTotal(nil, nil)

	assert.True(t, total.Equal(decimal.Zero), "got %s", total)
}
