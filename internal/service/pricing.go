package service

import (
	"github.com/papakado/store/internal/model"
	"github.com/shopspring/decimal"
)

// CalculateTotal суммирует количество × цену по строкам заказа и один
// раз применяет скидку активного купона. Неактивный купон суммы не
// меняет. Итог не уходит в минус: скидка больше суммы даёт ноль.
func CalculateTotal(lines []model.OrderLine, coupon *model.Coupon) decimal.Decimal {
	total := decimal.Zero

	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
	}

	if coupon != nil && coupon.IsActive {
		total = total.Sub(coupon.Discount)
		if total.IsNegative() {
			total = decimal.Zero
		}
	}

	return total
}
