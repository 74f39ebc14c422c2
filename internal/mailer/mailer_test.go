package mailer

import (
	"testing"

	"github.com/papakado/store/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderBody_Courier(t *testing.T) {
	order := &model.Order{
		ID:              7,
		PersonsQuantity: 2,
		Total:           decimal.NewFromInt(240),
		Products: []model.OrderLine{
			{Name: "Сет Филадельфия", Price: decimal.NewFromInt(100), Quantity: 2},
			{Name: "Ролл Калифорния", Price: decimal.NewFromInt(50), Quantity: 1},
		},
		Delivery: &model.Delivery{
			Method:  model.DeliveryCourier,
			Name:    "Иван",
			Phone:   "+79990001122",
			Street:  "Невский проспект",
			House:   "1",
			Comment: "позвонить за час",
		},
		Payment: &model.Payment{Method: model.PaymentOffline},
	}

	body := orderBody(order)

	assert.Contains(t, body, "Заказ №7")
	assert.Contains(t, body, "Персон: 2")
	assert.Contains(t, body, "Сет Филадельфия — 2 x 100.00")
	assert.Contains(t, body, "Ролл Калифорния — 1 x 50.00")
	assert.Contains(t, body, "Итого: 240.00")
	assert.Contains(t, body, "Доставка: courier")
	assert.Contains(t, body, "Адрес: Невский проспект 1")
	assert.Contains(t, body, "Комментарий: позвонить за час")
	assert.Contains(t, body, "Оплата: offline")
}

func TestOrderBody_PickupSkipsAddress(t *testing.T) {
	order := &model.Order{
		ID:    8,
		Total: decimal.NewFromInt(100),
		Delivery: &model.Delivery{
			Method: model.DeliveryPickup,
			Name:   "Иван",
			Phone:  "+79990001122",
		},
	}

	body := orderBody(order)

	assert.Contains(t, body, "Доставка: pickup")
	assert.NotContains(t, body, "Адрес:")
	assert.NotContains(t, body, "Комментарий:")
}
