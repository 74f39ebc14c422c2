package mailer

import (
	"fmt"
	"strings"

	"github.com/papakado/store/internal/model"
	"gopkg.in/gomail.v2"
)

type Config struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string
	OperatorEmail string
}

// Mailer отправляет уведомления оператору. Обе отправки глушатся в
// debug-режиме на уровне сервиса, сюда вызовы не доходят.
type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	operator string
}

func New(cfg Config) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:     cfg.From,
		operator: cfg.OperatorEmail,
	}
}

func (m *Mailer) SendOrderPlaced(order *model.Order) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.operator)
	msg.SetHeader("Subject", fmt.Sprintf("Новый заказ №%d", order.ID))
	msg.SetBody("text/plain", orderBody(order))

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) SendDeliveryError(cause error) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.operator)
	msg.SetHeader("Subject", "Ошибка системы доставки")
	msg.SetBody("text/plain", cause.Error())

	return m.dialer.DialAndSend(msg)
}

func orderBody(order *model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Заказ №%d\n", order.ID)
	fmt.Fprintf(&b, "Персон: %d\n\n", order.PersonsQuantity)

	for _, line := range order.Products {
		fmt.Fprintf(&b, "%s — %d x %s\n", line.Name, line.Quantity, line.Price.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nИтого: %s\n", order.Total.StringFixed(2))

	if order.Delivery != nil {
		fmt.Fprintf(&b, "\nДоставка: %s\n", order.Delivery.Method)
		fmt.Fprintf(&b, "Имя: %s\n", order.Delivery.Name)
		fmt.Fprintf(&b, "Телефон: %s\n", order.Delivery.Phone)
		if order.Delivery.Method == model.DeliveryCourier {
			fmt.Fprintf(&b, "Адрес: %s %s %s\n", order.Delivery.Street, order.Delivery.House, order.Delivery.Apartment)
		}
		if order.Delivery.Comment != "" {
			fmt.Fprintf(&b, "Комментарий: %s\n", order.Delivery.Comment)
		}
	}

	if order.Payment != nil {
		fmt.Fprintf(&b, "\nОплата: %s\n", order.Payment.Method)
	}

	return b.String()
}
