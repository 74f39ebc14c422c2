package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/papakado/store/internal/model"
	"github.com/shopspring/decimal"
)

func (r *Repository) CreateOrder(ctx context.Context, personsQuantity int) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO orders (persons_quantity) VALUES ($1) RETURNING id`,
		personsQuantity,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	return id, nil
}

// AttachProducts записывает строки заказа со снимком имени и цены товара и
// атомарно увеличивает счётчик продаж одним UPDATE, без read-modify-write.
func (r *Repository) AttachProducts(ctx context.Context, orderID int64, lines []model.SubmitLineDTO) ([]model.OrderLine, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result := make([]model.OrderLine, 0, len(lines))
	for _, line := range lines {
		var (
			name  string
			price decimal.Decimal
		)

		err := tx.QueryRowContext(ctx,
			`INSERT INTO order_products (order_id, product_id, name, price, quantity)
			SELECT $1, p.id, p.name, p.price, $3 FROM products p WHERE p.id = $2
			RETURNING name, price`,
			orderID, line.ID, line.Quantity,
		).Scan(&name, &price)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, fmt.Errorf("attach product %d: %w", line.ID, model.ErrProductNotFound)
			}
			return nil, fmt.Errorf("attach product %d: %w", line.ID, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE products SET sales = sales + $2 WHERE id = $1`,
			line.ID, line.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("increment sales for product %d: %w", line.ID, err)
		}

		result = append(result, model.OrderLine{
			ProductID: line.ID,
			Name:      name,
			Price:     price,
			Quantity:  line.Quantity,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Repository) SetOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE orders SET total = $2 WHERE id = $1`,
		orderID, total,
	)
	if err != nil {
		return fmt.Errorf("set order total: %w", err)
	}

	return nil
}

func (r *Repository) AppendDelivery(ctx context.Context, orderID int64, input model.DeliveryDTO) (*model.Delivery, error) {
	delivery := model.Delivery{
		OrderID:   orderID,
		Method:    input.Method,
		Name:      input.Name,
		Phone:     input.Phone,
		Comment:   input.Comment,
		Street:    input.Street,
		House:     input.House,
		Apartment: input.Apartment,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO deliveries (order_id, method, name, phone, comment, street, house, apartment)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		orderID, input.Method, input.Name, input.Phone, input.Comment,
		input.Street, input.House, input.Apartment,
	).Scan(&delivery.ID)
	if err != nil {
		return nil, fmt.Errorf("append delivery: %w", err)
	}

	return &delivery, nil
}

func (r *Repository) AppendPayment(ctx context.Context, orderID int64, input model.PaymentDTO) (*model.Payment, error) {
	payment := model.Payment{
		OrderID: orderID,
		Method:  input.Method,
	}
	if input.Method == model.PaymentOnline {
		payment.Status = model.PaymentStatusUnpaid
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO payments (order_id, method, status) VALUES ($1, $2, $3) RETURNING id`,
		orderID, payment.Method, string(payment.Status),
	).Scan(&payment.ID)
	if err != nil {
		return nil, fmt.Errorf("append payment: %w", err)
	}

	return &payment, nil
}

func (r *Repository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.QueryRowContext(ctx,
		`SELECT id, persons_quantity, total, created_at FROM orders WHERE id = $1`,
		id,
	).Scan(&order.ID, &order.PersonsQuantity, &order.Total, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id, name, price, quantity FROM order_products WHERE order_id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line model.OrderLine
		if err := rows.Scan(&line.ProductID, &line.Name, &line.Price, &line.Quantity); err != nil {
			return nil, err
		}
		order.Products = append(order.Products, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var delivery model.Delivery
	err = r.db.QueryRowContext(ctx,
		`SELECT id, order_id, method, name, phone, comment, street, house, apartment
		FROM deliveries WHERE order_id = $1`,
		id,
	).Scan(&delivery.ID, &delivery.OrderID, &delivery.Method, &delivery.Name,
		&delivery.Phone, &delivery.Comment, &delivery.Street, &delivery.House, &delivery.Apartment)
	if err == nil {
		order.Delivery = &delivery
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order delivery: %w", err)
	}

	var (
		payment model.Payment
		status  sql.NullString
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT id, order_id, method, status FROM payments WHERE order_id = $1`,
		id,
	).Scan(&payment.ID, &payment.OrderID, &payment.Method, &status)
	if err == nil {
		payment.Status = model.PaymentStatus(status.String)
		order.Payment = &payment
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get order payment: %w", err)
	}

	return &order, nil
}

// UpdatePaymentStatus обновляет статус только online-варианта оплаты.
func (r *Repository) UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE payments SET status = $2 WHERE order_id = $1 AND method = 'online'`,
		orderID, string(status),
	)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrPaymentNotOnline
	}

	return nil
}
