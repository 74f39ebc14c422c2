package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/papakado/store/internal/model"
)

func (r *Repository) GetCouponByValue(ctx context.Context, value string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.db.QueryRowContext(ctx,
		`SELECT id, value, discount, is_active FROM coupons WHERE value = $1`,
		value,
	).Scan(&coupon.ID, &coupon.Value, &coupon.Discount, &coupon.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrCouponNotFound
		}
		return nil, fmt.Errorf("get coupon: %w", err)
	}

	return &coupon, nil
}

func (r *Repository) ListCoupons(ctx context.Context) ([]model.Coupon, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, value, discount, is_active FROM coupons ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	result := make([]model.Coupon, 0)
	for rows.Next() {
		var coupon model.Coupon
		if err := rows.Scan(&coupon.ID, &coupon.Value, &coupon.Discount, &coupon.IsActive); err != nil {
			return nil, err
		}
		result = append(result, coupon)
	}

	return result, rows.Err()
}

func (r *Repository) CreateCoupon(ctx context.Context, input model.CreateCouponDTO) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO coupons (value, discount, is_active) VALUES ($1, $2, $3) RETURNING id`,
		input.Value, input.Discount, input.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create coupon: %w", err)
	}

	return id, nil
}

func (r *Repository) DeleteCoupon(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return model.ErrCouponNotFound
	}

	return nil
}
