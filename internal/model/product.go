package model

import "github.com/shopspring/decimal"

type Product struct {
	ID         int64           `json:"id"`
	CategoryID int64           `json:"category_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Sales      int64           `json:"sales"`
}
