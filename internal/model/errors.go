package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

const (
	ErrInternalServerMessage         = "internal server error"
	ErrInvalidLoginOrPasswordMessage = "invalid login or password"
	ErrOrderNotFoundMessage          = "order not found"
	ErrCouponAlreadyExistMessage     = "coupon already exists"
	ErrGatewayMessage                = "payment gateway is unavailable"
	ErrPaymentNotOnlineMessage       = "order payment is not online"
)

var (
	ErrOrderNotFound    = errors.New(ErrOrderNotFoundMessage)
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrPaymentNotOnline = errors.New(ErrPaymentNotOnlineMessage)
)
