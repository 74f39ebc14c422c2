package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/papakado/store/internal/model"
	"github.com/papakado/store/internal/repository/pg"
	"github.com/papakado/store/internal/sbis"
	"github.com/papakado/store/internal/sberbank"
	"github.com/papakado/store/pgk/auth"
	"github.com/papakado/store/pgk/password"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StorageRepo interface {
	CreateOrder(ctx context.Context, personsQuantity int) (int64, error)
	AttachProducts(ctx context.Context, orderID int64, lines []model.SubmitLineDTO) ([]model.OrderLine, error)
	SetOrderTotal(ctx context.Context, orderID int64, total decimal.Decimal) error
	AppendDelivery(ctx context.Context, orderID int64, input model.DeliveryDTO) (*model.Delivery, error)
	AppendPayment(ctx context.Context, orderID int64, input model.PaymentDTO) (*model.Payment, error)
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error

	GetCouponByValue(ctx context.Context, value string) (*model.Coupon, error)
	ListCoupons(ctx context.Context) ([]model.Coupon, error)
	CreateCoupon(ctx context.Context, input model.CreateCouponDTO) (int64, error)
	DeleteCoupon(ctx context.Context, id int64) error

	GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error)

	Ping(ctx context.Context) error
}

type DeliveryProvider interface {
	CreateDeliveryOrder(ctx context.Context, order *model.Order) error
}

type PaymentGateway interface {
	Register(ctx context.Context, orderID int64, total decimal.Decimal, returnURL string) (string, error)
	OrderStatus(ctx context.Context, gatewayOrderID string) (int, error)
}

type Mailer interface {
	SendOrderPlaced(order *model.Order) error
	SendDeliveryError(cause error) error
}

type Options struct {
	AppURL      string
	Debug       bool
	TokenSecret string
	TokenExp    time.Duration
}

type Service struct {
	storage  StorageRepo
	delivery DeliveryProvider
	gateway  PaymentGateway
	mailer   Mailer
	lg       *zap.SugaredLogger

	opts Options
}

func New(s StorageRepo, d DeliveryProvider, g PaymentGateway, m Mailer, lg *zap.SugaredLogger, opts Options) *Service {
	if lg == nil {
		lg = zap.NewNop().Sugar()
	}

	return &Service{
		storage:  s,
		delivery: d,
		gateway:  g,
		mailer:   m,
		lg:       lg,
		opts:     opts,
	}
}

// SubmitOrder проводит заказ: создание, строки с инкрементом продаж,
// расчёт суммы, доставка и оплата, письмо оператору, внешняя доставка,
// регистрация онлайн-оплаты. Сбои интеграций после локального сохранения
// заказ не откатывают.
func (s *Service) SubmitOrder(ctx context.Context, input model.SubmitOrderDTO) (*model.SubmitOrderResult, *model.APIError) {
	if err := validateSubmitOrder(input); err != nil {
		return nil, err
	}

	orderID, err := s.storage.CreateOrder(ctx, input.PersonsQuantity)
	if err != nil {
		s.lg.Errorf("create order error: %v", err)
		return nil, internalError()
	}

	lines, err := s.storage.AttachProducts(ctx, orderID, input.Products)
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusBadRequest,
				Message: model.ErrProductNotFound.Error(),
			}
		}
		s.lg.Errorf("attach products error: %v", err)
		return nil, internalError()
	}

	coupon := s.lookupCoupon(ctx, input.Coupon)

	total := CalculateTotal(lines, coupon)
	if err := s.storage.SetOrderTotal(ctx, orderID, total); err != nil {
		s.lg.Errorf("set order total error: %v", err)
		return nil, internalError()
	}

	delivery, err := s.storage.AppendDelivery(ctx, orderID, input.Delivery)
	if err != nil {
		s.lg.Errorf("append delivery error: %v", err)
		return nil, internalError()
	}

	payment, err := s.storage.AppendPayment(ctx, orderID, input.Payment)
	if err != nil {
		s.lg.Errorf("append payment error: %v", err)
		return nil, internalError()
	}

	order := &model.Order{
		ID:              orderID,
		PersonsQuantity: input.PersonsQuantity,
		Total:           total,
		Products:        lines,
		Delivery:        delivery,
		Payment:         payment,
		CreatedAt:       time.Now(),
	}

	if !s.opts.Debug {
		if err := s.mailer.SendOrderPlaced(order); err != nil {
			s.lg.Errorf("order placed mail error: %v", err)
		}
	}

	s.runDeliveryProvider(ctx, order)

	localPath := fmt.Sprintf("/order/%d", orderID)

	if payment.Method == model.PaymentOnline {
		formURL, err := s.gateway.Register(ctx, orderID, total, s.opts.AppURL+localPath)
		if err != nil {
			s.lg.Errorf("gateway register error: %v", err)
			return nil, &model.APIError{
				Code:    http.StatusBadGateway,
				Message: model.ErrGatewayMessage,
			}
		}

		return &model.SubmitOrderResult{RedirectURL: formURL, External: true}, nil
	}

	return &model.SubmitOrderResult{RedirectURL: localPath, External: false}, nil
}

// runDeliveryProvider — полностью изолированный домен отказа: ни одна
// ошибка внешней доставки не прерывает оформление заказа. Сбой
// аутентификации пропускается молча, остальные сбои уходят оператору.
func (s *Service) runDeliveryProvider(ctx context.Context, order *model.Order) {
	err := s.delivery.CreateDeliveryOrder(ctx, order)
	if err == nil {
		return
	}

	if errors.Is(err, sbis.ErrAuthFailed) {
		s.lg.Warnf("delivery provider auth failed, skipping: %v", err)
		return
	}

	s.lg.Errorf("delivery provider error: %v", err)

	if !s.opts.Debug {
		if mailErr := s.mailer.SendDeliveryError(err); mailErr != nil {
			s.lg.Errorf("delivery error mail error: %v", mailErr)
		}
	}
}

func (s *Service) lookupCoupon(ctx context.Context, value string) *model.Coupon {
	if value == "" {
		return nil
	}

	coupon, err := s.storage.GetCouponByValue(ctx, value)
	if err != nil {
		// Неизвестный купон — не ошибка, заказ уходит без скидки.
		if !errors.Is(err, model.ErrCouponNotFound) {
			s.lg.Errorf("coupon lookup error: %v", err)
		}
		return nil
	}

	return coupon
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*model.Order, *model.APIError) {
	order, err := s.storage.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			return nil, &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrOrderNotFoundMessage,
			}
		}
		s.lg.Errorf("get order error: %v", err)
		return nil, internalError()
	}

	return order, nil
}

// CheckCoupon возвращает nil без ошибки для неизвестного или
// неактивного купона: клиент получает data: null.
func (s *Service) CheckCoupon(ctx context.Context, value string) (*model.Coupon, *model.APIError) {
	coupon, err := s.storage.GetCouponByValue(ctx, value)
	if err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			return nil, nil
		}
		s.lg.Errorf("check coupon error: %v", err)
		return nil, internalError()
	}

	if !coupon.IsActive {
		return nil, nil
	}

	return coupon, nil
}

// CheckPaymentStatus опрашивает шлюз и кладёт двузначный статус на
// online-оплату заказа. Код 2 — оплачено, всё остальное — нет.
// Повторные одинаковые вызовы идемпотентны.
func (s *Service) CheckPaymentStatus(ctx context.Context, orderID int64, gatewayOrderID string) *model.APIError {
	code, err := s.gateway.OrderStatus(ctx, gatewayOrderID)
	if err != nil {
		s.lg.Errorf("gateway order status error: %v", err)
		return &model.APIError{
			Code:    http.StatusBadGateway,
			Message: model.ErrGatewayMessage,
		}
	}

	status := model.PaymentStatusUnpaid
	if code == sberbank.StatusPaid {
		status = model.PaymentStatusPaid
	}

	if err := s.storage.UpdatePaymentStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, model.ErrPaymentNotOnline) {
			return &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrPaymentNotOnlineMessage,
			}
		}
		s.lg.Errorf("update payment status error: %v", err)
		return internalError()
	}

	return nil
}

func (s *Service) AdminLogin(ctx context.Context, input model.LoginDTO) (string, *model.APIError) {
	if err := validateStruct(input); err != nil {
		return "", &model.APIError{
			Code:    http.StatusBadRequest,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	admin, err := s.storage.GetAdminByLogin(ctx, input.Login)
	if err != nil {
		if errors.Is(err, model.ErrAdminNotFound) {
			return "", &model.APIError{
				Code:    http.StatusUnauthorized,
				Message: model.ErrInvalidLoginOrPasswordMessage,
			}
		}
		s.lg.Errorf("get admin error: %v", err)
		return "", internalError()
	}

	if !password.CheckPasswordHash(input.Password, admin.Password) {
		return "", &model.APIError{
			Code:    http.StatusUnauthorized,
			Message: model.ErrInvalidLoginOrPasswordMessage,
		}
	}

	token, err := auth.GenerateBearerToken(model.TokenInfo{
		ID:    admin.ID,
		Login: admin.Login,
	}, s.opts.TokenExp, s.opts.TokenSecret)
	if err != nil {
		s.lg.Errorf("generate token error: %v", err)
		return "", internalError()
	}

	return token, nil
}

func (s *Service) ListCoupons(ctx context.Context) ([]model.Coupon, *model.APIError) {
	coupons, err := s.storage.ListCoupons(ctx)
	if err != nil {
		s.lg.Errorf("list coupons error: %v", err)
		return nil, internalError()
	}

	return coupons, nil
}

func (s *Service) CreateCoupon(ctx context.Context, input model.CreateCouponDTO) (*model.Coupon, *model.APIError) {
	if err := validateStruct(input); err != nil {
		return nil, &model.APIError{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	id, err := s.storage.CreateCoupon(ctx, input)
	if err != nil {
		if strings.Contains(err.Error(), pg.ErrIsExistCode) {
			return nil, &model.APIError{
				Code:    http.StatusConflict,
				Message: model.ErrCouponAlreadyExistMessage,
			}
		}
		s.lg.Errorf("create coupon error: %v", err)
		return nil, internalError()
	}

	return &model.Coupon{
		ID:       id,
		Value:    input.Value,
		Discount: input.Discount,
		IsActive: input.IsActive,
	}, nil
}

func (s *Service) DeleteCoupon(ctx context.Context, id int64) *model.APIError {
	if err := s.storage.DeleteCoupon(ctx, id); err != nil {
		if errors.Is(err, model.ErrCouponNotFound) {
			return &model.APIError{
				Code:    http.StatusNotFound,
				Message: model.ErrCouponNotFound.Error(),
			}
		}
		s.lg.Errorf("delete coupon error: %v", err)
		return internalError()
	}

	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}

func internalError() *model.APIError {
	return &model.APIError{
		Code:    http.StatusInternalServerError,
		Message: model.ErrInternalServerMessage,
	}
}
