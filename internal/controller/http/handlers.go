package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/papakado/store/internal/model"
	"go.uber.org/zap"
)

type Service interface {
	SubmitOrder(ctx context.Context, input model.SubmitOrderDTO) (*model.SubmitOrderResult, *model.APIError)
	GetOrder(ctx context.Context, id int64) (*model.Order, *model.APIError)
	CheckCoupon(ctx context.Context, value string) (*model.Coupon, *model.APIError)
	CheckPaymentStatus(ctx context.Context, orderID int64, gatewayOrderID string) *model.APIError

	AdminLogin(ctx context.Context, input model.LoginDTO) (string, *model.APIError)
	ListCoupons(ctx context.Context) ([]model.Coupon, *model.APIError)
	CreateCoupon(ctx context.Context, input model.CreateCouponDTO) (*model.Coupon, *model.APIError)
	DeleteCoupon(ctx context.Context, id int64) *model.APIError

	Ping(ctx context.Context) error
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.SubmitOrderDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, apiErr := c.service.SubmitOrder(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeData(w, c.lg, result, http.StatusOK)
}

func (c *Controller) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	order, apiErr := c.service.GetOrder(r.Context(), id)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeData(w, c.lg, order, http.StatusOK)
}

// CheckCoupon отвечает data: null для неизвестного или неактивного
// купона, это не ошибка.
func (c *Controller) CheckCoupon(w http.ResponseWriter, r *http.Request) {
	coupon, apiErr := c.service.CheckCoupon(r.Context(), chi.URLParam(r, "value"))
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	if coupon == nil {
		writeData(w, c.lg, nil, http.StatusOK)
		return
	}

	writeData(w, c.lg, coupon, http.StatusOK)
}

func (c *Controller) CheckPaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	body, err := readBody[model.CheckPaymentStatusDTO](r)
	if err != nil || body.OrderID == "" {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.CheckPaymentStatus(r.Context(), id, body.OrderID); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) AdminLogin(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.LoginDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	bearerToken, apiErr := c.service.AdminLogin(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.Header().Set("Authorization", bearerToken)
	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, apiErr := c.service.ListCoupons(r.Context())
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeData(w, c.lg, coupons, http.StatusOK)
}

func (c *Controller) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	body, err := readBody[model.CreateCouponDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	coupon, apiErr := c.service.CreateCoupon(r.Context(), body)
	if apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	writeData(w, c.lg, coupon, http.StatusCreated)
}

func (c *Controller) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if apiErr := c.service.DeleteCoupon(r.Context(), id); apiErr != nil {
		http.Error(w, apiErr.Message, apiErr.Code)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Ping(r.Context()); err != nil {
		c.lg.Errorf("storage ping error: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
