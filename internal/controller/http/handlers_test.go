package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/papakado/store/internal/model"
	"github.com/papakado/store/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*chi.Mux, *mocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	serviceMock := mocks.NewMockService(ctrl)
	controller := New(serviceMock, zap.NewNop().Sugar())

	passthrough := func(next http.Handler) http.Handler { return next }

	return InitRoutes(chi.NewRouter(), controller, passthrough), serviceMock
}

func doRequest(router *chi.Mux, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

const submitBody = `{
	"persons_quantity": 2,
	"products": [{"id": 1, "quantity": 2}],
	"coupon": "SAVE10",
	"delivery": {"method": "pickup", "name": "Иван", "phone": "+79990001122"},
	"payment": {"method": "offline"}
}`

func TestController_SubmitOrder(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		Return(&model.SubmitOrderResult{RedirectURL: "/order/7", External: false}, nil)

	w := doRequest(router, http.MethodPost, "/api/order/submit", submitBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"redirect_url":"/order/7","external":false}}`, w.Body.String())
}

func TestController_SubmitOrder_BadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/order/submit", `{"products":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_SubmitOrder_ServiceError(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		SubmitOrder(gomock.Any(), gomock.Any()).
		Return(nil, &model.APIError{Code: http.StatusBadGateway, Message: model.ErrGatewayMessage})

	w := doRequest(router, http.MethodPost, "/api/order/submit", submitBody)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, model.ErrGatewayMessage, strings.TrimSpace(w.Body.String()))
}

func TestController_GetOrder_NotFound(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		GetOrder(gomock.Any(), int64(404)).
		Return(nil, &model.APIError{Code: http.StatusNotFound, Message: "order not found"})

	w := doRequest(router, http.MethodGet, "/api/orders/404", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestController_GetOrder_BadID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/orders/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_CheckCoupon(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CheckCoupon(gomock.Any(), "SAVE10").
		Return(&model.Coupon{ID: 1, Value: "SAVE10", Discount: decimal.NewFromInt(10), IsActive: true}, nil)

	w := doRequest(router, http.MethodGet, "/api/coupons/SAVE10/check", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"id":1,"value":"SAVE10","discount":"10","is_active":true}}`, w.Body.String())
}

func TestController_CheckCoupon_UnknownIsNull(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CheckCoupon(gomock.Any(), "NOPE").
		Return(nil, nil)

	w := doRequest(router, http.MethodGet, "/api/coupons/NOPE/check", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":null}`, w.Body.String())
}

func TestController_CheckPaymentStatus(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CheckPaymentStatus(gomock.Any(), int64(7), "gw-1").
		Return(nil)

	w := doRequest(router, http.MethodPost, "/api/orders/7/payment/online/check-status", `{"order_id":"gw-1"}`)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestController_CheckPaymentStatus_MissingGatewayOrderID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/orders/7/payment/online/check-status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_AdminLogin(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		AdminLogin(gomock.Any(), model.LoginDTO{Login: "admin", Password: "adminpass"}).
		Return("Bearer token-value", nil)

	w := doRequest(router, http.MethodPost, "/api/admin/login", `{"login":"admin","password":"adminpass"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer token-value", w.Header().Get("Authorization"))
}

func TestController_AdminLogin_Unauthorized(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		AdminLogin(gomock.Any(), gomock.Any()).
		Return("", &model.APIError{Code: http.StatusUnauthorized, Message: "invalid login or password"})

	w := doRequest(router, http.MethodPost, "/api/admin/login", `{"login":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Header().Get("Authorization"))
}

func TestController_GetCoupons(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		ListCoupons(gomock.Any()).
		Return([]model.Coupon{{ID: 1, Value: "SAVE10", Discount: decimal.NewFromInt(10), IsActive: true}}, nil)

	w := doRequest(router, http.MethodGet, "/api/admin/coupons", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":[{"id":1,"value":"SAVE10","discount":"10","is_active":true}]}`, w.Body.String())
}

func TestController_CreateCoupon(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		CreateCoupon(gomock.Any(), gomock.Any()).
		Return(&model.Coupon{ID: 5, Value: "NEW", Discount: decimal.NewFromInt(15), IsActive: true}, nil)

	w := doRequest(router, http.MethodPost, "/api/admin/coupons", `{"value":"NEW","discount":"15","is_active":true}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"data":{"id":5,"value":"NEW","discount":"15","is_active":true}}`, w.Body.String())
}

func TestController_DeleteCoupon(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().
		DeleteCoupon(gomock.Any(), int64(5)).
		Return(nil)

	w := doRequest(router, http.MethodDelete, "/api/admin/coupons/5", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestController_Ping(t *testing.T) {
	router, serviceMock := newTestRouter(t)

	serviceMock.EXPECT().Ping(gomock.Any()).Return(nil)

	w := doRequest(router, http.MethodGet, "/ping", "")

	assert.Equal(t, http.StatusOK, w.Code)
}
