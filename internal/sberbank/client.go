package sberbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/papakado/store/pgk/retryablehttp"
	"github.com/shopspring/decimal"
)

const (
	registerPath    = "/payment/rest/register.do"
	orderStatusPath = "/payment/rest/getOrderStatusExtended.do"

	// Код валюты RUB по ISO 4217.
	currencyRUB = "643"

	// Код статуса "полная авторизация суммы заказа" в 3-D Secure.
	StatusPaid = 2
)

// ErrGateway покрывает ответы провайдера с errorCode и ответы без
// обязательных полей. Наружу уходит как 502 с безопасным сообщением.
var ErrGateway = errors.New("sberbank: gateway error")

type Config struct {
	APIURL   string
	UserName string
	Password string
}

type Client struct {
	cfg    Config
	client *retryablehttp.RetryableClient
}

func New(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
	}
}

type registerResponse struct {
	OrderID      string `json:"orderId"`
	FormURL      string `json:"formUrl"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

type orderStatusResponse struct {
	OrderStatus  int    `json:"orderStatus"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Register регистрирует платёжную сессию и возвращает URL платёжной
// формы банка. Сумма уходит в минорных единицах (копейках). Номер
// заказа дополняется случайным суффиксом: шлюз отклоняет повторную
// регистрацию одного и того же orderNumber.
func (c *Client) Register(ctx context.Context, orderID int64, total decimal.Decimal, returnURL string) (string, error) {
	form := url.Values{
		"userName":    {c.cfg.UserName},
		"password":    {c.cfg.Password},
		"orderNumber": {fmt.Sprintf("%d-%s", orderID, uuid.NewString()[:8])},
		"amount":      {strconv.FormatInt(total.Shift(2).IntPart(), 10)},
		"currency":    {currencyRUB},
		"returnUrl":   {returnURL},
	}

	var response registerResponse
	if err := c.postForm(ctx, c.cfg.APIURL+registerPath, form, &response); err != nil {
		return "", errors.Join(ErrGateway, err)
	}

	if response.ErrorCode != "" && response.ErrorCode != "0" {
		return "", fmt.Errorf("%w: register %s: %s", ErrGateway, response.ErrorCode, response.ErrorMessage)
	}
	if response.FormURL == "" {
		return "", fmt.Errorf("%w: register response without formUrl", ErrGateway)
	}

	return response.FormURL, nil
}

// OrderStatus возвращает числовой код статуса платёжной сессии шлюза.
func (c *Client) OrderStatus(ctx context.Context, gatewayOrderID string) (int, error) {
	form := url.Values{
		"userName": {c.cfg.UserName},
		"password": {c.cfg.Password},
		"orderId":  {gatewayOrderID},
	}

	var response orderStatusResponse
	if err := c.postForm(ctx, c.cfg.APIURL+orderStatusPath, form, &response); err != nil {
		return 0, errors.Join(ErrGateway, err)
	}

	if response.ErrorCode != "" && response.ErrorCode != "0" {
		return 0, fmt.Errorf("%w: status %s: %s", ErrGateway, response.ErrorCode, response.ErrorMessage)
	}

	return response.OrderStatus, nil
}

func (c *Client) postForm(ctx context.Context, requestURL string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.client.Do(ctx, req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %s", response.Status)
	}

	return json.NewDecoder(response.Body).Decode(out)
}
