package sbis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/papakado/store/internal/model"
	"github.com/papakado/store/pgk/retryablehttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	pointListPath        = "/retail/point/list"
	nomenclatureListPath = "/retail/nomenclature/list"
	orderCreatePath      = "/retail/order/create"

	tokenHeader = "X-SBISAccessToken"

	// Вся цепочка вызовов (точка, номенклатуры, создание заказа)
	// живёт в одном дедлайне: зависший провайдер не держит запрос.
	flowTimeout = 30 * time.Second

	// Параллельные запросы номенклатур независимы между собой.
	nomenclatureWorkers = 4

	datetimeLayout = "2006-01-02 15:04:05"
)

// ErrAuthFailed возвращается, когда провайдер не выдал токен сессии.
// Вызывающая сторона пропускает интеграцию молча: локальный заказ
// не должен падать из-за недоступной доставки.
var ErrAuthFailed = errors.New("sbis: authentication failed")

type Config struct {
	AuthURL      string
	APIURL       string
	AppID        string
	ProtectedKey string
	ServiceKey   string
	PriceListID  int
	City         string
	ShopURL      string
}

type Client struct {
	cfg    Config
	client *retryablehttp.RetryableClient
	lg     *zap.SugaredLogger
}

func New(cfg Config, lg *zap.SugaredLogger) *Client {
	return &Client{
		cfg:    cfg,
		client: retryablehttp.NewRetryableClient(retryablehttp.RetryConfig{}),
		lg:     lg,
	}
}

type authRequest struct {
	AppClientID string `json:"app_client_id"`
	AppSecret   string `json:"app_secret"`
	SecretKey   string `json:"secret_key"`
}

type authResponse struct {
	Token string `json:"token"`
}

type exitRequest struct {
	Event string `json:"event"`
	Token string `json:"token"`
}

type pointListResponse struct {
	SalesPoints []struct {
		ID int64 `json:"id"`
	} `json:"salesPoints"`
}

type nomenclatureListResponse struct {
	Nomenclatures []struct {
		ID *int64 `json:"id"`
	} `json:"nomenclatures"`
}

type nomenclatureItem struct {
	ID          int64 `json:"id"`
	Count       int32 `json:"count"`
	PriceListID int   `json:"priceListId"`
}

type customerBlock struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type deliveryBlock struct {
	IsPickup    bool   `json:"isPickup"`
	PaymentType string `json:"paymentType,omitempty"`
	ShopURL     string `json:"shopURL,omitempty"`
	SuccessURL  string `json:"successURL,omitempty"`
	ErrorURL    string `json:"errorURL,omitempty"`
	AddressFull string `json:"addressFull,omitempty"`
	AddressJSON string `json:"addressJSON,omitempty"`
}

type addressJSON struct {
	City     string `json:"City"`
	Street   string `json:"Street"`
	HouseNum string `json:"HouseNum"`
}

type createOrderRequest struct {
	Product       string             `json:"product"`
	PointID       int64              `json:"pointId"`
	Comment       string             `json:"comment"`
	Customer      customerBlock      `json:"customer"`
	Datetime      string             `json:"datetime"`
	Nomenclatures []nomenclatureItem `json:"nomenclatures"`
	Delivery      deliveryBlock      `json:"delivery"`
}

// CreateDeliveryOrder проводит заказ через розничный API СБИС:
// аутентификация, первая точка продаж, подбор номенклатур по именам
// товаров, создание заказа на доставку. Сессия закрывается в любом
// исходе. Ошибка аутентификации — ErrAuthFailed, остальные ошибки
// возвращаются как есть; откатов локального заказа нет.
func (c *Client) CreateDeliveryOrder(ctx context.Context, order *model.Order) error {
	ctx, cancel := context.WithTimeout(ctx, flowTimeout)
	defer cancel()

	token, err := c.authenticate(ctx)
	if err != nil {
		return errors.Join(ErrAuthFailed, err)
	}
	defer c.exit(token)

	pointID, err := c.firstSalesPoint(ctx, token)
	if err != nil {
		return err
	}

	nomenclatures, err := c.resolveNomenclatures(ctx, token, pointID, order.Products)
	if err != nil {
		return err
	}

	return c.createOrder(ctx, token, pointID, order, nomenclatures)
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	var response authResponse
	err := c.postJSON(ctx, c.cfg.AuthURL, "", authRequest{
		AppClientID: c.cfg.AppID,
		AppSecret:   c.cfg.ProtectedKey,
		SecretKey:   c.cfg.ServiceKey,
	}, &response)
	if err != nil {
		return "", err
	}
	if response.Token == "" {
		return "", fmt.Errorf("empty session token")
	}

	return response.Token, nil
}

// exit освобождает токен сессии. Вызывается отложенно независимо от
// результата остальных шагов, поэтому работает на собственном контексте.
func (c *Client) exit(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := c.postJSON(ctx, c.cfg.AuthURL, token, exitRequest{Event: "exit", Token: token}, nil)
	if err != nil {
		c.lg.Errorf("sbis session exit error: %v", err)
	}
}

// firstSalesPoint берёт первую точку из списка. Выбора точки в API
// заказа нет, у продавца она одна.
func (c *Client) firstSalesPoint(ctx context.Context, token string) (int64, error) {
	var response pointListResponse
	if err := c.getJSON(ctx, c.cfg.APIURL+pointListPath, token, &response); err != nil {
		return 0, fmt.Errorf("sales point list: %w", err)
	}
	if len(response.SalesPoints) == 0 {
		return 0, fmt.Errorf("sales point list is empty")
	}

	return response.SalesPoints[0].ID, nil
}

// resolveNomenclatures ищет номенклатуру по имени каждого товара.
// Поиски независимы и выполняются ограниченным числом воркеров под
// общим дедлайном. Берётся первая номенклатура с непустым id; товар
// без совпадений пропускается с предупреждением.
func (c *Client) resolveNomenclatures(ctx context.Context, token string, pointID int64, lines []model.OrderLine) ([]nomenclatureItem, error) {
	found := make([]*nomenclatureItem, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(nomenclatureWorkers)

	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			requestURL := fmt.Sprintf("%s%s?pointId=%d&priceListId=%d&searchString=%s",
				c.cfg.APIURL, nomenclatureListPath, pointID, c.cfg.PriceListID,
				url.QueryEscape(line.Name),
			)

			var response nomenclatureListResponse
			if err := c.getJSON(ctx, requestURL, token, &response); err != nil {
				return fmt.Errorf("nomenclature search %q: %w", line.Name, err)
			}

			for _, nomenclature := range response.Nomenclatures {
				if nomenclature.ID != nil {
					found[i] = &nomenclatureItem{
						ID:          *nomenclature.ID,
						Count:       line.Quantity,
						PriceListID: c.cfg.PriceListID,
					}
					break
				}
			}

			if found[i] == nil {
				c.lg.Warnf("sbis: no nomenclature found for product %q", line.Name)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make([]nomenclatureItem, 0, len(lines))
	for _, item := range found {
		if item != nil {
			result = append(result, *item)
		}
	}

	return result, nil
}

func (c *Client) createOrder(ctx context.Context, token string, pointID int64, order *model.Order, nomenclatures []nomenclatureItem) error {
	request := createOrderRequest{
		Product:       "delivery",
		PointID:       pointID,
		Comment:       order.Delivery.Comment,
		Customer:      customerBlock{Name: order.Delivery.Name, Phone: order.Delivery.Phone},
		Datetime:      time.Now().Format(datetimeLayout),
		Nomenclatures: nomenclatures,
		Delivery:      c.deliveryBlock(order),
	}

	if err := c.postJSON(ctx, c.cfg.APIURL+orderCreatePath, token, request, nil); err != nil {
		return fmt.Errorf("order create: %w", err)
	}

	return nil
}

func (c *Client) deliveryBlock(order *model.Order) deliveryBlock {
	block := deliveryBlock{IsPickup: false}

	if order.Payment != nil && order.Payment.Method == model.PaymentOnline {
		block.PaymentType = "online"
		block.ShopURL = c.cfg.ShopURL
		block.SuccessURL = c.cfg.ShopURL
		block.ErrorURL = c.cfg.ShopURL
	}

	if order.Delivery.Method == model.DeliveryPickup {
		block.IsPickup = true
		block.AddressFull = fmt.Sprintf("%s %s %s", c.cfg.City, order.Delivery.Street, order.Delivery.House)

		raw, _ := json.Marshal(addressJSON{
			City:     c.cfg.City,
			Street:   order.Delivery.Street,
			HouseNum: order.Delivery.House,
		})
		block.AddressJSON = string(raw)
	}

	return block
}

func (c *Client) postJSON(ctx context.Context, requestURL, token string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, token, out)
}

func (c *Client) getJSON(ctx context.Context, requestURL, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return err
	}

	return c.do(req, token, out)
}

func (c *Client) do(req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}

	response, err := c.client.Do(req.Context(), req)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("request failed: %s", response.Status)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(response.Body).Decode(out)
}
