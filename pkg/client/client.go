// Package client is a typed HTTP client for the Artisan Market API. It covers
// the whole REST surface and is what the end-to-end tests drive the server
// with.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tanvi/artisan-market/internal/models"
	"github.com/tanvi/artisan-market/internal/store"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken sets the bearer token used on authenticated calls. Register and
// Login do this automatically.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

// APIError is a non-2xx response, carrying the server's status and message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{Status: resp.StatusCode, Message: payload.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// --- auth ---

type AuthResult struct {
	SessionID string       `json:"sessionId"`
	User      *models.User `json:"user"`
}

type RegisterParams struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (c *Client) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	var result AuthResult
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", params, &result); err != nil {
		return nil, err
	}
	c.token = result.SessionID
	return &result, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var result AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.token = result.SessionID
	return &result, nil
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return err
	}
	c.token = ""
	return nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// --- catalog ---

type ProductQuery struct {
	Search   string
	Country  string
	Material string
	Category string
	Featured *bool
}

func (q ProductQuery) encode() string {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Country != "" {
		values.Set("country", q.Country)
	}
	if q.Material != "" {
		values.Set("material", q.Material)
	}
	if q.Category != "" {
		values.Set("category", q.Category)
	}
	if q.Featured != nil {
		values.Set("featured", fmt.Sprintf("%t", *q.Featured))
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func (c *Client) Products(ctx context.Context, query ProductQuery) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products"+query.encode(), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, params store.ProductParams) (*models.Product, error) {
	body := map[string]interface{}{
		"asin":            params.ASIN,
		"name":            params.Name,
		"description":     params.Description,
		"originalPrice":   params.OriginalPrice,
		"discountedPrice": params.DiscountedPrice,
		"category":        params.Category,
		"material":        params.Material,
		"countryOfOrigin": params.CountryOfOrigin,
		"artisanId":       params.ArtisanID,
		"images":          params.Images,
		"dimensions":      params.Dimensions,
		"weight":          params.Weight,
		"inStock":         params.InStock,
		"featured":        params.Featured,
	}
	var product models.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Reviews(ctx context.Context, productID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, "/api/products/"+productID+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) AddReview(ctx context.Context, productID string, rating int, comment string) (*models.Review, error) {
	body := map[string]interface{}{"rating": rating, "comment": comment}
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/api/products/"+productID+"/reviews", body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// --- artisans ---

func (c *Client) Artisans(ctx context.Context) ([]models.Artisan, error) {
	var artisans []models.Artisan
	if err := c.do(ctx, http.MethodGet, "/api/artisans", nil, &artisans); err != nil {
		return nil, err
	}
	return artisans, nil
}

func (c *Client) Artisan(ctx context.Context, id string) (*models.Artisan, error) {
	var artisan models.Artisan
	if err := c.do(ctx, http.MethodGet, "/api/artisans/"+id, nil, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

func (c *Client) CreateArtisan(ctx context.Context, params store.ArtisanParams) (*models.Artisan, error) {
	body := map[string]interface{}{
		"name":           params.Name,
		"bio":            params.Bio,
		"location":       params.Location,
		"specialization": params.Specialization,
		"experience":     params.Experience,
		"story":          params.Story,
		"image":          params.Image,
	}
	var artisan models.Artisan
	if err := c.do(ctx, http.MethodPost, "/api/artisans", body, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

// --- cart ---

func (c *Client) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddToCart(ctx context.Context, productID string, quantity int) (*models.CartItem, error) {
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	var item models.CartItem
	if err := c.do(ctx, http.MethodPost, "/api/cart", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID string, quantity int) (*models.CartItem, error) {
	body := map[string]interface{}{"quantity": quantity}
	var item models.CartItem
	if err := c.do(ctx, http.MethodPut, "/api/cart/"+itemID, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart/"+itemID, nil, nil)
}

// --- orders ---

type ShippingAddress struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zipCode"`
	Country       string  `json:"country"`
	Phone         *string `json:"phone,omitempty"`
}

type CheckoutParams struct {
	PaymentMethod   string           `json:"paymentMethod"`
	Currency        string           `json:"currency,omitempty"`
	AddressID       string           `json:"addressId,omitempty"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
}

func (c *Client) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CreateOrder(ctx context.Context, params CheckoutParams) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPost, "/api/orders", params, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Order(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+id, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) CancelOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/api/orders/"+id+"/cancel", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// --- addresses ---

type AddressParams struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	StreetAddress string  `json:"streetAddress"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zipCode"`
	Country       string  `json:"country"`
	Phone         *string `json:"phone,omitempty"`
	IsDefault     bool    `json:"isDefault"`
}

func (c *Client) Addresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	if err := c.do(ctx, http.MethodGet, "/api/addresses", nil, &addresses); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (c *Client) CreateAddress(ctx context.Context, params AddressParams) (*models.Address, error) {
	var address models.Address
	if err := c.do(ctx, http.MethodPost, "/api/addresses", params, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *Client) UpdateAddress(ctx context.Context, id string, fields map[string]interface{}) (*models.Address, error) {
	var address models.Address
	if err := c.do(ctx, http.MethodPut, "/api/addresses/"+id, fields, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/addresses/"+id, nil, nil)
}

// --- support ---

type SupportParams struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject"`
	Message string  `json:"message"`
}

func (c *Client) CreateSupportMessage(ctx context.Context, params SupportParams) (*models.SupportMessage, error) {
	var msg models.SupportMessage
	if err := c.do(ctx, http.MethodPost, "/api/support", params, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// --- admin ---

type AdminOrderPage struct {
	Items      []models.Order `json:"items"`
	NextCursor string         `json:"next_cursor,omitempty"`
	HasMore    bool           `json:"has_more"`
}

func (c *Client) AdminOrders(ctx context.Context, cursor string, limit int) (*AdminOrderPage, error) {
	path := fmt.Sprintf("/api/admin/orders?limit=%d", limit)
	if cursor != "" {
		path += "&cursor=" + url.QueryEscape(cursor)
	}
	var page AdminOrderPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) AdminSetOrderStatus(ctx context.Context, id string, status models.OrderStatus, trackingNumber *string) (*models.Order, error) {
	body := map[string]interface{}{"status": status}
	if trackingNumber != nil {
		body["trackingNumber"] = *trackingNumber
	}
	var order models.Order
	if err := c.do(ctx, http.MethodPut, "/api/admin/orders/"+id+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) AdminSupportMessages(ctx context.Context, status models.SupportStatus) ([]models.SupportMessage, error) {
	path := "/api/admin/support"
	if status != "" {
		path += "?status=" + url.QueryEscape(string(status))
	}
	var messages []models.SupportMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) AdminSetSupportStatus(ctx context.Context, id string, status models.SupportStatus) (*models.SupportMessage, error) {
	body := map[string]interface{}{"status": status}
	var msg models.SupportMessage
	if err := c.do(ctx, http.MethodPut, "/api/admin/support/"+id+"/status", body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// --- config ---

type CurrencyRates struct {
	Base  string `json:"base"`
	Rates []struct {
		Code   string          `json:"code"`
		Symbol string          `json:"symbol"`
		Rate   decimal.Decimal `json:"rate"`
	} `json:"rates"`
}

func (c *Client) Countries(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/config/countries", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Materials(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/config/materials", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.do(ctx, http.MethodGet, "/api/config/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Rates(ctx context.Context) (*CurrencyRates, error) {
	var rates CurrencyRates
	if err := c.do(ctx, http.MethodGet, "/api/config/currency-rates", nil, &rates); err != nil {
		return nil, err
	}
	return &rates, nil
}
