package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Artisan struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	Specialization string    `json:"specialization"`
	Experience     string    `json:"experience"`
	Story          string    `json:"story"`
	Image          *string   `json:"image,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type Dimensions struct {
	Length decimal.Decimal `json:"length"`
	Width  decimal.Decimal `json:"width"`
	Height decimal.Decimal `json:"height"`
	Unit   string          `json:"unit"`
}

type Weight struct {
	Value decimal.Decimal `json:"value"`
	Unit  string          `json:"unit"`
}

type Product struct {
	ID              string           `json:"id"`
	ASIN            string           `json:"asin"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	OriginalPrice   decimal.Decimal  `json:"originalPrice"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
	Category        string           `json:"category"`
	Material        string           `json:"material"`
	CountryOfOrigin string           `json:"countryOfOrigin"`
	ArtisanID       *string          `json:"artisanId,omitempty"`
	Images          []string         `json:"images"`
	Dimensions      *Dimensions      `json:"dimensions,omitempty"`
	Weight          *Weight          `json:"weight,omitempty"`
	InStock         bool             `json:"inStock"`
	Featured        bool             `json:"featured"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	// Reviewer display name, joined from users on read.
	UserName string `json:"userName,omitempty"`
}

type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`

	Product *Product `json:"product,omitempty"`
}

type Address struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zipCode"`
	Country       string    `json:"country"`
	Phone         *string   `json:"phone,omitempty"`
	IsDefault     bool      `json:"isDefault"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Order struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	Items          []OrderItem     `json:"items"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Currency       string          `json:"currency"`
	Status         OrderStatus     `json:"status"`
	TrackingNumber *string         `json:"trackingNumber,omitempty"`
	ShippingAddr   *Address        `json:"shippingAddress,omitempty"`
	PaymentMethod  string          `json:"paymentMethod"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type OrderItem struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type SupportMessage struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     *string       `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    SupportStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}
