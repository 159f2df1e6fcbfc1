package store

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

// Product represents an individual item available for sale.
// Prices are kept in cents (lowest currency unit) to avoid floating-point errors.
//
//mockgen:generate count=5 strategy=random
type Product struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"                   mock:"\"SKU-001\""`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Inventory   int       `json:"inventory_count"`
	Image       *url.URL  `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Customer represents the user placing orders.
//
//mockgen:generate
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"     mock:"\"ada@example.com\""`
	FullName string    `json:"full_name"`
	Address  *string   `json:"address"   mock:"nil"`
	IsActive bool      `json:"is_active" mock:"true"`
	Token    string    `json:"-"         mock:"-"`
}

// Order represents a transaction made by a customer.
//
//mockgen:generate count=2
type Order struct {
	ID         int64               `json:"id"`
	CustomerID int64               `json:"customer_id"`
	Status     OrderStatus         `json:"status"      mock:"StatusPaid"`
	TotalCents int64               `json:"total_cents"`
	Items      []OrderItem         `json:"items"`
	Discount   Discount            `json:"discount"`
	Notes      map[string]string   `json:"notes"`
	Labels     map[string]struct{} `json:"labels"`
	OrderedAt  time.Time           `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
// It snapshots the price at the time of purchase.
//
//mockgen:generate
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

// NewOrderItem creates a line item for quantity units of a product.
func NewOrderItem(productID int64, name string, quantity int, unitPrice int64) *OrderItem {
	return &OrderItem{ProductID: productID, Name: name, Quantity: quantity, UnitPrice: unitPrice}
}

// OrderStatus is a custom type for type-safe status handling.
//
//mockgen:generate
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Discount is applied to an order total. The set of discounts is closed.
//
//mockgen:generate
type Discount interface {
	isDiscount()
	Apply(cents int64) int64
}

// PercentOff takes a percentage off the total.
type PercentOff struct {
	Percent uint8 `mock:"10"`
}

func (PercentOff) isDiscount() {}

// Apply implements Discount.
func (d PercentOff) Apply(cents int64) int64 {
	return cents - cents*int64(d.Percent)/100
}

// FixedOff takes a fixed amount off the total.
type FixedOff struct {
	Cents int64
}

func (*FixedOff) isDiscount() {}

// Apply implements Discount.
func (d *FixedOff) Apply(cents int64) int64 {
	return max(cents-d.Cents, 0)
}

// Pair is generic and cannot be mocked.
//
//mockgen:generate
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
