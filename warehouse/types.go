package warehouse

import (
	"time"

	"mock-generator/store"
)

// Address represents a physical or billing/shipping address.
//
//mockgen:generate
type Address struct {
	ID         uint      `json:"id"`
	Street     string    `json:"street"`
	City       string    `json:"city"        mock:"\"Springfield\""`
	State      string    `json:"state"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"     mock:"\"US\""`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Customer represents a store customer/user.
//
//mockgen:generate
type Customer struct {
	ID                       uint       `json:"id"`
	FirstName                string     `json:"first_name"`
	LastName                 string     `json:"last_name"`
	Email                    string     `json:"email"`
	Phone                    string     `json:"phone"`
	PasswordHash             string     `json:"-"                                     mock:"-"`
	DateOfBirth              *time.Time `json:"date_of_birth,omitempty"`
	DefaultBillingAddressID  *uint      `json:"default_billing_address_id,omitempty"`
	DefaultShippingAddressID *uint      `json:"default_shipping_address_id,omitempty" mock:"nil"`

	Addresses []Address `json:"addresses,omitempty"`
	// back-reference, left empty to keep the mock graph acyclic
	Orders []Order `json:"orders,omitempty" mock:"nil"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product represents a sellable item in the store.
//
//mockgen:generate count=4 strategy=random
type Product struct {
	ID          uint    `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       int64   `json:"price"` // in cents (minor currency unit)
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active"`
	Weight      float64 `json:"weight"` // in grams, useful for shipping

	OrderItems []OrderItem `json:"-" mock:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order represents a customer's purchase.
//
//mockgen:generate
type Order struct {
	ID          uint              `json:"id"`
	CustomerID  uint              `json:"customer_id"`
	OrderNumber string            `json:"order_number"`
	Status      store.OrderStatus `json:"status"`
	TotalAmount int64             `json:"total_amount"` // in cents
	Currency    string            `json:"currency"     mock:"\"USD\""`
	Discount    store.Discount    `json:"discount"`

	ShippingAddressID uint `json:"shipping_address_id"`
	BillingAddressID  uint `json:"billing_address_id"`

	ShippingAddress Address `json:"shipping_address"`
	BillingAddress  Address `json:"billing_address"`

	Customer Customer    `json:"customer"`
	Items    []OrderItem `json:"items"`

	PlacedAt    *time.Time `json:"placed_at,omitempty"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" mock:"nil"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OrderItem is a line item within an order.
//
//mockgen:generate
type OrderItem struct {
	ID         uint  `json:"id"`
	OrderID    uint  `json:"order_id"`
	ProductID  uint  `json:"product_id"`
	Quantity   int   `json:"quantity"    mock:"2"`
	UnitPrice  int64 `json:"unit_price"`  // price at time of purchase (in cents)
	TotalPrice int64 `json:"total_price"` // UnitPrice * Quantity

	Order   *Order  `json:"-" mock:"nil"`
	Product Product `json:"product"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
