package domain

import "time"

// Product is a catalog item. Title is unique.
type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	Price     float64   `json:"price"`
	MRP       float64   `json:"mrp"`
	Category  string    `json:"category"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Category groups products. Title is unique.
type Category struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Desc      string    `json:"desc"`
	CreatedAt time.Time `json:"created_at"`
}

const OrderStatusPlaced = "placed"

// OrderItem references a product and the quantity ordered.
type OrderItem struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

// Order is placed by a user. UserID is the owner.
type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderDetail is an order with its user and products joined in.
type OrderDetail struct {
	ID        string            `json:"id"`
	User      *User             `json:"user,omitempty"`
	Items     []OrderItemDetail `json:"items"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// OrderItemDetail carries the joined product, nil when it was deleted.
type OrderItemDetail struct {
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
}
