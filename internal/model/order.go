package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusCompleted = "completed"

type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customerName"` // IGN typed in the purchase dialog
	CustomerEmail string          `json:"customerEmail"`
	ItemType      ItemType        `json:"itemType"`
	ItemName      string          `json:"itemName"`
	Price         decimal.Decimal `json:"price"` // after discount, if any
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OrderFilter narrows the admin order list.
// Status "" or "all" matches every order.
type OrderFilter struct {
	Query  string
	Status string
}
