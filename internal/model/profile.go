package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserProfile struct {
	Email        string          `json:"email"`
	Nickname     string          `json:"nickname"`
	RegisteredAt time.Time       `json:"registeredAt"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
}
