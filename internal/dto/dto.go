package dto

import (
	"crimson-store/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

type OpenPurchaseRequest struct {
	ItemType string `json:"item_type"`
	ItemName string `json:"item_name"`
}

type PurchaseRequest struct {
	IGN   string `json:"ign"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email string `json:"email"`
}

type RegisterRequest struct {
	Nickname string `json:"nickname"`
}

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type TabRequest struct {
	Tab string `json:"tab"`
}

type CartRequest struct {
	ItemType string `json:"item_type"`
	ItemName string `json:"item_name"`
}

type LoginResponse struct {
	NeedsRegistration bool     `json:"needs_registration"`
	Message           string   `json:"message"`
	User              *Profile `json:"user,omitempty"`
}

type Profile struct {
	Email        string          `json:"email"`
	Nickname     string          `json:"nickname"`
	RegisteredAt time.Time       `json:"registered_at"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

func NewProfile(p *model.UserProfile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		Email:        p.Email,
		Nickname:     p.Nickname,
		RegisteredAt: p.RegisteredAt,
		TotalSpent:   p.TotalSpent,
	}
}

type LeaderboardEntry struct {
	Rank       int             `json:"rank"`
	Nickname   string          `json:"nickname"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

type Leaderboard struct {
	TopCustomer *LeaderboardEntry  `json:"top_customer"`
	Entries     []LeaderboardEntry `json:"entries"`
}

type Cart struct {
	Items []model.CartItem `json:"items"`
	Count int              `json:"count"`
	Total decimal.Decimal  `json:"total"`
}

type PurchaseDialog struct {
	Open  bool               `json:"open"`
	Item  *model.CatalogItem `json:"item,omitempty"`
	Error string             `json:"error,omitempty"`
}

// StoreView is everything the storefront page renders at once.
type StoreView struct {
	StoreName       string         `json:"store_name"`
	DiscordURL      string         `json:"discord_url"`
	PaymentLogoURL  string         `json:"payment_logo_url"`
	ActiveTab       string         `json:"active_tab"`
	User            *Profile       `json:"user"`
	Registering     bool           `json:"registering"`
	IsAdmin         bool           `json:"is_admin"`
	AdminDialogOpen bool           `json:"admin_dialog_open"`
	OrdersCount     *int           `json:"orders_count,omitempty"` // admin only
	Leaderboard     Leaderboard    `json:"leaderboard"`
	Cart            Cart           `json:"cart"`
	Purchase        PurchaseDialog `json:"purchase"`
}

type OrderList struct {
	Orders []*model.Order `json:"orders"`
	Total  int            `json:"total"`
}
