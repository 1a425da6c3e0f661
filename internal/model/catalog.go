package model

import "github.com/shopspring/decimal"

type ItemType string

const (
	ItemTypeRank  ItemType = "rank"
	ItemTypeCrate ItemType = "crate"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeRank || t == ItemTypeCrate
}

type CatalogItem struct {
	Type  ItemType        `json:"type"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Perks []string        `json:"perks"`
}

type CartItem struct {
	Type     ItemType        `json:"type"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}
