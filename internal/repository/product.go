package repository

import (
	"crimson-store/internal/model"

	"github.com/shopspring/decimal"
)

// CatalogRepository serves the fixed product list. Nothing here is persisted.
type CatalogRepository interface {
	GetByType(itemType model.ItemType) []model.CatalogItem
	Find(itemType model.ItemType, name string) (model.CatalogItem, bool)
}

type catalogRepoImpl struct {
	items []model.CatalogItem
}

func NewCatalogRepository() CatalogRepository {
	return NewCatalogRepositoryWith(defaultCatalog())
}

func NewCatalogRepositoryWith(items []model.CatalogItem) CatalogRepository {
	return &catalogRepoImpl{
		items: items,
	}
}

// five rank tiers; crates are not on sale yet
func defaultCatalog() []model.CatalogItem {
	return []model.CatalogItem{
		{Type: model.ItemTypeRank, Name: "Knight", Price: decimal.NewFromInt(3), Perks: []string{"[Knight] chat prefix", "/kit knight every 24h", "2 home slots"}},
		{Type: model.ItemTypeRank, Name: "Lord", Price: decimal.NewFromInt(5), Perks: []string{"[Lord] chat prefix", "/kit lord every 24h", "3 home slots", "/hat"}},
		{Type: model.ItemTypeRank, Name: "Duke", Price: decimal.NewFromInt(7), Perks: []string{"[Duke] chat prefix", "/kit duke every 24h", "5 home slots", "/workbench"}},
		{Type: model.ItemTypeRank, Name: "King", Price: decimal.NewFromInt(9), Perks: []string{"[King] chat prefix", "/kit king every 24h", "8 home slots", "/enderchest"}},
		{Type: model.ItemTypeRank, Name: "Emperor", Price: decimal.NewFromInt(11), Perks: []string{"[Emperor] chat prefix", "/kit emperor every 24h", "unlimited homes", "/fly in spawn"}},
	}
}

func (r *catalogRepoImpl) GetByType(itemType model.ItemType) []model.CatalogItem {
	items := make([]model.CatalogItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Type == itemType {
			items = append(items, item)
		}
	}
	return items
}

func (r *catalogRepoImpl) Find(itemType model.ItemType, name string) (model.CatalogItem, bool) {
	for _, item := range r.items {
		if item.Type == itemType && item.Name == name {
			return item, true
		}
	}
	return model.CatalogItem{}, false
}
