package domain

import "github.com/shopspring/decimal"

// ItemCategory represents the catalog category of an item.
type ItemCategory string

// List of possible item categories
const (
	CategoryJeep    ItemCategory = "jeep"
	CategoryBike    ItemCategory = "bike"
	CategoryCar     ItemCategory = "car"
	CategoryScooter ItemCategory = "scooter"
	CategorySpare   ItemCategory = "spare"
)

var allowedCategories = [...]ItemCategory{
	CategoryJeep, CategoryBike, CategoryCar, CategoryScooter, CategorySpare,
}

// Valid checks if the ItemCategory is valid
func (c ItemCategory) Valid() bool {
	for _, v := range allowedCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Item is a catalog product with a dealer (wholesale) rate.
type Item struct {
	ID         int64
	Name       string
	Category   ItemCategory
	Unit       string
	DealerRate decimal.Decimal
	Active     bool
}

// PartialItemUpdate carries optional fields to update an item.
// A nil field means “do not change” that attribute.
type PartialItemUpdate struct {
	ID         int64
	Name       *string
	Category   *ItemCategory
	Unit       *string
	DealerRate *decimal.Decimal
	Active     *bool
}
