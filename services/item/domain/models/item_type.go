package models

import "fmt"

// ItemType classifies an item for display and filtering.
type ItemType string

const (
	ItemTypeGeneral     ItemType = "General"
	ItemTypeElectronics ItemType = "Electronics"
	ItemTypeGrocery     ItemType = "Grocery"
	ItemTypeClothing    ItemType = "Clothing"
	ItemTypeStationery  ItemType = "Stationery"
)

// ItemTypes lists the accepted types in display order.
var ItemTypes = []ItemType{
	ItemTypeGeneral,
	ItemTypeElectronics,
	ItemTypeGrocery,
	ItemTypeClothing,
	ItemTypeStationery,
}

// ParseItemType returns the ItemType named by s. Empty input means General.
func ParseItemType(s string) (ItemType, error) {
	if s == "" {
		return ItemTypeGeneral, nil
	}
	for _, t := range ItemTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown item type %q", s)
}

func (t ItemType) String() string {
	return string(t)
}
