// Package services contains stateless domain services for the item bounded context.
// They operate purely on domain types and depend on nothing beyond the
// domain layer.
package services

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ghuser/stockroom/services/item/domain/models"
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (length 1 to 255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
//   - Must not be only whitespace characters
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("item name must not be only whitespace")
	}

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("item name must not have leading or trailing whitespace")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("item name must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("item name must not contain consecutive spaces")
	}

	return nil
}

// ValidateItem performs cross-field validation on an Item before it is
// written, whether freshly built by models.NewItem or modified by Apply.
func ValidateItem(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if !slices.Contains(models.ItemTypes, item.Type) {
		return fmt.Errorf("unknown item type %q", item.Type)
	}

	if item.Price.IsNegative() || item.Stock < 0 {
		return fmt.Errorf("price and stock must not be negative")
	}

	return nil
}
