package billing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RajFruit/Hospital-Managment-System/pkg/types"
)

// Draft is an in-progress bill: the ordered line items entered so far and
// their running total. A draft belongs to exactly one billing session and is
// not safe for concurrent use; the owning service serializes access to it.
//
// Items are append-only. There is no way to remove or edit a single item,
// only Clear, which resets the whole draft.
type Draft struct {
	items        []types.LineItem
	runningTotal decimal.Decimal
}

// NewDraft creates an empty draft
func NewDraft() *Draft {
	return &Draft{runningTotal: decimal.Zero}
}

// AddItem parses the raw quantity and price inputs, computes the line total
// and appends the item to the draft. Name and description are taken as-is;
// required-field checks happen at finalize time, not here.
//
// A parse failure, a non-positive quantity or a negative price returns an
// INVALID_NUMBER_FORMAT error and leaves the draft untouched, so the caller
// can re-prompt without losing already-entered items.
func (d *Draft) AddItem(name, description, quantityInput, priceInput string) (*types.LineItem, error) {
	quantity, err := decimal.NewFromString(strings.TrimSpace(quantityInput))
	if err != nil {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"quantity must be a valid number",
			map[string]interface{}{"quantity": quantityInput},
		)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(priceInput))
	if err != nil {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"price must be a valid number",
			map[string]interface{}{"price": priceInput},
		)
	}

	if !quantity.IsPositive() {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"quantity must be greater than zero",
			map[string]interface{}{"quantity": quantityInput},
		)
	}

	if price.IsNegative() {
		return nil, types.NewValidationError(
			types.ErrCodeInvalidNumberFormat,
			"price must not be negative",
			map[string]interface{}{"price": priceInput},
		)
	}

	item := types.LineItem{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   price,
		LineTotal:   quantity.Mul(price),
	}

	d.items = append(d.items, item)
	d.runningTotal = d.runningTotal.Add(item.LineTotal)

	return &item, nil
}

// Clear resets the draft to empty. Always succeeds.
func (d *Draft) Clear() {
	d.items = nil
	d.runningTotal = decimal.Zero
}

// CurrentTotal returns the running total of all line items
func (d *Draft) CurrentTotal() decimal.Decimal {
	return d.runningTotal
}

// Items returns a copy of the line items in insertion order
func (d *Draft) Items() []types.LineItem {
	items := make([]types.LineItem, len(d.items))
	copy(items, d.items)
	return items
}

// Empty reports whether the draft has no line items
func (d *Draft) Empty() bool {
	return len(d.items) == 0
}

// ItemCount returns the number of line items in the draft
func (d *Draft) ItemCount() int {
	return len(d.items)
}
