package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when attempting to use an
// improperly initialized LineItem. LineItems must be created via NewLineItem.
var ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
	"line item must be created via NewLineItem constructor")

// LineItem is an immutable snapshot of a menu item at order time.
// The name and unit price are copied from the menu, not referenced,
// so later menu changes do not retroactively alter historical orders.
//
// The subtotal is fixed at construction: quantity × unit price, with no
// rounding beyond the currency precision carried by the inputs.
type LineItem struct {
	menuItemID kernel.UUID
	name       string
	quantity   int
	unitPrice  decimal.Decimal
	subtotal   decimal.Decimal
	guard      guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem snapshot.
//
// Parameters:
//   - menuItemID: identifier of the menu item at order time (must be valid)
//   - name: menu item name snapshot (must be non-empty)
//   - quantity: number of units ordered (must be positive)
//   - unitPrice: price per unit at order time (must not be negative)
//
// Returns:
//   - LineItem: the created snapshot with its subtotal computed
//   - error: validation error if any parameter is invalid
func NewLineItem(menuItemID kernel.UUID, name string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persistence without
// recomputing the subtotal. The stored subtotal is trusted as written.
func RestoreLineItem(
	menuItemID kernel.UUID,
	name string,
	quantity int,
	unitPrice decimal.Decimal,
	subtotal decimal.Decimal,
) (LineItem, error) {
	item, err := NewLineItem(menuItemID, name, quantity, unitPrice)
	if err != nil {
		return LineItem{}, err
	}

	item.subtotal = subtotal
	return item, nil
}

// Validate checks that the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuItemID returns the identifier of the snapshotted menu item.
func (i LineItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the menu item name as it was at order time.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the per-unit price as it was at order time.
func (i LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i LineItem) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *LineItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is negative", unitPrice.String()),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
