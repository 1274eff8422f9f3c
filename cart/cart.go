package cart

import (
	"github.com/shopspring/decimal"

	"github.com/cadburyboy21/billing-system-frontend/models"
)

// Cart holds one session's in-progress selection. Lines keep insertion order for
// display, and at most one line exists per menu item. Cart itself is not safe for
// concurrent use; SessionStore serializes access per session.
type Cart struct {
	lines []models.CartLine
}

// Add puts one unit of a menu item into the cart. If a line for the item already
// exists its quantity grows by one and the first-seen name/price/image snapshot
// is kept; otherwise a new line is appended with quantity 1.
func (c *Cart) Add(item models.MenuItem) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == item.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
		Image:      item.Image,
	})
}

// UpdateQuantity sets the quantity of the line for menuItemID. A quantity of zero
// or less removes the line. An absent id is a silent no-op.
func (c *Cart) UpdateQuantity(menuItemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for menuItemID if present
func (c *Cart) Remove(menuItemID string) {
	for i := range c.lines {
		if c.lines[i].MenuItemID == menuItemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.lines = nil
}

// Total sums price times quantity over all lines
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order
func (c *Cart) Lines() []models.CartLine {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of distinct lines in the cart
func (c *Cart) Len() int {
	return len(c.lines)
}

// OrderItems builds the (menu item, quantity) pairs sent at checkout. Prices are
// deliberately left out; the server prices the order.
func (c *Cart) OrderItems() []models.OrderRequestItem {
	items := make([]models.OrderRequestItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.OrderRequestItem{
			MenuItemID: l.MenuItemID,
			Quantity:   l.Quantity,
		})
	}
	return items
}
