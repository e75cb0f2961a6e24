package lists

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"listdeck/internal/record"
)

// CartInfo is the aggregate of the shopping cart.
type CartInfo struct {
	TotalItems int     // sum of quantities
	TotalValue float64 // sum of quantity * price
}

// CartAddResult reports where an Add landed.
type CartAddResult struct {
	Item     record.CartItem
	Position int
	Merged   bool // quantity was folded into an existing item
}

// CartList is the shopping cart. Adding a name that is already in the cart
// increases that item's quantity and keeps its original price.
type CartList struct {
	clock Clock
	items []record.CartItem
}

// NewCartList creates an empty cart stamping records with clock.
func NewCartList(clock Clock) *CartList {
	return &CartList{clock: clock}
}

// Add parses priceRaw and quantityRaw and adds or merges the item.
//
// The price must parse to a finite number above zero. A missing or
// unparseable quantity counts as 1; an explicit quantity below 1 is
// rejected, as is any add that would take the cart totals out of range.
func (l *CartList) Add(name, priceRaw, quantityRaw string) (CartAddResult, error) {
	price, err := ParsePrice(priceRaw)
	if err != nil {
		return CartAddResult{}, err
	}
	qty, err := ParseQuantity(quantityRaw)
	if err != nil {
		return CartAddResult{}, err
	}

	i := l.indexOf(name)
	unit := price
	if i >= 0 {
		unit = l.items[i].Price
	}
	if err := l.checkGrowth(unit, qty); err != nil {
		return CartAddResult{}, err
	}

	if i >= 0 {
		l.items[i].Quantity += qty
		return CartAddResult{Item: l.items[i], Position: i, Merged: true}, nil
	}

	item := record.CartItem{
		ID:        uuid.NewString(),
		Name:      name,
		Quantity:  qty,
		Price:     price,
		AddedDate: l.clock.now(),
	}
	l.items = append(l.items, item)
	return CartAddResult{Item: item, Position: len(l.items) - 1}, nil
}

// ParsePrice parses a unit price.
func ParsePrice(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, Validationf("price required")
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, Validationf("invalid price: %s", raw)
	}
	return price, nil
}

// ParseQuantity parses a quantity, defaulting to 1 when raw is empty or not
// an integer.
func ParseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1, nil
	}
	if qty < 1 {
		return 0, Validationf("invalid quantity: %d", qty)
	}
	return qty, nil
}

// RemoveAt deletes and returns the item at pos.
func (l *CartList) RemoveAt(pos int) (record.CartItem, error) {
	if err := checkPosition(pos, len(l.items)); err != nil {
		return record.CartItem{}, err
	}
	var removed record.CartItem
	l.items, removed = removeAt(l.items, pos)
	return removed, nil
}

// At returns the item at pos.
func (l *CartList) At(pos int) (record.CartItem, error) {
	if err := checkPosition(pos, len(l.items)); err != nil {
		return record.CartItem{}, err
	}
	return l.items[pos], nil
}

// Clear empties the cart.
func (l *CartList) Clear() {
	l.items = nil
}

func (l *CartList) Len() int { return len(l.items) }

// Items returns a copy of the cart in insertion order.
func (l *CartList) Items() []record.CartItem {
	out := make([]record.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *CartList) Info() CartInfo {
	var info CartInfo
	for _, item := range l.items {
		info.TotalItems += item.Quantity
		info.TotalValue += item.Total()
	}
	return info
}

// checkGrowth rejects an add whose quantity or value would leave the
// cart totals out of range.
func (l *CartList) checkGrowth(unit float64, qty int) error {
	info := l.Info()
	if qty > math.MaxInt-info.TotalItems {
		return Validationf("invalid quantity: %d", qty)
	}
	if math.IsInf(info.TotalValue+unit*float64(qty), 0) {
		return Validationf("total out of range")
	}
	return nil
}

func (l *CartList) indexOf(name string) int {
	for i, item := range l.items {
		if item.Name == name {
			return i
		}
	}
	return -1
}
