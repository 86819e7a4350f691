package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CartItem is a read model for one row of the cart or checkout overview,
// scraped from the rendered page. Price keeps the display string (including
// the currency symbol) because tests assert on what the user sees.
type CartItem struct {
	Name     string
	Price    string
	Quantity int
}

// Domain errors
var (
	ErrEmptyItemName   = errors.New("cart item name cannot be empty")
	ErrInvalidQuantity = errors.New("cart item quantity must be a positive integer")
)

// NewCartItem builds a cart item from scraped row text with validation
func NewCartItem(name, price, quantity string) (CartItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CartItem{}, ErrEmptyItemName
	}

	qty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return CartItem{}, fmt.Errorf("%w: %q", ErrInvalidQuantity, quantity)
	}
	if qty <= 0 {
		return CartItem{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}

	return CartItem{
		Name:     name,
		Price:    strings.TrimSpace(price),
		Quantity: qty,
	}, nil
}
