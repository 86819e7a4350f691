package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/models"
	"github.com/sauceqa/swagtest/internal/session"
)

// CartPage represents the Swag Labs shopping cart screen
type CartPage struct {
	session *session.Session

	cartItems              playwright.Locator
	continueShoppingButton playwright.Locator
	checkoutButton         playwright.Locator
}

// NewCartPage creates a cart page object bound to the session's page
func NewCartPage(s *session.Session) *CartPage {
	page := s.Page()
	return &CartPage{
		session:                s,
		cartItems:              page.Locator(".cart_item"),
		continueShoppingButton: page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Continue Shopping"}),
		checkoutButton:         page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Checkout"}),
	}
}

// IsLoaded reports whether the cart screen has rendered. Either control
// counts: the cart renders both whether it is empty or populated, so one
// visible control is enough.
func (c *CartPage) IsLoaded() (bool, error) {
	visible, err := isVisibleNow(c.checkoutButton)
	if err != nil {
		return false, err
	}
	if visible {
		return true, nil
	}
	return isVisibleNow(c.continueShoppingButton)
}

// GetItems extracts name, price and quantity for every cart row in document
// order. When rows exist, the first one is waited on before reading so a
// mid-render list is never iterated.
func (c *CartPage) GetItems() ([]models.CartItem, error) {
	if err := waitFirstVisible(c.cartItems); err != nil {
		return nil, fmt.Errorf("cart rows did not become visible: %w", err)
	}

	rows, err := c.cartItems.All()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cart rows: %w", err)
	}

	return extractCartRows(rows)
}

// RemoveItem removes a cart row by product name via its Remove button
func (c *CartPage) RemoveItem(name string) error {
	button := withText(withText(c.cartItems, name).Locator("button"), "Remove")
	if err := clickWhenVisible(button); err != nil {
		return fmt.Errorf("failed to remove %q from cart: %w", name, err)
	}
	return nil
}

// ProceedToCheckout activates the checkout control. The resulting navigation
// is the caller's to verify.
func (c *CartPage) ProceedToCheckout() error {
	if err := clickWhenVisible(c.checkoutButton); err != nil {
		return fmt.Errorf("failed to proceed to checkout: %w", err)
	}
	return nil
}

// ContinueShopping activates the continue-shopping control
func (c *CartPage) ContinueShopping() error {
	if err := clickWhenVisible(c.continueShoppingButton); err != nil {
		return fmt.Errorf("failed to continue shopping: %w", err)
	}
	return nil
}

// IsEmpty reports whether the cart has no rows
func (c *CartPage) IsEmpty() (bool, error) {
	count, err := c.cartItems.Count()
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ItemCount returns the number of cart rows currently in the document
func (c *CartPage) ItemCount() (int, error) {
	return c.cartItems.Count()
}

// extractCartRows reads {name, price, quantity} from a resolved set of cart
// row elements. Shared with the checkout overview, which renders the same
// row structure.
func extractCartRows(rows []playwright.Locator) ([]models.CartItem, error) {
	items := make([]models.CartItem, 0, len(rows))
	for _, row := range rows {
		name, err := row.Locator(".inventory_item_name").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read cart item name: %w", err)
		}
		price, err := row.Locator(".inventory_item_price").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read cart item price: %w", err)
		}
		quantity, err := row.Locator(".cart_quantity").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read cart item quantity: %w", err)
		}

		item, err := models.NewCartItem(name, price, quantity)
		if err != nil {
			return nil, fmt.Errorf("invalid cart row: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}
