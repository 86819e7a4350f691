package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/models"
	"github.com/sauceqa/swagtest/internal/session"
)

// Sort option values accepted by the inventory sort control
const (
	SortNameAZ    = "az"
	SortNameZA    = "za"
	SortPriceLow  = "lohi"
	SortPriceHigh = "hilo"
)

// InventoryPage represents the Swag Labs product listing screen
type InventoryPage struct {
	session *session.Session

	cartLink     playwright.Locator
	cartBadge    playwright.Locator
	sortSelect   playwright.Locator
	productItems playwright.Locator
	productNames playwright.Locator
	menuButton   playwright.Locator
	logoutLink   playwright.Locator
}

// NewInventoryPage creates an inventory page object bound to the session's page
func NewInventoryPage(s *session.Session) *InventoryPage {
	page := s.Page()
	return &InventoryPage{
		session:      s,
		cartLink:     page.Locator(".shopping_cart_link"),
		cartBadge:    page.Locator(".shopping_cart_badge"),
		sortSelect:   page.Locator(`[data-test="product_sort_container"]`),
		productItems: page.Locator(".inventory_item"),
		productNames: page.Locator(".inventory_item_name"),
		menuButton:   page.Locator("#react-burger-menu-btn"),
		logoutLink:   page.Locator("#logout_sidebar_link"),
	}
}

// IsLoaded reports whether at least the first product row is visible
func (i *InventoryPage) IsLoaded() (bool, error) {
	return isVisibleNow(i.productItems.First())
}

// AddItemToCart adds a product to the cart by its display name
func (i *InventoryPage) AddItemToCart(name string) error {
	button := withText(withText(i.productItems, name).Locator("button"), "Add to cart")
	if err := clickWhenVisible(button); err != nil {
		return fmt.Errorf("failed to add %q to cart: %w", name, err)
	}
	return nil
}

// RemoveItemFromCart removes a product from the cart by its display name
func (i *InventoryPage) RemoveItemFromCart(name string) error {
	button := withText(withText(i.productItems, name).Locator("button"), "Remove")
	if err := clickWhenVisible(button); err != nil {
		return fmt.Errorf("failed to remove %q from cart: %w", name, err)
	}
	return nil
}

// GetCartCount returns the badge count, or 0 when the badge is absent or
// hidden. An empty cart renders no badge at all, so absence is the zero
// state rather than an error.
func (i *InventoryPage) GetCartCount() (int, error) {
	visible, err := isVisibleNow(i.cartBadge)
	if err != nil {
		return 0, err
	}
	if !visible {
		return 0, nil
	}

	text, err := i.cartBadge.InnerText()
	if err != nil {
		return 0, fmt.Errorf("failed to read cart badge: %w", err)
	}
	count, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("cart badge text %q is not a number: %w", text, err)
	}
	return count, nil
}

// SortBy selects a sort option by value (az, za, lohi, hilo). The product
// rows must be rendered and the sort control attached before the select
// action runs; either precondition failing within the wait bound is an error.
func (i *InventoryPage) SortBy(option string) error {
	if err := waitVisible(i.productItems.First()); err != nil {
		return fmt.Errorf("product rows not visible before sorting: %w", err)
	}
	if err := waitAttached(i.sortSelect); err != nil {
		return fmt.Errorf("sort control not attached: %w", err)
	}
	if _, err := i.sortSelect.SelectOption(playwright.SelectOptionValues{
		Values: &[]string{option},
	}); err != nil {
		return fmt.Errorf("failed to select sort option %q: %w", option, err)
	}
	return nil
}

// OpenCart navigates to the cart page via the cart icon
func (i *InventoryPage) OpenCart() error {
	if err := clickWhenVisible(i.cartLink); err != nil {
		return fmt.Errorf("failed to open cart: %w", err)
	}
	return nil
}

// GetProductNames returns product names in current on-screen order
func (i *InventoryPage) GetProductNames() ([]string, error) {
	if err := waitFirstVisible(i.productNames); err != nil {
		return nil, err
	}

	elements, err := i.productNames.All()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product names: %w", err)
	}

	names := make([]string, 0, len(elements))
	for _, element := range elements {
		name, err := element.InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read product name: %w", err)
		}
		names = append(names, name)
	}
	return names, nil
}

// GetProducts returns name, description and price for every product row in
// current on-screen order
func (i *InventoryPage) GetProducts() ([]models.Product, error) {
	if err := waitFirstVisible(i.productItems); err != nil {
		return nil, err
	}

	rows, err := i.productItems.All()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product rows: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		name, err := row.Locator(".inventory_item_name").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read product name: %w", err)
		}
		description, err := row.Locator(".inventory_item_desc").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read product description: %w", err)
		}
		price, err := row.Locator(".inventory_item_price").InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read product price: %w", err)
		}
		products = append(products, models.Product{
			Name:        name,
			Description: description,
			Price:       price,
		})
	}
	return products, nil
}

// GetProductPrices returns the numeric prices in current on-screen order.
// Rows whose price text does not parse as a currency-prefixed decimal are
// skipped rather than aborting the whole extraction.
func (i *InventoryPage) GetProductPrices() ([]float64, error) {
	priceElements := i.session.Page().Locator(".inventory_item_price")
	if err := waitFirstVisible(priceElements); err != nil {
		return nil, err
	}

	elements, err := priceElements.All()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product prices: %w", err)
	}

	prices := make([]float64, 0, len(elements))
	for _, element := range elements {
		text, err := element.InnerText()
		if err != nil {
			return nil, fmt.Errorf("failed to read product price: %w", err)
		}
		if value, ok := parsePrice(text); ok {
			prices = append(prices, value)
		}
	}
	return prices, nil
}

// OpenProductDetails opens the detail page for a product by clicking its
// name link within the matched row
func (i *InventoryPage) OpenProductDetails(name string) error {
	link := withText(i.productItems, name).Locator(".inventory_item_name")
	if err := clickWhenVisible(link); err != nil {
		return fmt.Errorf("failed to open details for %q: %w", name, err)
	}
	return nil
}

// Logout opens the navigation menu and activates the logout control. The
// menu slides in asynchronously, so the logout link is waited on explicitly
// before the click.
func (i *InventoryPage) Logout() error {
	if err := clickWhenVisible(i.menuButton); err != nil {
		return fmt.Errorf("failed to open navigation menu: %w", err)
	}
	if err := waitVisible(i.logoutLink); err != nil {
		return fmt.Errorf("logout link did not become visible: %w", err)
	}
	if err := i.logoutLink.Click(); err != nil {
		return fmt.Errorf("failed to click logout: %w", err)
	}
	return nil
}
