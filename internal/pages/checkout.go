package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/models"
	"github.com/sauceqa/swagtest/internal/session"
)

// CheckoutPage spans the three checkout sub-screens: the customer
// information form (step one), the order overview (step two), and the
// completion screen. One object covers all three because the screens share
// a navigation flow and their locators never collide.
type CheckoutPage struct {
	session *session.Session

	// Step one: customer information
	firstNameInput  playwright.Locator
	lastNameInput   playwright.Locator
	postalCodeInput playwright.Locator
	continueButton  playwright.Locator
	cancelButton    playwright.Locator
	errorMessage    playwright.Locator

	// Step two: overview
	overviewItems playwright.Locator
	subtotalLabel playwright.Locator
	taxLabel      playwright.Locator
	totalLabel    playwright.Locator
	finishButton  playwright.Locator

	// Completion
	completeHeader playwright.Locator
	backHomeButton playwright.Locator
}

// NewCheckoutPage creates a checkout page object bound to the session's page
func NewCheckoutPage(s *session.Session) *CheckoutPage {
	page := s.Page()
	return &CheckoutPage{
		session:         s,
		firstNameInput:  page.Locator(`[data-test="firstName"]`),
		lastNameInput:   page.Locator(`[data-test="lastName"]`),
		postalCodeInput: page.Locator(`[data-test="postalCode"]`),
		continueButton:  page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Continue"}),
		cancelButton:    page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Cancel"}),
		errorMessage:    page.Locator(`[data-test="error"]`),
		overviewItems:   page.Locator(".cart_item"),
		subtotalLabel:   page.Locator(".summary_subtotal_label"),
		taxLabel:        page.Locator(".summary_tax_label"),
		totalLabel:      page.Locator(".summary_total_label"),
		finishButton:    page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Finish"}),
		completeHeader:  page.Locator(".complete-header"),
		backHomeButton:  page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Back Home"}),
	}
}

// IsStepOneLoaded reports whether all three customer information inputs are
// visible
func (c *CheckoutPage) IsStepOneLoaded() (bool, error) {
	for _, input := range []playwright.Locator{c.firstNameInput, c.lastNameInput, c.postalCodeInput} {
		visible, err := isVisibleNow(input)
		if err != nil {
			return false, err
		}
		if !visible {
			return false, nil
		}
	}
	return true, nil
}

// FillCustomerInfo writes the three customer information fields
func (c *CheckoutPage) FillCustomerInfo(firstName, lastName, postalCode string) error {
	if err := waitVisible(c.firstNameInput); err != nil {
		return fmt.Errorf("first name input not visible: %w", err)
	}
	if err := c.firstNameInput.Fill(firstName); err != nil {
		return fmt.Errorf("failed to fill first name: %w", err)
	}
	if err := c.lastNameInput.Fill(lastName); err != nil {
		return fmt.Errorf("failed to fill last name: %w", err)
	}
	if err := c.postalCodeInput.Fill(postalCode); err != nil {
		return fmt.Errorf("failed to fill postal code: %w", err)
	}
	return nil
}

// ContinueToOverview submits the customer information form
func (c *CheckoutPage) ContinueToOverview() error {
	if err := clickWhenVisible(c.continueButton); err != nil {
		return fmt.Errorf("failed to continue to overview: %w", err)
	}
	return nil
}

// CancelCheckout cancels checkout and returns to the cart
func (c *CheckoutPage) CancelCheckout() error {
	if err := clickWhenVisible(c.cancelButton); err != nil {
		return fmt.Errorf("failed to cancel checkout: %w", err)
	}
	return nil
}

// GetErrorMessage returns the validation error text, or the empty string
// when no error is shown
func (c *CheckoutPage) GetErrorMessage() (string, error) {
	return visibleText(c.errorMessage)
}

// IsOverviewLoaded reports whether the order overview has rendered its
// subtotal label
func (c *CheckoutPage) IsOverviewLoaded() (bool, error) {
	return isVisibleNow(c.subtotalLabel)
}

// GetOverviewItems extracts the order rows shown on the overview screen
func (c *CheckoutPage) GetOverviewItems() ([]models.CartItem, error) {
	if err := waitFirstVisible(c.overviewItems); err != nil {
		return nil, fmt.Errorf("overview rows did not become visible: %w", err)
	}

	rows, err := c.overviewItems.All()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve overview rows: %w", err)
	}

	return extractCartRows(rows)
}

// GetSubtotal returns the pre-tax item total scraped from the overview
func (c *CheckoutPage) GetSubtotal() (float64, error) {
	return c.scrapeAmount(c.subtotalLabel, "subtotal")
}

// GetTax returns the tax amount scraped from the overview
func (c *CheckoutPage) GetTax() (float64, error) {
	return c.scrapeAmount(c.taxLabel, "tax")
}

// GetTotal returns the order total scraped from the overview
func (c *CheckoutPage) GetTotal() (float64, error) {
	return c.scrapeAmount(c.totalLabel, "total")
}

// scrapeAmount reads a summary label and parses its currency-suffixed
// amount. A label with no currency symbol or an unparsable tail yields 0.0
// by design; only a label that never renders is an error.
func (c *CheckoutPage) scrapeAmount(label playwright.Locator, kind string) (float64, error) {
	text, err := label.InnerText()
	if err != nil {
		return 0, fmt.Errorf("failed to read %s label: %w", kind, err)
	}
	return amountAfterCurrency(text), nil
}

// FinishOrder completes the order from the overview screen
func (c *CheckoutPage) FinishOrder() error {
	if err := clickWhenVisible(c.finishButton); err != nil {
		return fmt.Errorf("failed to finish order: %w", err)
	}
	return nil
}

// IsCheckoutComplete reports whether the completion header is visible
func (c *CheckoutPage) IsCheckoutComplete() (bool, error) {
	return isVisibleNow(c.completeHeader)
}

// GetConfirmationMessage returns the completion header text, or the empty
// string when the completion screen is not shown
func (c *CheckoutPage) GetConfirmationMessage() (string, error) {
	return visibleText(c.completeHeader)
}

// BackToHome returns to the inventory from the completion screen
func (c *CheckoutPage) BackToHome() error {
	if err := clickWhenVisible(c.backHomeButton); err != nil {
		return fmt.Errorf("failed to return to home: %w", err)
	}
	return nil
}

// FirstNameValue returns the current value of the first name input
func (c *CheckoutPage) FirstNameValue() (string, error) {
	return c.firstNameInput.InputValue()
}

// LastNameValue returns the current value of the last name input
func (c *CheckoutPage) LastNameValue() (string, error) {
	return c.lastNameInput.InputValue()
}

// PostalCodeValue returns the current value of the postal code input
func (c *CheckoutPage) PostalCodeValue() (string, error) {
	return c.postalCodeInput.InputValue()
}
