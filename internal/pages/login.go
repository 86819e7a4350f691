package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/session"
)

// LoginPage represents the Swag Labs login screen
type LoginPage struct {
	session *session.Session

	usernameInput playwright.Locator
	passwordInput playwright.Locator
	loginButton   playwright.Locator
	errorMessage  playwright.Locator
	errorIcon     playwright.Locator
	errorDismiss  playwright.Locator
}

// NewLoginPage creates a login page object bound to the session's page
func NewLoginPage(s *session.Session) *LoginPage {
	page := s.Page()
	return &LoginPage{
		session:       s,
		usernameInput: page.GetByPlaceholder("Username"),
		passwordInput: page.GetByPlaceholder("Password"),
		loginButton:   page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{Name: "Login"}),
		errorMessage:  page.Locator(`[data-test="error"]`),
		errorIcon:     page.Locator(".error_icon"),
		errorDismiss:  page.Locator(".error-button"),
	}
}

// Navigate loads the application's entry URL
func (l *LoginPage) Navigate() error {
	return l.session.Open("/")
}

// Login fills both credential fields and submits the form. Fill replaces any
// prior field content, so repeated logins on the same page never append.
// The outcome (navigation or inline error) is the caller's to wait on.
func (l *LoginPage) Login(username, password string) error {
	if err := waitVisible(l.usernameInput); err != nil {
		return fmt.Errorf("username input not visible: %w", err)
	}
	if err := l.usernameInput.Fill(username); err != nil {
		return fmt.Errorf("failed to fill username: %w", err)
	}
	if err := l.passwordInput.Fill(password); err != nil {
		return fmt.Errorf("failed to fill password: %w", err)
	}
	if err := l.loginButton.Click(); err != nil {
		return fmt.Errorf("failed to click login button: %w", err)
	}
	return nil
}

// GetErrorMessage returns the error banner text, or the empty string when no
// error is shown. Absence of the banner is a valid state, not a failure.
func (l *LoginPage) GetErrorMessage() (string, error) {
	return visibleText(l.errorMessage)
}

// DismissError closes the error banner if one is visible; no-op otherwise
func (l *LoginPage) DismissError() error {
	visible, err := isVisibleNow(l.errorDismiss)
	if err != nil {
		return err
	}
	if !visible {
		return nil
	}
	return l.errorDismiss.Click()
}

// HasErrorIcon reports whether the inline error icon is visible. An icon
// that is not in the document at all reports false.
func (l *LoginPage) HasErrorIcon() (bool, error) {
	return isVisibleNow(l.errorIcon)
}

// IsLoaded reports whether the login screen has rendered its key element
func (l *LoginPage) IsLoaded() (bool, error) {
	return isVisibleNow(l.loginButton)
}

// UsernameVisible reports whether the username input is visible
func (l *LoginPage) UsernameVisible() (bool, error) {
	return isVisibleNow(l.usernameInput)
}

// PasswordVisible reports whether the password input is visible
func (l *LoginPage) PasswordVisible() (bool, error) {
	return isVisibleNow(l.passwordInput)
}
