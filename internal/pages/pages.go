// Package pages implements page objects for the Swag Labs demo shop. Each
// page object groups the locators for one logical screen and exposes
// intention-revealing operations built on top of them.
//
// Locators are deferred queries: they re-evaluate against the live document
// every time an operation runs, never caching matched elements. Every
// mutating operation waits for its target to become visible within the
// session's default timeout and returns the timeout as an error; there are
// no retries at this layer. Read operations on presence-optional elements
// (error banners, the cart badge) treat absence as a valid zero state and
// never fail just because the element is missing.
package pages

import (
	"github.com/playwright-community/playwright-go"
)

// waitVisible blocks until the locator resolves to a visible element or the
// session's default timeout expires
func waitVisible(locator playwright.Locator) error {
	return locator.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateVisible,
	})
}

// waitAttached blocks until the locator is attached to the document. Used
// as a precondition for select-option actions, which need the control in the
// DOM but not necessarily painted yet.
func waitAttached(locator playwright.Locator) error {
	return locator.WaitFor(playwright.LocatorWaitForOptions{
		State: playwright.WaitForSelectorStateAttached,
	})
}

// clickWhenVisible waits for the locator and clicks it
func clickWhenVisible(locator playwright.Locator) error {
	if err := waitVisible(locator); err != nil {
		return err
	}
	return locator.Click()
}

// isVisibleNow reports whether the locator currently resolves to a visible
// element, without waiting. A locator that matches nothing reports false
// rather than an error: existence is checked before visibility so that
// asking about a missing element is never a failure.
func isVisibleNow(locator playwright.Locator) (bool, error) {
	count, err := locator.Count()
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	return locator.First().IsVisible()
}

// visibleText returns the locator's text if it is currently visible, or the
// empty string when the element is absent or hidden
func visibleText(locator playwright.Locator) (string, error) {
	visible, err := isVisibleNow(locator)
	if err != nil {
		return "", err
	}
	if !visible {
		return "", nil
	}
	return locator.InnerText()
}

// withText narrows a locator collection to entries whose rendered text
// contains the given substring. This mirrors the application's row lookup
// semantics: the demo catalog has no product name that is a substring of
// another, so substring matching is unambiguous in practice.
func withText(locator playwright.Locator, text string) playwright.Locator {
	return locator.Filter(playwright.LocatorFilterOptions{HasText: text})
}

// waitFirstVisible establishes that the first element of a collection is
// rendered before the caller iterates the full set, guarding against
// reading a partially-hydrated list. A collection with zero matches is
// left alone; empty is a valid state for the callers that use this.
func waitFirstVisible(locator playwright.Locator) error {
	count, err := locator.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return waitVisible(locator.First())
}
