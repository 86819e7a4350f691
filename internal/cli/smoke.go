package cli

import (
	"errors"
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/config"
	"github.com/sauceqa/swagtest/internal/pages"
	"github.com/sauceqa/swagtest/internal/session"
)

// defaultSmokeProduct is exercised when no product is configured
const defaultSmokeProduct = "Sauce Labs Backpack"

// SmokeDependencies holds all dependencies needed for the smoke flow
type SmokeDependencies struct {
	App     config.AppConfig
	Users   config.UserConfig
	Product string
	Video   bool
}

// applyDefaults fills in unset optional dependencies
func (d *SmokeDependencies) applyDefaults() {
	if d.Product == "" {
		d.Product = defaultSmokeProduct
	}
}

// flowStep is one named stage of a scripted browser flow
type flowStep struct {
	Name string
	Run  func() error
}

// RunSmoke drives a login → add-to-cart → remove flow against the target
// application outside the test binary. It launches its own browser and
// tears everything down regardless of outcome.
func RunSmoke(deps SmokeDependencies) error {
	deps.applyDefaults()

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}
	defer pw.Stop()

	launchOptions := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(deps.App.Headless),
	}
	if deps.App.SlowMo > 0 {
		launchOptions.SlowMo = playwright.Float(float64(deps.App.SlowMo.Milliseconds()))
	}

	browser, err := pw.Chromium.Launch(launchOptions)
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer browser.Close()

	s, err := session.New(browser, deps.App, session.Options{RecordVideo: deps.Video})
	if err != nil {
		return err
	}
	defer s.Close()

	return runSteps(smokeSteps(s, deps), log.Printf)
}

// smokeSteps builds the ordered smoke flow against a live session
func smokeSteps(s *session.Session, deps SmokeDependencies) []flowStep {
	login := pages.NewLoginPage(s)
	inventory := pages.NewInventoryPage(s)
	cart := pages.NewCartPage(s)

	return []flowStep{
		{Name: "open login page", Run: login.Navigate},
		{Name: "log in as standard user", Run: func() error {
			return login.Login(deps.Users.Standard.Username, deps.Users.Standard.Password)
		}},
		{Name: "inventory page loads", Run: func() error {
			if err := s.ExpectPath("/inventory.html"); err != nil {
				return err
			}
			loaded, err := inventory.IsLoaded()
			if err != nil {
				return err
			}
			if !loaded {
				return errors.New("inventory page did not render any products")
			}
			return nil
		}},
		{Name: "add product to cart", Run: func() error {
			return inventory.AddItemToCart(deps.Product)
		}},
		{Name: "cart badge shows one item", Run: func() error {
			count, err := inventory.GetCartCount()
			if err != nil {
				return err
			}
			if count != 1 {
				return fmt.Errorf("expected cart count 1, got %d", count)
			}
			return nil
		}},
		{Name: "open cart", Run: inventory.OpenCart},
		{Name: "cart lists the product", Run: func() error {
			items, err := cart.GetItems()
			if err != nil {
				return err
			}
			if len(items) != 1 {
				return fmt.Errorf("expected 1 cart item, got %d", len(items))
			}
			if items[0].Name != deps.Product {
				return fmt.Errorf("expected cart item %q, got %q", deps.Product, items[0].Name)
			}
			return nil
		}},
		{Name: "remove product from cart", Run: func() error {
			return cart.RemoveItem(deps.Product)
		}},
		{Name: "cart is empty", Run: func() error {
			empty, err := cart.IsEmpty()
			if err != nil {
				return err
			}
			if !empty {
				return errors.New("cart still has items after removal")
			}
			return nil
		}},
	}
}

// runSteps executes flow steps in order, logging each one and stopping at
// the first failure
func runSteps(steps []flowStep, logf func(string, ...any)) error {
	for _, step := range steps {
		logf("smoke: %s", step.Name)
		if err := step.Run(); err != nil {
			return fmt.Errorf("smoke step %q failed: %w", step.Name, err)
		}
	}
	logf("smoke: all %d steps passed", len(steps))
	return nil
}
