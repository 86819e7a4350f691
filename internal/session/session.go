// Package session owns the browser context for one test execution. Each
// Session drives a single page; page objects are constructed against it and
// are only valid while the session is alive.
package session

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"github.com/sauceqa/swagtest/internal/config"
)

// Options controls optional per-session behavior
type Options struct {
	// RecordVideo enables video capture for the session
	RecordVideo bool
	// VideoDir is the root directory for recordings; each session records
	// into a unique subdirectory. Defaults to test-results/videos.
	VideoDir string
}

// Session wraps one browser context and its single page. Operations against
// a session are strictly sequential; the asynchronous part is the browser's
// own rendering, which locator waits account for.
type Session struct {
	context playwright.BrowserContext
	page    playwright.Page
	cfg     config.AppConfig
	closed  bool
}

// New creates a browser context and page configured for the test run
func New(browser playwright.Browser, cfg config.AppConfig, opts Options) (*Session, error) {
	context, err := browser.NewContext(newContextOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	// Every locator action and navigation inherits these bounds
	context.SetDefaultTimeout(float64(cfg.DefaultTimeout.Milliseconds()))
	context.SetDefaultNavigationTimeout(float64(cfg.NavigationTimeout.Milliseconds()))

	page, err := context.NewPage()
	if err != nil {
		context.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &Session{
		context: context,
		page:    page,
		cfg:     cfg,
	}, nil
}

// newContextOptions builds the browser context options for a session
func newContextOptions(opts Options) playwright.BrowserNewContextOptions {
	contextOptions := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  1920,
			Height: 1080,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	}

	if opts.RecordVideo {
		dir := opts.VideoDir
		if dir == "" {
			dir = filepath.Join("test-results", "videos")
		}
		contextOptions.RecordVideo = &playwright.RecordVideo{
			// Unique subdirectory so concurrent sessions never clobber
			// each other's recordings
			Dir: filepath.Join(dir, uuid.New().String()),
		}
	}

	return contextOptions
}

// Page returns the live page driven by this session
func (s *Session) Page() playwright.Page {
	return s.page
}

// Config returns the application configuration the session was built with
func (s *Session) Config() config.AppConfig {
	return s.cfg
}

// Open navigates to a path on the application under test
func (s *Session) Open(path string) error {
	return s.Goto(s.cfg.URL(path))
}

// Goto navigates to an absolute URL
func (s *Session) Goto(url string) error {
	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Reload reloads the current page
func (s *Session) Reload() error {
	if _, err := s.page.Reload(); err != nil {
		return fmt.Errorf("failed to reload page: %w", err)
	}
	return nil
}

// GoBack navigates back in the session history
func (s *Session) GoBack() error {
	if _, err := s.page.GoBack(); err != nil {
		return fmt.Errorf("failed to navigate back: %w", err)
	}
	return nil
}

// GoForward navigates forward in the session history
func (s *Session) GoForward() error {
	if _, err := s.page.GoForward(); err != nil {
		return fmt.Errorf("failed to navigate forward: %w", err)
	}
	return nil
}

// URL returns the current page URL
func (s *Session) URL() string {
	return s.page.URL()
}

// ExpectURL waits until the session lands on the given URL, returning an
// error if the navigation does not complete within the navigation timeout
func (s *Session) ExpectURL(url string) error {
	if err := s.page.WaitForURL(url, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(float64(s.cfg.NavigationTimeout.Milliseconds())),
	}); err != nil {
		return fmt.Errorf("expected URL %s, still on %s: %w", url, s.page.URL(), err)
	}
	return nil
}

// ExpectPath waits until the session lands on the given application path
func (s *Session) ExpectPath(path string) error {
	return s.ExpectURL(s.cfg.URL(path))
}

// Close tears down the browser context. Safe to call more than once and
// intended to run in test cleanup regardless of the test outcome.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.context.Close(); err != nil {
		return fmt.Errorf("failed to close browser context: %w", err)
	}
	return nil
}
