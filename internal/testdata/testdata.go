// Package testdata loads static test fixtures from a JSON file. The data
// maps semantic keys (e.g. "backpack") to the literal values the application
// under test renders, so test scenarios never hardcode display strings.
package testdata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sauceqa/swagtest/internal/models"
)

// User holds a username/password fixture
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TestData holds all fixtures for a test run. Loaded once, read-only.
type TestData struct {
	Products map[string]string              `json:"products"`
	Users    map[string]User                `json:"users"`
	Checkout map[string]models.CustomerInfo `json:"checkout"`
}

// Load reads test data from a JSON file
func Load(path string) (*TestData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file: %w", err)
	}

	var data TestData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse test data file %s: %w", path, err)
	}

	return &data, nil
}

// Product returns the display name for a semantic product key
func (d *TestData) Product(key string) (string, error) {
	name, ok := d.Products[key]
	if !ok {
		return "", fmt.Errorf("product %q not found in test data", key)
	}
	return name, nil
}

// UserCredentials returns the username and password for a user type
func (d *TestData) UserCredentials(userType string) (string, string, error) {
	user, ok := d.Users[userType]
	if !ok {
		return "", "", fmt.Errorf("user type %q not found in test data", userType)
	}
	return user.Username, user.Password, nil
}

// CustomerInfo returns a checkout form fixture by key
func (d *TestData) CustomerInfo(key string) (models.CustomerInfo, error) {
	info, ok := d.Checkout[key]
	if !ok {
		return models.CustomerInfo{}, fmt.Errorf("checkout fixture %q not found in test data", key)
	}
	return info, nil
}
