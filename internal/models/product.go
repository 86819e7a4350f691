package models

// Product is a read model for one inventory row, scraped from the rendered
// product list. Price keeps the display string including the currency symbol.
type Product struct {
	Name        string
	Description string
	Price       string
}
