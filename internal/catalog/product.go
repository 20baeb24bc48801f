// Package catalog holds the in-memory product catalog for a swapmeet
// session. The catalog is seeded at boot, grows through the sell form and
// shrinks through admin deletes; nothing in it survives the process.
package catalog

import "fmt"

// Product is a single marketplace listing.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Seller      string  `json:"seller"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Category    string  `json:"category"`
	Keywords    string  `json:"keywords,omitempty"`
}

// Image returns the product image URL, falling back to the deterministic
// placeholder when none was supplied.
func (p Product) Image() string {
	if p.ImageURL != "" {
		return p.ImageURL
	}
	return PlaceholderImage(p.ID)
}

// PlaceholderImage returns the deterministic placeholder image for an id.
// The same id always maps to the same image.
func PlaceholderImage(id string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", id)
}
