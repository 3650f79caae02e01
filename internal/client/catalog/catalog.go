// Package catalog provides the browsable garment listing. Items are an
// in-memory fixture set for now — the listing and redemption flows are
// not backend-integrated yet, only the account subsystem is.
package catalog

import (
	"strconv"
	"strings"
)

// Item is one listed garment.
type Item struct {
	ID        string
	Title     string
	Category  string
	Size      string
	Condition string
	// Points is the redemption price, unrelated to the account's
	// placeholder balance.
	Points   int
	Image    string
	Uploader string
}

// Affordable reports whether a balance covers the item's price.
func (i Item) Affordable(balance int) bool {
	return balance >= i.Points
}

// Catalog is an in-memory item collection. It is not safe for
// concurrent mutation; all writes happen on the REPL goroutine.
type Catalog struct {
	items []Item
}

// New builds a catalog over the given items. The slice is not copied;
// callers must not mutate it afterwards.
func New(items []Item) *Catalog {
	return &Catalog{items: items}
}

// Default returns the stock catalog.
func Default() *Catalog {
	return New(defaultItems)
}

// Add appends a staged listing, assigning it the next id, and returns
// the item as stored.
func (c *Catalog) Add(it Item) Item {
	it.ID = strconv.Itoa(len(c.items) + 1)
	c.items = append(c.items, it)
	return it
}

// All returns every item in listing order.
func (c *Catalog) All() []Item {
	return c.items
}

// Get looks an item up by id.
func (c *Catalog) Get(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// CategoryAll is the category filter wildcard.
const CategoryAll = "All Categories"

// Categories returns the fixed category list, wildcard first.
func (c *Catalog) Categories() []string {
	return []string{
		CategoryAll,
		"Tops",
		"Bottoms",
		"Dresses",
		"Outerwear",
		"Shoes",
		"Accessories",
		"Activewear",
		"Sleepwear",
	}
}

// Filter returns items whose title contains query (case-insensitive)
// and whose category matches. Empty query matches everything, as does
// the CategoryAll wildcard or an empty category.
func (c *Catalog) Filter(query, category string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []Item
	for _, it := range c.items {
		if query != "" && !strings.Contains(strings.ToLower(it.Title), query) {
			continue
		}
		if category != "" && category != CategoryAll && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Featured returns the first n items for the landing view, clamped to
// the listing bounds.
func (c *Catalog) Featured(n int) []Item {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return c.items[:n]
}
