package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rewearapp/rewear/internal/client/catalog"
)

// Browse lists catalog items: "browse [category] [search terms...]".
// The first argument is matched against the known categories; anything
// else becomes part of the title search.
func (a *App) Browse(ctx context.Context, args []string) error {
	category := ""
	var terms []string

	for i, arg := range args {
		if i == 0 && a.isCategory(arg) {
			category = a.canonicalCategory(arg)
			continue
		}
		terms = append(terms, arg)
	}

	items := a.items.Filter(strings.Join(terms, " "), category)
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items found.")
		return nil
	}

	for _, it := range items {
		fmt.Fprintf(a.out, "%s  %-24s %-12s size %-8s %-10s %d pts  (%s)\n",
			it.ID, it.Title, it.Category, it.Size, it.Condition, it.Points, it.Uploader)
	}
	return nil
}

// Featured prints the landing subset of the catalog. Shown on startup
// and via the "featured" command.
func (a *App) Featured(ctx context.Context) error {
	items := a.items.Featured(4)
	if len(items) == 0 {
		return nil
	}

	fmt.Fprintln(a.out, "Featured items:")
	for _, it := range items {
		fmt.Fprintf(a.out, "  %s  %-24s %-12s %d pts\n", it.ID, it.Title, it.Category, it.Points)
	}
	return nil
}

func (a *App) isCategory(s string) bool {
	for _, c := range a.items.Categories() {
		if strings.EqualFold(c, s) {
			return true
		}
	}
	return false
}

func (a *App) canonicalCategory(s string) string {
	for _, c := range a.items.Categories() {
		if strings.EqualFold(c, s) {
			return c
		}
	}
	return s
}

// Show prints one item's details: "show <id>". For a signed-in user it
// also reports whether the placeholder balance covers the item.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <item-id>")
		return nil
	}

	it, ok := a.items.Get(args[0])
	if !ok {
		fmt.Fprintln(a.out, "Item not found:", args[0])
		return nil
	}

	a.printItem(it)
	return nil
}

func (a *App) printItem(it catalog.Item) {
	fmt.Fprintf(a.out, "%s (%s)\n", it.Title, it.Category)
	fmt.Fprintf(a.out, "  size %s, condition %s\n", it.Size, it.Condition)
	fmt.Fprintf(a.out, "  %d points, listed by %s\n", it.Points, it.Uploader)
	fmt.Fprintf(a.out, "  %s\n", it.Image)

	u := a.state.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "  Sign in to request a swap or redeem.")
		return
	}
	if it.Affordable(u.Points) {
		fmt.Fprintf(a.out, "  You can redeem this item (%d points available).\n", u.Points)
	} else {
		fmt.Fprintf(a.out, "  You need %d points to redeem this item. You currently have %d points.\n", it.Points, u.Points)
	}
}
