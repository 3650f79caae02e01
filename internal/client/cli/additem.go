package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rewearapp/rewear/internal/client/catalog"
)

// AddItem stages a new listing in the local catalog. Item submission is
// not backend-integrated yet, so the listing is browsable for this
// session only.
func (a *App) AddItem(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		fmt.Fprintln(a.out, "A title is required.")
		return nil
	}
	category, err := getSimpleText(a.reader, "Category", a.out)
	if err != nil {
		return err
	}
	size, err := getSimpleText(a.reader, "Size", a.out)
	if err != nil {
		return err
	}
	condition, err := getSimpleText(a.reader, "Condition", a.out)
	if err != nil {
		return err
	}
	pointsStr, err := getSimpleText(a.reader, "Point price", a.out)
	if err != nil {
		return err
	}
	points, err := strconv.Atoi(pointsStr)
	if err != nil || points <= 0 {
		fmt.Fprintln(a.out, "Point price must be a positive number.")
		return nil
	}

	it := a.items.Add(catalog.Item{
		Title:     title,
		Category:  a.canonicalCategory(category),
		Size:      size,
		Condition: condition,
		Points:    points,
		Uploader:  a.state.CurrentUser().Name,
	})

	fmt.Fprintf(a.out, "Listed %q as item %s (%d points).\n", it.Title, it.ID, it.Points)
	return nil
}
