package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rewearapp/rewear/internal/client/catalog"
	"github.com/rewearapp/rewear/internal/client/models"
)

func TestApp_Browse_All(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Browse(context.Background(), nil))

	assert.Contains(t, out.String(), "Vintage Denim Jacket")
	assert.Contains(t, out.String(), "Winter Coat")
}

func TestApp_Browse_CategoryArgument(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Browse(context.Background(), []string{"outerwear"}))

	assert.Contains(t, out.String(), "Vintage Denim Jacket")
	assert.Contains(t, out.String(), "Winter Coat")
	assert.NotContains(t, out.String(), "Yoga Pants")
}

func TestApp_Browse_CategoryAndSearch(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Browse(context.Background(), []string{"Tops", "silk"}))

	assert.Contains(t, out.String(), "Silk Blouse")
	assert.NotContains(t, out.String(), "Classic White T-Shirt")
}

func TestApp_Browse_NoMatches(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Browse(context.Background(), []string{"parka"}))

	assert.Contains(t, out.String(), "No items found.")
}

func TestApp_Featured(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Featured(context.Background()))

	assert.Contains(t, out.String(), "Featured items:")
	assert.Contains(t, out.String(), "Vintage Denim Jacket")
	assert.Contains(t, out.String(), "Classic White T-Shirt")
	assert.NotContains(t, out.String(), "Winter Coat", "only the landing subset is shown")
}

func TestApp_Featured_EmptyCatalog(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})
	a.items = catalog.New(nil)

	require.NoError(t, a.Featured(context.Background()))

	assert.Empty(t, out.String())
}

func TestApp_AddItem_RequiresLogin(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.AddItem(context.Background()))

	assert.Contains(t, out.String(), "Please log in first.")
}

func TestApp_AddItem_StagesListing(t *testing.T) {
	auth := &stubAuthService{loginUser: testRemoteUser(models.RoleUser)}
	a, out := newTestApp(t, auth, &stubAdminService{})
	stubInputs(t, []string{"sarah@example.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))
	out.Reset()

	stubInputs(t, []string{"Corduroy Blazer", "outerwear", "M", "Good", "32"}, "")
	require.NoError(t, a.AddItem(context.Background()))

	assert.Contains(t, out.String(), `Listed "Corduroy Blazer" as item 10 (32 points).`)

	it, ok := a.items.Get("10")
	require.True(t, ok)
	assert.Equal(t, "Outerwear", it.Category, "category input is canonicalized")
	assert.Equal(t, "Sarah Miller", it.Uploader)

	out.Reset()
	require.NoError(t, a.Show(context.Background(), []string{"10"}))
	assert.Contains(t, out.String(), "Corduroy Blazer (Outerwear)")
}

func TestApp_AddItem_RejectsBadPointPrice(t *testing.T) {
	auth := &stubAuthService{loginUser: testRemoteUser(models.RoleUser)}
	a, out := newTestApp(t, auth, &stubAdminService{})
	stubInputs(t, []string{"sarah@example.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))
	out.Reset()

	stubInputs(t, []string{"Corduroy Blazer", "Outerwear", "M", "Good", "free"}, "")
	require.NoError(t, a.AddItem(context.Background()))

	assert.Contains(t, out.String(), "Point price must be a positive number.")
	_, ok := a.items.Get("10")
	assert.False(t, ok)
}

func TestApp_Show_SignedOut(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Show(context.Background(), []string{"9"}))

	assert.Contains(t, out.String(), "Winter Coat (Outerwear)")
	assert.Contains(t, out.String(), "Sign in to request a swap or redeem.")
}

func TestApp_Show_AffordabilityMessages(t *testing.T) {
	auth := &stubAuthService{loginUser: testRemoteUser(models.RoleUser)}
	a, out := newTestApp(t, auth, &stubAdminService{})
	stubInputs(t, []string{"sarah@example.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))
	out.Reset()

	// 50 points against a 150-point balance
	require.NoError(t, a.Show(context.Background(), []string{"9"}))
	assert.Contains(t, out.String(), "You can redeem this item (150 points available).")
}

func TestApp_Show_InsufficientBalance(t *testing.T) {
	auth := &stubAuthService{loginUser: testRemoteUser(models.RoleUser)}
	a, out := newTestApp(t, auth, &stubAdminService{})
	stubInputs(t, []string{"sarah@example.com"}, "pw")
	require.NoError(t, a.Login(context.Background()))
	out.Reset()

	a.items = catalog.New([]catalog.Item{
		{ID: "x1", Title: "Couture Gown", Category: "Dresses", Size: "S", Condition: "Excellent", Points: 300, Uploader: "Vera N."},
	})

	require.NoError(t, a.Show(context.Background(), []string{"x1"}))
	assert.Contains(t, out.String(), "You need 300 points to redeem this item. You currently have 150 points.")
}

func TestApp_Show_UnknownItem(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Show(context.Background(), []string{"99"}))

	assert.Contains(t, out.String(), "Item not found: 99")
}

func TestApp_Show_Usage(t *testing.T) {
	a, out := newTestApp(t, &stubAuthService{}, &stubAdminService{})

	require.NoError(t, a.Show(context.Background(), nil))

	assert.Contains(t, out.String(), "Usage: show <item-id>")
}
