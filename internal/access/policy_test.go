package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyLookup(t *testing.T) {
	p := DefaultPolicy()

	cases := map[string]RouteKind{
		"/":                KindHome,
		"":                 KindHome,
		"/products":        KindProducts,
		"/products/":       KindProducts,
		"/products/12":     KindProducts,
		"/products?page=3": KindProducts,
		"/productsx":       KindHome,
		"/billings/7/pdf":  KindBilling,
		"/settings":        KindHome,
	}
	for path, want := range cases {
		r, ok := p.Lookup(path)
		require.True(t, ok, path)
		assert.Equal(t, want, r.Kind, path)
	}

	_, ok := NewPolicy(Route{Path: "/users"}).Lookup("/vendors")
	assert.False(t, ok)
}

func TestPolicyMenu(t *testing.T) {
	p := DefaultPolicy()

	paths := func(entries []MenuEntry) []string {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.Path)
		}
		return out
	}

	assert.Equal(t, []string{"/", "/products", "/garages", "/orders"}, paths(p.Menu(RoleSales)))
	assert.Equal(t, []string{"/", "/billings"}, paths(p.Menu(RoleFinance)))
	assert.Len(t, p.Menu(RoleAdmin), 7)
	assert.Equal(t, []string{"/"}, paths(p.Menu("")))

	menu := p.Menu(RoleFinance)
	assert.Equal(t, "Billing", menu[1].Label)
	assert.Equal(t, "receipt", menu[1].Icon)
	assert.Equal(t, 30, menu[1].PageSize)
}

func TestRouteAllows(t *testing.T) {
	r := Route{AllowedRoles: []Role{RoleAdmin, RoleSales}}
	assert.True(t, r.Allows("sales_user"))
	assert.True(t, r.Allows(" Admin_User "))
	assert.False(t, r.Allows("finance_user"))
	assert.False(t, r.Allows(""))
}

func TestKindInfoFallback(t *testing.T) {
	assert.Equal(t, KindHome.Info(), RouteKind(99).Info())
	assert.Equal(t, "Vendors", KindVendors.Info().Label)
}

func TestPolicyRoutesIsACopy(t *testing.T) {
	p := DefaultPolicy()
	routes := p.Routes()
	routes[0].Path = "/hijacked"
	r, _ := p.Lookup("/")
	assert.Equal(t, "/", r.Path)
}
