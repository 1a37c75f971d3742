package access

import (
	"strings"
)

// Role is an opaque role identifier carried in the session token.
type Role string

const (
	RoleAdmin   Role = "admin_user"
	RoleSales   Role = "sales_user"
	RoleFinance Role = "finance_user"
	RoleSupport Role = "support_user"
)

func normalizeRole(r Role) string {
	return strings.ToLower(strings.TrimSpace(string(r)))
}

// Decision is the outcome of one navigation check.
type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectRestricted
)

func (d Decision) String() string {
	switch d {
	case RedirectLogin:
		return "redirect_login"
	case RedirectRestricted:
		return "redirect_restricted"
	default:
		return "allow"
	}
}

// Redirect is the dashboard path a denied navigation is sent to.
func (d Decision) Redirect() string {
	switch d {
	case RedirectLogin:
		return "/login"
	case RedirectRestricted:
		return "/restricted"
	default:
		return ""
	}
}

// RouteKind tags a dashboard route. Presentation lives in kindTable, not on the route.
type RouteKind int

const (
	KindHome RouteKind = iota
	KindProducts
	KindGarages
	KindVendors
	KindUsers
	KindBilling
	KindOrders
)

// KindInfo is the static rendering data for one RouteKind.
type KindInfo struct {
	Label    string `json:"label"`
	Icon     string `json:"icon"`
	PageSize int    `json:"page_size"`
}

var kindTable = map[RouteKind]KindInfo{
	KindHome:     {Label: "Dashboard", Icon: "home", PageSize: 10},
	KindProducts: {Label: "Products", Icon: "package", PageSize: 20},
	KindGarages:  {Label: "Garages", Icon: "warehouse", PageSize: 20},
	KindVendors:  {Label: "Vendors", Icon: "truck", PageSize: 20},
	KindUsers:    {Label: "Users", Icon: "users", PageSize: 10},
	KindBilling:  {Label: "Billing", Icon: "receipt", PageSize: 30},
	KindOrders:   {Label: "Orders", Icon: "clipboard", PageSize: 30},
}

// Info returns the rendering entry for k; unknown kinds fall back to home.
func (k RouteKind) Info() KindInfo {
	if info, ok := kindTable[k]; ok {
		return info
	}
	return kindTable[KindHome]
}

// Route is one entry of the route policy. An empty AllowedRoles admits any valid session.
type Route struct {
	Path         string
	Kind         RouteKind
	AllowedRoles []Role
}

func (r Route) Allows(role Role) bool {
	want := normalizeRole(role)
	if want == "" {
		return false
	}
	for _, a := range r.AllowedRoles {
		if normalizeRole(a) == want {
			return true
		}
	}
	return false
}

// Policy is the ordered route table supplied by the router.
type Policy struct {
	routes []Route
}

func NewPolicy(routes ...Route) *Policy {
	cp := make([]Route, len(routes))
	copy(cp, routes)
	return &Policy{routes: cp}
}

// DefaultPolicy is the stock GoParts dashboard policy.
func DefaultPolicy() *Policy {
	return NewPolicy(
		Route{Path: "/", Kind: KindHome},
		Route{Path: "/products", Kind: KindProducts, AllowedRoles: []Role{RoleAdmin, RoleSales}},
		Route{Path: "/garages", Kind: KindGarages, AllowedRoles: []Role{RoleAdmin, RoleSales}},
		Route{Path: "/vendors", Kind: KindVendors, AllowedRoles: []Role{RoleAdmin}},
		Route{Path: "/users", Kind: KindUsers, AllowedRoles: []Role{RoleAdmin}},
		Route{Path: "/billings", Kind: KindBilling, AllowedRoles: []Role{RoleAdmin, RoleFinance}},
		Route{Path: "/orders", Kind: KindOrders, AllowedRoles: []Role{RoleAdmin, RoleSales, RoleSupport}},
	)
}

func (p *Policy) Routes() []Route {
	out := make([]Route, len(p.routes))
	copy(out, p.routes)
	return out
}

// Lookup finds the route with the longest path prefix of path, matched on whole segments.
func (p *Policy) Lookup(path string) (Route, bool) {
	path = cleanPath(path)
	best, bestLen, found := Route{}, -1, false
	for _, r := range p.routes {
		rp := cleanPath(r.Path)
		if !segmentPrefix(rp, path) {
			continue
		}
		if len(rp) > bestLen {
			best, bestLen, found = r, len(rp), true
		}
	}
	return best, found
}

// MenuEntry is one navigation item visible to a role.
type MenuEntry struct {
	Path string `json:"path"`
	KindInfo
}

// Menu lists the routes the role may open, in policy order.
func (p *Policy) Menu(role Role) []MenuEntry {
	out := []MenuEntry{}
	for _, r := range p.routes {
		if len(r.AllowedRoles) > 0 && !r.Allows(role) {
			continue
		}
		out = append(out, MenuEntry{Path: r.Path, KindInfo: r.Kind.Info()})
	}
	return out
}

func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = "/" + strings.Trim(p, "/")
	return p
}

func segmentPrefix(prefix, path string) bool {
	if prefix == "/" {
		return true
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
