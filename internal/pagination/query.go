package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	PageKey     = "page"
	PageSizeKey = "page_size"
)

// AllowedPageSizes are the page lengths the list screens offer.
var AllowedPageSizes = []int{10, 20, 30}

// PageFromQuery reads ?page=N. Missing or non-numeric values mean page 1; 0 is kept as is.
func PageFromQuery(q url.Values, key string) int {
	if key == "" {
		key = PageKey
	}
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// PageSizeFromQuery accepts only AllowedPageSizes and otherwise returns def.
func PageSizeFromQuery(q url.Values, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(q.Get(PageSizeKey)))
	if err != nil {
		return def
	}
	for _, s := range AllowedPageSizes {
		if s == n {
			return n
		}
	}
	return def
}

// WithPage returns u's path and query with the page key set, other keys untouched.
func WithPage(u *url.URL, page int) string {
	cp := *u
	q := cp.Query()
	q.Set(PageKey, strconv.Itoa(page))
	cp.RawQuery = q.Encode()
	return cp.RequestURI()
}
