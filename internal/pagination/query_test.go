package pagination

import (
	"net/url"
	"testing"
)

func TestPageFromQuery(t *testing.T) {
	cases := map[string]int{
		"":          1,
		"page=4":    4,
		"page=0":    0,
		"page=-3":   -3,
		"page=abc":  1,
		"page= 7 ":  7,
		"other=9":   1,
		"page=2.5":  1,
		"page=3&x=": 3,
	}
	for raw, want := range cases {
		q, err := url.ParseQuery(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got := PageFromQuery(q, ""); got != want {
			t.Fatalf("PageFromQuery(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestPageSizeFromQuery(t *testing.T) {
	cases := map[string]int{
		"":              10,
		"page_size=20":  20,
		"page_size=30":  30,
		"page_size=25":  10,
		"page_size=0":   10,
		"page_size=x":   10,
		"page_size=100": 10,
	}
	for raw, want := range cases {
		q, _ := url.ParseQuery(raw)
		if got := PageSizeFromQuery(q, 10); got != want {
			t.Fatalf("PageSizeFromQuery(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestWithPageKeepsOtherParams(t *testing.T) {
	u, err := url.Parse("/api/products?q=brake+pad&page=2&page_size=20")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := WithPage(u, 5)
	want := "/api/products?page=5&page_size=20&q=brake+pad"
	if got != want {
		t.Fatalf("WithPage = %q, want %q", got, want)
	}
	if u.Query().Get("page") != "2" {
		t.Fatalf("WithPage must not mutate its input")
	}
}
