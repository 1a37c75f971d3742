package pagination

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func pages(ns ...int) []Token {
	out := make([]Token, 0, len(ns))
	for _, n := range ns {
		switch n {
		case -1:
			out = append(out, JumpBack)
		case -2:
			out = append(out, JumpForward)
		default:
			out = append(out, PageToken(n))
		}
	}
	return out
}

const (
	jb = -1
	jf = -2
)

func TestComputePageTokens(t *testing.T) {
	cases := []struct {
		name string
		win  Window
		want []Token
	}{
		{"both spills", NewWindow(5, 95, 10, 1), pages(1, jb, 4, 5, 6, jf, 10)},
		{"no items", NewWindow(1, 0, 30, 1), pages()},
		{"single page", NewWindow(1, 3, 10, 1), pages(1)},
		{"fits without collapsing", NewWindow(4, 70, 10, 1), pages(1, 2, 3, 4, 5, 6, 7)},
		{"left spill only", NewWindow(9, 100, 10, 1), pages(1, jb, 6, 7, 8, 9, 10)},
		{"last page", NewWindow(10, 100, 10, 1), pages(1, jb, 6, 7, 8, 9, 10)},
		{"right spill only", NewWindow(2, 100, 10, 1), pages(1, 2, 3, 4, 5, jf, 10)},
		{"first page", NewWindow(1, 100, 10, 1), pages(1, 2, 3, 4, 5, jf, 10)},
		{"span zero", NewWindow(5, 100, 10, 0), pages(1, jb, 5, jf, 10)},
		{"span two", NewWindow(10, 200, 10, 2), pages(1, jb, 8, 9, 10, 11, 12, jf, 20)},
		{"page zero renders like page one", NewWindow(0, 100, 10, 1), pages(1, 2, 3, 4, 5, jf, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePageTokens(tc.win)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("tokens mismatch\n got %v\nwant %v", got, tc.want)
			}
		})
	}
}

func TestComputePageTokensProperties(t *testing.T) {
	for span := -1; span <= 3; span++ {
		for total := 0; total <= 420; total += 7 {
			for _, size := range []int{10, 20, 30} {
				w := NewWindow(1, total, size, span)
				totalPages := w.TotalPages()
				for cur := -2; cur <= totalPages+2; cur++ {
					w.CurrentPage = cur
					checkProperties(t, w, ComputePageTokens(w))
				}
			}
		}
	}
}

func checkProperties(t *testing.T, w Window, got []Token) {
	t.Helper()
	totalPages := w.TotalPages()
	if totalPages == 0 {
		if len(got) != 0 {
			t.Fatalf("%+v: expected no tokens, got %v", w, got)
		}
		return
	}
	if got[0] != PageToken(1) || got[len(got)-1] != PageToken(totalPages) {
		t.Fatalf("%+v: endpoints wrong: %v", w, got)
	}

	prev, backs, forwards := 0, 0, 0
	for i, tok := range got {
		switch tok.Kind {
		case KindJumpBack:
			backs++
			next := got[i+1]
			if !next.IsPage() || next.Page-prev < 2 {
				t.Fatalf("%+v: jump back hides nothing: %v", w, got)
			}
		case KindJumpForward:
			forwards++
			next := got[i+1]
			if !next.IsPage() || next.Page-prev < 2 {
				t.Fatalf("%+v: jump forward hides nothing: %v", w, got)
			}
		default:
			if tok.Page < 1 || tok.Page > totalPages {
				t.Fatalf("%+v: page %d out of bounds: %v", w, tok.Page, got)
			}
			if tok.Page <= prev {
				t.Fatalf("%+v: pages not increasing: %v", w, got)
			}
			prev = tok.Page
		}
	}
	if backs > 1 || forwards > 1 {
		t.Fatalf("%+v: duplicate jump markers: %v", w, got)
	}

	if totalPages <= 2*w.span()+5 {
		if backs+forwards != 0 || len(got) != totalPages {
			t.Fatalf("%+v: expected full range, got %v", w, got)
		}
	}
}

func TestNewWindowClampsSpan(t *testing.T) {
	if got := NewWindow(1, 10, 10, 7).NeighborSpan; got != 2 {
		t.Fatalf("span 7 should clamp to 2, got %d", got)
	}
	if got := NewWindow(1, 10, 10, -4).NeighborSpan; got != 0 {
		t.Fatalf("span -4 should clamp to 0, got %d", got)
	}
	// literal windows bypass NewWindow but still compute with a clamped span
	lit := Window{CurrentPage: 5, TotalItems: 100, PageSize: 10, NeighborSpan: 9}
	if !reflect.DeepEqual(ComputePageTokens(lit), ComputePageTokens(NewWindow(5, 100, 10, 2))) {
		t.Fatalf("literal window with span 9 should behave like span 2")
	}
}

func TestNewWindowNegativeTotal(t *testing.T) {
	w := NewWindow(1, -40, 10, 1)
	if w.TotalItems != 0 || w.TotalPages() != 0 {
		t.Fatalf("negative totals should coerce to zero, got %+v", w)
	}
}

func TestNewWindowRejectsPageSize(t *testing.T) {
	for _, size := range []int{0, -10} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("page size %d should panic", size)
				}
			}()
			NewWindow(1, 10, size, 1)
		}()
	}
}

func TestGoToPageClamps(t *testing.T) {
	w := NewWindow(5, 95, 10, 1)
	cases := map[int]int{
		-100:    0,
		0:       0,
		1:       1,
		7:       7,
		10:      10,
		11:      10,
		1000000: 10,
	}
	for requested, want := range cases {
		if got := GoToPage(requested, w); got != want {
			t.Fatalf("GoToPage(%d) = %d, want %d", requested, got, want)
		}
	}
	if got := GoToPage(3, NewWindow(1, 0, 30, 1)); got != 0 {
		t.Fatalf("empty collection should clamp to 0, got %d", got)
	}
}

func TestMoveLeftRight(t *testing.T) {
	if got := MoveLeft(NewWindow(1, 95, 10, 1)); got != 0 {
		t.Fatalf("MoveLeft from page 1 = %d, want 0", got)
	}
	if got := MoveLeft(NewWindow(8, 95, 10, 1)); got != 5 {
		t.Fatalf("MoveLeft from page 8 = %d, want 5", got)
	}
	if got := MoveRight(NewWindow(5, 95, 10, 1)); got != 8 {
		t.Fatalf("MoveRight from page 5 = %d, want 8", got)
	}
	if got := MoveRight(NewWindow(9, 95, 10, 1)); got != 10 {
		t.Fatalf("MoveRight from page 9 = %d, want 10", got)
	}
	if got := MoveRight(NewWindow(3, 300, 10, 2)); got != 8 {
		t.Fatalf("MoveRight span 2 from page 3 = %d, want 8", got)
	}
}

func TestHugeTotals(t *testing.T) {
	w := NewWindow(5, math.MaxInt, 10, 1)
	want := math.MaxInt/10 + 1
	if got := w.TotalPages(); got != want {
		t.Fatalf("TotalPages = %d, want %d", got, want)
	}
	if got := GoToPage(5, w); got != 5 {
		t.Fatalf("GoToPage(5) = %d", got)
	}
	if got := MoveRight(NewWindow(math.MaxInt, math.MaxInt, 1, 2)); got != math.MaxInt {
		t.Fatalf("MoveRight near the end = %d", got)
	}
	if got := MoveLeft(NewWindow(math.MinInt, 100, 10, 2)); got != 0 {
		t.Fatalf("MoveLeft from a huge negative page = %d", got)
	}

	toks := ComputePageTokens(w)
	if len(toks) == 0 || toks[len(toks)-1] != PageToken(want) {
		t.Fatalf("tokens should end on the last page, got %v", toks)
	}

	last := ComputePageTokens(NewWindow(math.MaxInt, math.MaxInt, 1, 2))
	expect := pages(1, jb, math.MaxInt-6, math.MaxInt-5, math.MaxInt-4, math.MaxInt-3, math.MaxInt-2, math.MaxInt-1, math.MaxInt)
	if !reflect.DeepEqual(last, expect) {
		t.Fatalf("tokens at the last page = %v, want %v", last, expect)
	}
}

func TestNavigatorNotifies(t *testing.T) {
	var seen []int
	n := Navigator{
		Window:        NewWindow(5, 95, 10, 1),
		OnPageChanged: func(p int) { seen = append(seen, p) },
	}
	n.GoTo(42)
	n.Left()
	n.Right()
	if want := []int{10, 2, 8}; !reflect.DeepEqual(seen, want) {
		t.Fatalf("notifications = %v, want %v", seen, want)
	}

	silent := Navigator{Window: NewWindow(1, 10, 10, 1)}
	if got := silent.GoTo(1); got != 1 {
		t.Fatalf("navigator without collaborator returned %d", got)
	}
}

func TestTokenJSON(t *testing.T) {
	raw, err := json.Marshal(pages(1, jb, 4, jf, 9))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"kind":"page","page":1},{"kind":"jump_back"},{"kind":"page","page":4},{"kind":"jump_forward"},{"kind":"page","page":9}]`
	if string(raw) != want {
		t.Fatalf("json = %s", raw)
	}
}
