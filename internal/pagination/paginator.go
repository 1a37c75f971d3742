package pagination

import (
	"encoding/json"
	"math"
)

// MaxNeighborSpan is the widest run of sibling pages rendered around the current page.
const MaxNeighborSpan = 2

// Window describes one pagination render. It is rebuilt from query state on every request.
type Window struct {
	CurrentPage  int
	TotalItems   int
	PageSize     int
	NeighborSpan int
}

// NewWindow normalizes the inputs. pageSize <= 0 is a caller bug and panics.
func NewWindow(currentPage, totalItems, pageSize, neighborSpan int) Window {
	if pageSize <= 0 {
		panic("pagination: page size must be positive")
	}
	if totalItems < 0 {
		totalItems = 0
	}
	return Window{
		CurrentPage:  currentPage,
		TotalItems:   totalItems,
		PageSize:     pageSize,
		NeighborSpan: clampSpan(neighborSpan),
	}
}

// TotalPages is ceil(TotalItems / PageSize), 0 when there are no items.
func (w Window) TotalPages() int {
	if w.PageSize <= 0 {
		panic("pagination: page size must be positive")
	}
	if w.TotalItems <= 0 {
		return 0
	}
	pages := w.TotalItems / w.PageSize
	if w.TotalItems%w.PageSize != 0 {
		pages++
	}
	return pages
}

func (w Window) span() int {
	return clampSpan(w.NeighborSpan)
}

func clampSpan(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxNeighborSpan {
		return MaxNeighborSpan
	}
	return n
}

// TokenKind tags a Token.
type TokenKind int

const (
	KindPage TokenKind = iota
	KindJumpBack
	KindJumpForward
)

func (k TokenKind) String() string {
	switch k {
	case KindJumpBack:
		return "jump_back"
	case KindJumpForward:
		return "jump_forward"
	default:
		return "page"
	}
}

// Token is one rendered page selector.
type Token struct {
	Kind TokenKind
	Page int
}

var (
	JumpBack    = Token{Kind: KindJumpBack}
	JumpForward = Token{Kind: KindJumpForward}
)

// PageToken returns a concrete page selector.
func PageToken(n int) Token {
	return Token{Kind: KindPage, Page: n}
}

// IsPage reports whether t is a concrete page number.
func (t Token) IsPage() bool { return t.Kind == KindPage }

func (t Token) MarshalJSON() ([]byte, error) {
	if t.Kind == KindPage {
		return json.Marshal(struct {
			Kind string `json:"kind"`
			Page int    `json:"page"`
		}{t.Kind.String(), t.Page})
	}
	return json.Marshal(struct {
		Kind string `json:"kind"`
	}{t.Kind.String()})
}

// ComputePageTokens builds the ordered selector list for w. When the page count is small
// enough every page is listed; otherwise the runs away from the current page collapse into
// JumpBack / JumpForward markers. Zero items produce no tokens at all.
func ComputePageTokens(w Window) []Token {
	totalPages := w.TotalPages()
	span := w.span()

	totalNumbers := 2*span + 3
	totalBlocks := totalNumbers + 2

	if totalPages <= totalBlocks {
		return pageRange(1, totalPages)
	}

	// page 0 and overshoot are navigable but render as the nearest real page
	current := max(1, min(w.CurrentPage, totalPages))

	startPage := max(2, current-span)
	endPage := totalPages - 1
	if current < endPage-span {
		endPage = current + span
	}

	hasLeftSpill := startPage > 2
	hasRightSpill := totalPages-endPage > 1

	middle := pageRange(startPage, endPage)
	spillOffset := totalNumbers - (len(middle) + 1)

	var built []Token
	switch {
	case hasLeftSpill && !hasRightSpill:
		built = append(built, JumpBack)
		built = append(built, pageRange(startPage-spillOffset, startPage-1)...)
		built = append(built, middle...)
	case !hasLeftSpill && hasRightSpill:
		built = append(built, middle...)
		built = append(built, pageRange(endPage+1, endPage+spillOffset)...)
		built = append(built, JumpForward)
	default:
		built = append(built, JumpBack)
		built = append(built, middle...)
		built = append(built, JumpForward)
	}

	out := make([]Token, 0, len(built)+2)
	out = append(out, PageToken(1))
	out = append(out, built...)
	out = append(out, PageToken(totalPages))
	return out
}

// GoToPage clamps requested into [0, TotalPages]. Page 0 stays reachable.
func GoToPage(requested int, w Window) int {
	return max(0, min(requested, w.TotalPages()))
}

// MoveLeft jumps back by one full block of neighbor pages.
func MoveLeft(w Window) int {
	step := w.span()*2 + 1
	if w.CurrentPage < step {
		return 0
	}
	return GoToPage(w.CurrentPage-step, w)
}

// MoveRight jumps forward by one full block of neighbor pages.
func MoveRight(w Window) int {
	step := w.span()*2 + 1
	if w.CurrentPage > math.MaxInt-step {
		return GoToPage(math.MaxInt, w)
	}
	return GoToPage(w.CurrentPage+step, w)
}

// pageRange returns [from..to] inclusive, empty when from > to.
func pageRange(from, to int) []Token {
	if from > to {
		return []Token{}
	}
	out := make([]Token, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, PageToken(i))
	}
	return out
}
