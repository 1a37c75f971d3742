package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"goparts/internal/domain"
	"goparts/internal/pagination"
)

type tokenLink struct {
	Kind string `json:"kind"`
	Page int    `json:"page,omitempty"`
	Href string `json:"href"`
}

type paginationResponse struct {
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalItems int         `json:"total_items"`
	TotalPages int         `json:"total_pages"`
	Tokens     []tokenLink `json:"tokens"`
}

// Pagination renders the page selector for arbitrary totals and applies one navigation
// action: goto (with requested), left or right.
func (h *Handlers) Pagination(c *gin.Context) {
	total, err := queryInt(c, "total", 0)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	pageSize, err := queryInt(c, pagination.PageSizeKey, 10)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if pageSize <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: pagination.PageSizeKey, Msg: "must be positive"})
		return
	}
	span, err := queryInt(c, "span", h.Neighbors)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page := pagination.PageFromQuery(c.Request.URL.Query(), pagination.PageKey)

	nav := pagination.Navigator{Window: pagination.NewWindow(page, total, pageSize, span)}
	switch action := strings.ToLower(strings.TrimSpace(c.Query("action"))); action {
	case "":
	case "goto":
		requested, err := queryInt(c, "requested", page)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		page = nav.GoTo(requested)
	case "left":
		page = nav.Left()
	case "right":
		page = nav.Right()
	default:
		RespondDomainError(c, domain.ValidationError{Field: "action", Msg: "unsupported action " + action})
		return
	}

	w := pagination.NewWindow(page, total, pageSize, span)
	base := withoutAction(c.Request.URL)
	tokens := pagination.ComputePageTokens(w)
	links := make([]tokenLink, 0, len(tokens))
	for _, t := range tokens {
		target := t.Page
		switch t.Kind {
		case pagination.KindJumpBack:
			target = pagination.MoveLeft(w)
		case pagination.KindJumpForward:
			target = pagination.MoveRight(w)
		}
		link := tokenLink{Kind: t.Kind.String(), Href: pagination.WithPage(base, target)}
		if t.IsPage() {
			link.Page = t.Page
		}
		links = append(links, link)
	}

	c.JSON(http.StatusOK, paginationResponse{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: w.TotalItems,
		TotalPages: w.TotalPages(),
		Tokens:     links,
	})
}

// withoutAction drops the one-shot navigation keys so links render the target page only.
func withoutAction(u *url.URL) *url.URL {
	cp := *u
	q := cp.Query()
	q.Del("action")
	q.Del("requested")
	cp.RawQuery = q.Encode()
	return &cp
}
