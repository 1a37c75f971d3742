package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"

	"goparts/internal/domain"
	"goparts/internal/domain/models"
	"goparts/internal/pagination"
	"goparts/internal/utils"
)

// ExportService renders one page of a collection as a PDF table.
type ExportService struct {
	Store     ResourceStore
	Logger    *zap.Logger
	RequestID string
	Now       func() time.Time
}

func (s ExportService) PageReport(ctx context.Context, resource domain.Resource, page, pageSize int) ([]byte, string, error) {
	if pageSize <= 0 {
		return nil, "", domain.ValidationError{Field: "page_size", Msg: "must be positive"}
	}
	rows, total, err := s.Store.ListPage(ctx, resource, page, pageSize)
	if err != nil {
		return nil, "", err
	}
	if page < 1 {
		page = 1
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	totalPages := pagination.NewWindow(page, total, pageSize, 0).TotalPages()

	pdf, err := buildPageReportPDF(resource, rows, page, totalPages, total, now)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.Logger, s.RequestID, "export", "page_report",
		fmt.Sprintf("resource=%s page=%d rows=%d", resource, page, len(rows)))

	filename := fmt.Sprintf("%s_page%d_%s.pdf", strings.ToUpper(string(resource)), page, utils.FileStamp(now))
	return pdf, filename, nil
}

var reportColumns = []struct {
	title string
	width float64
	align string
}{
	{"ID", 20, "R"},
	{"Name", 80, "L"},
	{"Status", 30, "L"},
	{"Amount", 30, "R"},
	{"Created", 30, "L"},
}

func buildPageReportPDF(resource domain.Resource, rows []models.Resource, page, totalPages, total int, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	title := "GoParts " + utils.TitleWord(string(resource))
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Page %d of %d, %d records", page, max(totalPages, 1), total))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated "+utils.FormatDateTime(now))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range reportColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, c.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(rows) == 0 {
		pdf.CellFormat(190, 7, "No records", "1", 1, "C", false, 0, "")
	}
	for _, r := range rows {
		cells := []string{
			strconv.FormatInt(r.ID, 10),
			utils.Truncate(utils.NormalizeSpace(r.Name), 40),
			utils.TitleWord(r.Status),
			utils.FormatOptionalCurrency(r.Amount),
			utils.FormatDisplayDate(r.CreatedAt),
		}
		for i, c := range reportColumns {
			pdf.CellFormat(c.width, 7, cells[i], "1", 0, c.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
