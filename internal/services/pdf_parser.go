package services

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// headingScale is how much larger than body text a row must be to be
	// rendered as a markdown heading.
	headingScale      = 1.2
	maxPDFHeadingLen  = 60
	wordGapFontFactor = 0.15
)

// PDFParserService converts PDF résumés into markdown text for the pipeline.
type PDFParserService interface {
	ExtractMarkdown(filePath string) (*PDFContent, error)
}

type PDFContent struct {
	Markdown  string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractMarkdown rebuilds each page row by row. Rows set in a noticeably
// larger font become "## " headings; pages are separated by a blank line.
func (p *pdfParserService) ExtractMarkdown(filePath string) (*PDFContent, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("failed to stat PDF: %w", err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		var text string
		if rows, err := page.GetTextByRow(); err == nil {
			text = rowsToMarkdown(rows)
		}
		if text == "" {
			// Some encoders only expose plain text.
			plain, err := page.GetPlainText(nil)
			if err != nil {
				continue
			}
			text = trimLines(plain)
		}

		if text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &PDFContent{
		Markdown:  strings.Join(pages, "\n\n"),
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

func rowsToMarkdown(rows pdf.Rows) string {
	body := bodyFontSize(rows)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		line, size := rowText(row)
		if line == "" {
			continue
		}
		if body > 0 && size >= body*headingScale && len(line) <= maxPDFHeadingLen {
			line = "## " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// rowText joins the glyph runs of a row, inserting a space wherever the
// horizontal gap between runs is wider than a fraction of the font size.
func rowText(row *pdf.Row) (string, float64) {
	var (
		b       strings.Builder
		maxSize float64
		prevEnd = math.Inf(-1)
	)

	for _, t := range row.Content {
		if t.S == "" {
			continue
		}
		if b.Len() > 0 && t.X-prevEnd > t.FontSize*wordGapFontFactor && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(t.S, " ") {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		prevEnd = t.X + t.W
		maxSize = math.Max(maxSize, t.FontSize)
	}

	return strings.TrimSpace(b.String()), maxSize
}

// bodyFontSize is the font size carrying the most characters.
func bodyFontSize(rows pdf.Rows) float64 {
	counts := map[float64]int{}
	for _, row := range rows {
		for _, t := range row.Content {
			size := math.Round(t.FontSize*2) / 2
			counts[size] += len([]rune(strings.TrimSpace(t.S)))
		}
	}

	var body float64
	best := 0
	for size, n := range counts {
		if n > best || (n == best && size < body) {
			body, best = size, n
		}
	}
	return body
}

// trimLines strips trailing whitespace from every line and the page edges.
func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
