// Package export renders the active list as a JSON, CSV or PDF snapshot.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"listdeck/internal/controller"
	"listdeck/internal/output"
	"listdeck/internal/record"
)

// Formats lists the accepted format names.
var Formats = []string{"json", "csv", "pdf"}

// Exporter renders the controller's active list.
type Exporter struct {
	ctl      *controller.Controller
	fontPath string
}

func NewExporter(ctl *controller.Controller) *Exporter { return &Exporter{ctl: ctl} }

// WithFont makes PDF output embed the TrueType font at path. An empty
// path keeps the built-in font.
func (e *Exporter) WithFont(path string) *Exporter {
	e.fontPath = path
	return e
}

type snapshot struct {
	Mode    string `json:"mode"`
	Summary string `json:"summary"`
	Entries []any  `json:"entries"`
}

type studentRow struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Added time.Time `json:"added"`
}

type cartRow struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Total    float64   `json:"total"`
	Added    time.Time `json:"added"`
}

type taskRow struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
}

// Export renders the active list in format (json, csv or pdf).
func (e *Exporter) Export(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json":
		return e.json()
	case "csv":
		return e.csv()
	case "pdf":
		return e.pdf()
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func (e *Exporter) json() ([]byte, error) {
	snap := snapshot{
		Mode:    e.ctl.Mode().Key(),
		Summary: e.ctl.Summary(),
		Entries: []any{},
	}
	for _, rec := range e.ctl.Entries() {
		switch r := rec.(type) {
		case record.Student:
			snap.Entries = append(snap.Entries, studentRow{ID: r.ID, Name: r.Name, Added: r.AddedDate})
		case record.CartItem:
			snap.Entries = append(snap.Entries, cartRow{
				ID: r.ID, Name: r.Name, Quantity: r.Quantity, Price: r.Price, Total: r.Total(), Added: r.AddedDate,
			})
		case record.Task:
			snap.Entries = append(snap.Entries, taskRow{
				Title: r.Title, Description: r.Description, Completed: r.Completed, Priority: r.Priority.String(),
			})
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (e *Exporter) csv() ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)

	switch e.ctl.Mode() {
	case record.ModeStudents:
		_ = w.Write([]string{"id", "name", "added"})
	case record.ModeCart:
		_ = w.Write([]string{"id", "name", "quantity", "price", "total", "added"})
	case record.ModeTasks:
		_ = w.Write([]string{"title", "description", "completed", "priority"})
	}

	for _, rec := range e.ctl.Entries() {
		switch r := rec.(type) {
		case record.Student:
			_ = w.Write([]string{r.ID, r.Name, r.AddedDate.Format(time.RFC3339)})
		case record.CartItem:
			_ = w.Write([]string{
				r.ID, r.Name, strconv.Itoa(r.Quantity),
				fmt.Sprintf("%.2f", r.Price), fmt.Sprintf("%.2f", r.Total()),
				r.AddedDate.Format(time.RFC3339),
			})
		case record.Task:
			_ = w.Write([]string{r.Title, r.Description, strconv.FormatBool(r.Completed), r.Priority.String()})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func (e *Exporter) pdf() ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	family, bold, italic := "Arial", "B", "I"
	tr := cp1252
	if e.fontPath != "" {
		// UTF-8 fonts are registered per style; only the regular one is loaded.
		pdf.AddUTF8Font("body", "", e.fontPath)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("load font %s: %w", e.fontPath, err)
		}
		family, bold, italic = "body", "", ""
		tr = func(s string) string { return s }
	}
	pdf.AddPage()

	pdf.SetFont(family, bold, 14)
	pdf.Cell(40, 10, tr(e.ctl.Mode().String()))
	pdf.Ln(12)

	pdf.SetFont(family, "", 10)
	entries := e.ctl.Entries()
	if len(entries) == 0 {
		pdf.MultiCell(0, 6, tr(output.EmptyList), "0", "L", false)
	}
	for i, rec := range entries {
		line := fmt.Sprintf("%d. %s", i+1, output.EntryText(rec, e.ctl.Currency()))
		pdf.MultiCell(0, 6, tr(line), "0", "L", false)
	}

	pdf.Ln(4)
	pdf.SetFont(family, italic, 10)
	pdf.MultiCell(0, 6, tr(e.ctl.Summary()), "0", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cp1252 encodes s for the built-in PDF fonts. Runes outside Windows-1252
// become '?'.
func cp1252(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			c = '?'
		}
		b.WriteByte(c)
	}
	return b.String()
}
