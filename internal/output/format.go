// Package output renders list entries, summaries and details for the shell
// and the terminal UI.
package output

import (
	"fmt"
	"io"
	"strings"

	"listdeck/internal/controller"
	"listdeck/internal/record"
)

// EmptyList is printed in place of an empty list.
const EmptyList = "no entries"

// EntryText renders one entry without its number.
//
//	student: NAME
//	cart:    NAME (xQ) - $TOTAL
//	task:    [x] TITLE - DESCRIPTION (Priority)
func EntryText(rec record.Record, currency string) string {
	switch r := rec.(type) {
	case record.Student:
		return normalizeTitle(r.Name)
	case record.CartItem:
		return fmt.Sprintf("%s (x%d) - %s", normalizeTitle(r.Name), r.Quantity, Money(currency, r.Total()))
	case record.Task:
		box := "[ ]"
		if r.Completed {
			box = "[x]"
		}
		text := box + " " + normalizeTitle(r.Title)
		if desc := strings.TrimSpace(r.Description); desc != "" {
			text += " - " + normalizeTitle(desc)
		}
		return fmt.Sprintf("%s (%s)", text, r.Priority)
	}
	return normalizeTitle(rec.Heading())
}

// FormatEntry writes "{N:>4}  TEXT\n" with a 1-based number.
func FormatEntry(w io.Writer, num int, rec record.Record, currency string) {
	fmt.Fprintf(w, "%4d  %s\n", num, EntryText(rec, currency))
}

// FormatList writes every entry numbered from 1, or EmptyList.
func FormatList(w io.Writer, entries []record.Record, currency string) {
	if len(entries) == 0 {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for i, rec := range entries {
		FormatEntry(w, i+1, rec, currency)
	}
}

// FormatDetail writes the cart item detail block.
func FormatDetail(w io.Writer, d controller.CartDetail, currency, dateFormat string) {
	fmt.Fprintf(w, "Item: %s\n", normalizeTitle(d.Name))
	fmt.Fprintf(w, "Quantity: %d\n", d.Quantity)
	fmt.Fprintf(w, "Unit Price: %s\n", Money(currency, d.UnitPrice))
	fmt.Fprintf(w, "Total: %s\n", Money(currency, d.Total))
	fmt.Fprintf(w, "Added: %s\n", d.AddedDate.Format(dateFormat))
}

// DetailText is FormatDetail as a string without the trailing newline.
func DetailText(d controller.CartDetail, currency, dateFormat string) string {
	var b strings.Builder
	FormatDetail(&b, d, currency, dateFormat)
	return strings.TrimSuffix(b.String(), "\n")
}

// FormatModeHeader writes the mode banner used above a listing.
func FormatModeHeader(w io.Writer, mode record.Mode) {
	fmt.Fprintln(w, ListSeparator)
	fmt.Fprintln(w, mode.String())
	fmt.Fprintln(w, ListSeparator)
}

// ListSeparator frames the mode banner.
const ListSeparator = "------------"

// Money renders an amount with two decimals.
func Money(currency string, v float64) string {
	return fmt.Sprintf("%s%.2f", currency, v)
}

// normalizeTitle flattens newlines and marks blank text as "(untitled)".
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
