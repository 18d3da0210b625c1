package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/padview/padview/internal/inspect"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	padStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	savedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))
)

// renderLayout formats one computed layout as a table: a row per field
// in laid-out order with the padding inserted before it, then totals.
func renderLayout(name string, policy inspect.Policy, fields []inspect.FieldSpec, res *inspect.Result) string {
	byName := make(map[string]inspect.FieldSpec, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", name, policy)))
	b.WriteByte('\n')
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-16s %8s %6s %6s %8s",
		"FIELD", "OFFSET", "SIZE", "ALIGN", "PADDING")))
	b.WriteByte('\n')

	cursor := 0
	for _, n := range res.FieldOrder {
		f := byName[n]
		offset := res.Offsets[n]
		pad := offset - cursor

		row := fmt.Sprintf("%-16s %8d %6d %6d %8d", n, offset, f.Size, f.Align, pad)
		if pad > 0 {
			row = padStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')

		cursor = offset + f.Size
	}

	if tail := res.TotalSize - cursor; tail > 0 {
		b.WriteString(padStyle.Render(fmt.Sprintf("%-16s %8s %6d", "(tail padding)", "", tail)))
		b.WriteByte('\n')
	}

	fmt.Fprintf(&b, "total %d bytes, %d padding", res.TotalSize, res.TotalPadding)
	return b.String()
}

// renderSavings summarizes what reordering buys for one record.
func renderSavings(declared, optimized *inspect.Result) string {
	saved := declared.TotalSize - optimized.TotalSize
	if saved == 0 {
		return "reordering saves nothing; declared order is already optimal"
	}
	return savedStyle.Render(fmt.Sprintf("reordering saves %d of %d bytes (%d -> %d)",
		saved, declared.TotalSize, declared.TotalSize, optimized.TotalSize))
}
