// Package report renders scoring results for terminal output.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	absa "github.com/jamesainslie/go-absa"
)

const labelWidth = 28

// Renderer formats reports as text, optionally styled for a terminal.
type Renderer struct {
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
}

// NewRenderer creates a Renderer. With color disabled all styles are plain.
func NewRenderer(color bool) *Renderer {
	r := &Renderer{
		header: lipgloss.NewStyle(),
		label:  lipgloss.NewStyle().Width(labelWidth),
		value:  lipgloss.NewStyle(),
	}
	if color {
		r.header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
		r.label = r.label.Foreground(lipgloss.Color("6"))
		r.value = lipgloss.NewStyle().Bold(true)
	}
	return r
}

// Aspect renders the seven-metric aspect-level report.
func (r *Renderer) Aspect(rep *absa.AspectReport) string {
	var b strings.Builder

	b.WriteString(r.header.Render("Aspect evaluation"))
	b.WriteByte('\n')

	r.row(&b, "Full match precision", rep.FullMatchPrecision)
	r.row(&b, "Full match recall", rep.FullMatchRecall)
	b.WriteByte('\n')
	r.row(&b, "Partial match ratio", rep.PartialMatchRatio)
	b.WriteByte('\n')
	r.row(&b, "Full category accuracy", rep.FullCategoryAccuracy)
	r.row(&b, "Partial category accuracy", rep.PartialCategoryAccuracy)
	b.WriteByte('\n')
	r.row(&b, "Full sentiment accuracy", rep.FullSentimentAccuracy)
	r.row(&b, "Partial sentiment accuracy", rep.PartialSentimentAccuracy)

	return b.String()
}

// Review renders the review-level report.
func (r *Renderer) Review(accuracy float64) string {
	var b strings.Builder
	r.row(&b, "Overall sentiment accuracy", accuracy)
	return b.String()
}

func (r *Renderer) row(b *strings.Builder, label string, v float64) {
	b.WriteString(r.label.Render(label + ":"))
	b.WriteByte(' ')
	b.WriteString(r.value.Render(fmt.Sprintf("%.6f", v)))
	b.WriteByte('\n')
}
