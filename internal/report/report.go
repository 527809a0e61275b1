package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/trainee"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Writer renders trainee reports as text tables.
type Writer struct {
	out     io.Writer
	heading *color.Color
	muted   *color.Color
}

// New returns a Writer for out. Colour is suppressed when noColor is set.
func New(out io.Writer, noColor bool) *Writer {
	w := &Writer{
		out:     out,
		heading: color.New(color.FgCyan, color.Bold),
		muted:   color.New(color.FgYellow),
	}
	if noColor {
		w.heading.DisableColor()
		w.muted.DisableColor()
	}
	return w
}

// Trainee writes the trainee's details and assessments, ages computed at now.
func (w *Writer) Trainee(t *trainee.Trainee, now time.Time) {
	w.heading.Fprintf(w.out, "%s <%s>\n", t.Name, t.Email)
	fmt.Fprintf(w.out, "ID:   %s\n", t.ID)
	fmt.Fprintf(w.out, "Born: %s (age %d)\n", t.DateOfBirth.Format(trainee.DateLayout), t.AgeAt(now))

	assessments := t.Assessments()
	if len(assessments) == 0 {
		w.muted.Fprintln(w.out, "No assessments recorded.")
		return
	}

	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"#", "Assessment", "Kind", "Score", "Weighted"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, a := range assessments {
		table.Append([]string{
			strconv.Itoa(i + 1),
			a.Name,
			string(a.Kind),
			formatScore(a.Score),
			formatScore(a.CalculateScore()),
		})
	}
	table.SetFooter([]string{"", "", "", "Average", formatScore(t.WeightedAverage())})
	table.Render()
}

// Trainees writes a summary line per trainee.
func (w *Writer) Trainees(list []*trainee.Trainee, now time.Time) {
	if len(list) == 0 {
		w.muted.Fprintln(w.out, "No trainees registered.")
		return
	}

	w.heading.Fprintln(w.out, "Trainees")
	table := tablewriter.NewWriter(w.out)
	table.SetHeader([]string{"ID", "Name", "Email", "Age", "Assessments", "Weighted Avg"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, t := range list {
		table.Append([]string{
			t.ID,
			t.Name,
			t.Email,
			strconv.Itoa(t.AgeAt(now)),
			strconv.Itoa(len(t.Assessments())),
			formatScore(t.WeightedAverage()),
		})
	}
	table.Render()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
