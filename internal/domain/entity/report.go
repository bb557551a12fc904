package entity

import (
	"strings"
	"time"
)

// Layouts used across reports
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	isoLayout      = "2006-01-02T15:04:05"
)

// Field is one labelled line of a report
type Field struct {
	Label string
	Value string
}

// Report is the text result of a calculator operation
type Report struct {
	Title   string
	Preface []string
	Fields  []Field
	Notes   []string
}

// NewReport starts a report with the given title
func NewReport(title string) *Report {
	return &Report{Title: title}
}

// Add appends a labelled field and returns the report for chaining
func (r *Report) Add(label, value string) *Report {
	r.Fields = append(r.Fields, Field{Label: label, Value: value})
	return r
}

// Prefix adds a paragraph printed between the title and the fields
func (r *Report) Prefix(line string) *Report {
	r.Preface = append(r.Preface, line)
	return r
}

// Note adds a paragraph printed after the fields
func (r *Report) Note(line string) *Report {
	r.Notes = append(r.Notes, line)
	return r
}

// String renders the report as markdown-flavoured text
func (r *Report) String() string {
	var b strings.Builder
	b.WriteString("**" + r.Title + ":**\n\n")
	for _, p := range r.Preface {
		b.WriteString(p + "\n\n")
	}
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• **" + f.Label + ":** " + f.Value)
	}
	for _, n := range r.Notes {
		b.WriteString("\n\n" + n)
	}
	return b.String()
}

// FormatDateTime renders t as "2006-01-02 15:04:05"
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// FormatISO renders t as "2006-01-02T15:04:05", adding microseconds only when nonzero
func FormatISO(t time.Time) string {
	if t.Nanosecond()/1000 != 0 {
		return t.Format(isoLayout + ".000000")
	}
	return t.Format(isoLayout)
}
