package cmdutil

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/charmbracelet/lipgloss"
	units "github.com/docker/go-units"
)

// Output is the envelope of every JSON response.
type Output struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FFAA00")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)

// Field is one key/value line of text output.
type Field struct {
	Key   string
	Value any
}

// Section is a titled group of fields.
type Section struct {
	Title  string
	Fields []Field
}

// WriteJSON writes data wrapped in a success envelope.
func WriteJSON(w io.Writer, data any) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Output{Status: "success", Data: data}); err != nil {
		return fmt.Errorf("encode JSON output: %w", err)
	}
	return nil
}

// WriteError reports err in the selected format and returns it.
func WriteError(w io.Writer, jsonMode bool, err error) error {
	if jsonMode {
		enc := sonic.ConfigStd.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(Output{Status: "error", Error: err.Error()})
		return err
	}
	_, _ = fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
	return err
}

// WriteSections renders a title followed by aligned key/value sections.
// Empty sections are skipped.
func WriteSections(w io.Writer, title string, sections ...Section) error {
	width := 0
	for _, s := range sections {
		for _, f := range s.Fields {
			width = max(width, len(f.Key))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for _, s := range sections {
		if len(s.Fields) == 0 {
			continue
		}
		if s.Title != "" {
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(s.Title))
			b.WriteString("\n")
		}
		for _, f := range s.Fields {
			b.WriteString(keyStyle.Width(width + 2).Render(f.Key))
			b.WriteString(FormatValue(f.Value))
			b.WriteString("\n")
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// FormatValue renders a field value for text output.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case string:
		if v == "" {
			return "-"
		}
		return v
	case bool:
		if v {
			return "yes"
		}
		return "no"
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return "-"
		}
		return strconv.Itoa(*v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return FormatTime(v)
	case time.Duration:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// FormatCount abbreviates large counters, e.g. 1500000 becomes "1.5M".
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	return units.CustomSize("%.4g%s", float64(n), 1000.0, []string{"", "k", "M", "B", "T"})
}

// FormatTime renders a timestamp with its age, e.g. "2023-01-01 12:00 (3 days ago)".
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	stamp := t.Local().Format("2006-01-02 15:04")
	d := time.Since(t)
	if d < 0 {
		return stamp
	}
	return fmt.Sprintf("%s (%s ago)", stamp, units.HumanDuration(d))
}
