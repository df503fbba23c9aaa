package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/weft/internal/ui/output"
	"go.trai.ch/weft/internal/ui/style"
)

// attrIndent prefixes attribute lines below the message.
const attrIndent = "  "

// PrettyHandler is a slog.Handler writing one colored block per record. Attributes
// follow the message on indented "key: value" lines, the layout error metadata uses.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or to stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}
	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	lines := make([]string, 0, 1+len(h.attrs)+r.NumAttrs())
	lines = append(lines, icon+r.Message)
	for _, attr := range h.attrs {
		lines = append(lines, attrLine(attr))
	}
	r.Attrs(func(attr slog.Attr) bool {
		lines = append(lines, attrLine(h.qualify(attr)))
		return true
	})

	styled := h.out.String(strings.Join(lines, "\n")).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.qualify(attr))
	}
	return &clone
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// qualify prefixes the key with the open groups. Attributes added before a group
// was opened keep their key.
func (h *PrettyHandler) qualify(attr slog.Attr) slog.Attr {
	if h.group != "" {
		attr.Key = h.group + "." + attr.Key
	}
	return attr
}

func attrLine(attr slog.Attr) string {
	return attrIndent + attr.Key + ": " + attr.Value.String()
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " ", style.Red
	case level >= slog.LevelWarn:
		return style.Warning + " ", style.Yellow
	default:
		return "", style.Slate
	}
}
