package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Handler is a slog.Handler writing FormatCompact or FormatJSON records.
// Attributes keep the order in which they were added.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	Level  slog.Leveler
	Output io.Writer
	// Colors overrides terminal detection when non-nil.
	Colors *bool
}

// NewHandler builds a Handler. A nil opts writes compact INFO records to stderr.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		mu:     &sync.Mutex{},
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if h.output == nil {
		h.output = os.Stderr
	}

	switch {
	case opts.Colors != nil:
		h.colors = *opts.Colors
	case h.format == FormatJSON:
		h.colors = false
	default:
		if f, ok := h.output.(*os.File); ok {
			h.colors = term.IsTerminal(int(f.Fd()))
		}
	}
	return h
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var line []byte
	var err error
	if h.format == FormatJSON {
		line, err = h.formatJSON(r)
	} else {
		line, err = h.formatCompact(r)
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.output.Write(line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), h.qualify(attrs)...)
	return &clone
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string{}, h.groups...), name)
	return &clone
}

// formatCompact renders "2006-01-02 15:04:05 LEVEL msg → {attrs}".
func (h *Handler) formatCompact(r slog.Record) ([]byte, error) {
	buf := make([]byte, 0, 256)
	buf = append(buf, r.Time.Format("2006-01-02 15:04:05")...)
	buf = append(buf, ' ')

	level := fmt.Sprintf("%5s", levelString(r.Level))
	if h.colors {
		c := levelColor(r.Level)
		c.EnableColor()
		level = c.Sprint(level)
	}
	buf = append(buf, level...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	if attrs := h.collect(r); len(attrs) > 0 {
		encoded, err := marshalAttrs(attrs)
		if err != nil {
			return nil, err
		}
		buf = append(buf, " → "...)
		buf = append(buf, encoded...)
	}
	return append(buf, '\n'), nil
}

func (h *Handler) formatJSON(r slog.Record) ([]byte, error) {
	attrs := []slog.Attr{
		slog.String("time", r.Time.Format("2006-01-02T15:04:05")),
		slog.String("level", levelString(r.Level)),
		slog.String("msg", r.Message),
	}
	attrs = append(attrs, h.collect(r)...)

	encoded, err := marshalAttrs(attrs)
	if err != nil {
		return nil, err
	}
	return append(encoded, '\n'), nil
}

func (h *Handler) collect(r slog.Record) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, h.qualify([]slog.Attr{a})...)
		return true
	})
	return attrs
}

// qualify prefixes keys with the active group names.
func (h *Handler) qualify(attrs []slog.Attr) []slog.Attr {
	if len(h.groups) == 0 {
		return attrs
	}
	prefix := ""
	for _, g := range h.groups {
		prefix += g + "."
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: prefix + a.Key, Value: a.Value}
	}
	return out
}

// marshalAttrs writes attrs as a JSON object in order. Later duplicates win
// but keep the first position.
func marshalAttrs(attrs []slog.Attr) ([]byte, error) {
	index := make(map[string]int, len(attrs))
	keys := make([]string, 0, len(attrs))
	values := make([]any, 0, len(attrs))
	for _, a := range attrs {
		v := attrValue(a.Value)
		if i, ok := index[a.Key]; ok {
			values[i] = v
			continue
		}
		index[a.Key] = len(keys)
		keys = append(keys, a.Key)
		values = append(values, v)
	}

	buf := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(values[i])
		if err != nil {
			val, _ = json.Marshal(fmt.Sprint(values[i]))
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

func attrValue(v slog.Value) any {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format("2006-01-02T15:04:05")
	default:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return v.Any()
	}
}

func levelColor(level slog.Level) *color.Color {
	switch {
	case level < slog.LevelDebug:
		return color.New(color.FgHiBlack)
	case level < slog.LevelInfo:
		return color.New(color.FgBlue)
	case level < slog.LevelWarn:
		return color.New(color.FgGreen)
	case level < slog.LevelError:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
