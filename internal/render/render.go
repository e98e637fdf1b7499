// Package render prints command results as text, JSON or YAML.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, s)
	}
}

// Texter is implemented by results that have a human-readable form.
// Results that do not implement it are printed with %v.
type Texter interface {
	Text() string
}

type Renderer struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Render writes one result followed by a newline.
func (r *Renderer) Render(v any) error {
	switch r.format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		_, err = fmt.Fprintf(r.w, "%s\n", b)
		return err
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		_, err = r.w.Write(b)
		return err
	default:
		if t, ok := v.(Texter); ok {
			_, err := fmt.Fprintln(r.w, t.Text())
			return err
		}
		_, err := fmt.Fprintf(r.w, "%v\n", v)
		return err
	}
}

// Section prints a demo header in text mode and nothing otherwise, so that
// JSON and YAML output stay machine-readable.
func (r *Renderer) Section(title string) error {
	if r.format != FormatText {
		return nil
	}
	_, err := fmt.Fprintf(r.w, "\n━━━ %s ━━━\n", title)
	return err
}
