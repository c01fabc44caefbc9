package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mcncl/gopointer/internal/models"
	"github.com/tidwall/pretty"
)

// Options controls how values are rendered
type Options struct {
	// Pretty enables indentation. When false the output is compact.
	Pretty   bool
	Indent   string
	Prefix   string
	Width    int
	SortKeys bool
}

// DefaultOptions returns pretty printing with two space indentation
func DefaultOptions() Options {
	return Options{
		Pretty: true,
		Indent: "  ",
		Width:  80,
	}
}

// Formatter renders model values as JSON text
type Formatter struct {
	opts Options
}

// NewFormatter creates a new Formatter with the default options
func NewFormatter() *Formatter {
	return &Formatter{opts: DefaultOptions()}
}

// NewFormatterWithOptions creates a new Formatter with the given options
func NewFormatterWithOptions(opts Options) *Formatter {
	return &Formatter{opts: opts}
}

// Format renders v. Object members keep their insertion order unless
// SortKeys is set. The result always ends with a newline.
func (f *Formatter) Format(v models.JSONValue) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, v); err != nil {
		return nil, err
	}

	if !f.opts.Pretty {
		out := buf.Bytes()
		if f.opts.SortKeys {
			// pretty only sorts while indenting, so indent and then strip.
			out = pretty.Ugly(pretty.PrettyOptions(out, &pretty.Options{SortKeys: true}))
		}
		return append(out, '\n'), nil
	}

	return pretty.PrettyOptions(buf.Bytes(), &pretty.Options{
		Width:    f.opts.Width,
		Prefix:   f.opts.Prefix,
		Indent:   f.opts.Indent,
		SortKeys: f.opts.SortKeys,
	}), nil
}

// FormatString is Format returning a string without the trailing newline
func (f *Formatter) FormatString(v models.JSONValue) (string, error) {
	out, err := f.Format(v)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(out, "\n")), nil
}

func encode(buf *bytes.Buffer, v models.JSONValue) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		if !isValidNumber(val) {
			return fmt.Errorf("invalid number literal %q", string(val))
		}
		buf.WriteString(string(val))
	case string:
		return encodeString(buf, val)
	case *models.JSONArray:
		buf.WriteByte('[')
		for i, item := range val.Items() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encode(buf, item); err != nil {
				return fmt.Errorf("index %d: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case *models.JSONObject:
		buf.WriteByte('{')
		for i, key := range val.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			member, _ := val.Get(key)
			if err := encode(buf, member); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
	return nil
}

// encodeString writes s as a JSON string without HTML escaping
func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}

func isValidNumber(n json.Number) bool {
	var f float64
	return n != "" && json.Unmarshal([]byte(n), &f) == nil
}
