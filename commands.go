package main

import (
	"fmt"
	"strings"

	"github.com/mcncl/gopointer/internal/errors"
	"github.com/mcncl/gopointer/internal/formatter"
	"github.com/mcncl/gopointer/internal/models"
	"github.com/mcncl/gopointer/internal/parser"
	"github.com/mcncl/gopointer/internal/pointer"
)

// GetCmd prints the value at a pointer
type GetCmd struct {
	Pointer string `arg:"" optional:"" help:"JSON Pointer, e.g. /foo/0. Empty selects the whole document."`
}

// Run executes the get command
func (g *GetCmd) Run(ctx *Context) error {
	doc, err := ctx.readDocument()
	if err != nil {
		return err
	}

	v, err := pointer.Get(doc, g.Pointer)
	if err != nil {
		return errors.NewPointerError(fmt.Sprintf("failed to resolve '%s'", g.Pointer), err)
	}
	ctx.Log.Debug().Str("pointer", g.Pointer).Str("type", models.TypeName(v)).Msg("resolved pointer")

	return ctx.writeValue(v, "")
}

// SetCmd writes a value at a pointer
type SetCmd struct {
	Pointer string `arg:"" help:"JSON Pointer to write, e.g. /foo/- to append to the array at /foo."`
	Value   string `arg:"" help:"JSON value to write."`
	Raw     bool   `help:"Store the value as a string when it is not valid JSON." short:"r"`
	Output  string `help:"Path to output JSON file. If not specified, writes to stdout." short:"o" type:"path"`
}

// Run executes the set command
func (s *SetCmd) Run(ctx *Context) error {
	doc, err := ctx.readDocument()
	if err != nil {
		return err
	}

	value, err := s.parseValue(ctx)
	if err != nil {
		return err
	}

	if err := pointer.Set(doc, s.Pointer, value); err != nil {
		return errors.NewPointerError(fmt.Sprintf("failed to set '%s'", s.Pointer), err)
	}
	ctx.Log.Debug().Str("pointer", s.Pointer).Str("type", models.TypeName(value)).Msg("value set")

	return ctx.writeValue(doc, s.Output)
}

func (s *SetCmd) parseValue(ctx *Context) (models.JSONValue, error) {
	value, err := parser.ParseString(s.Value)
	if err == nil {
		return value, nil
	}
	if ctx.Config.Set.RawStrings {
		ctx.Log.Debug().Str("value", s.Value).Msg("value is not JSON, storing it as a string")
		return s.Value, nil
	}
	return nil, errors.NewParsingError(
		fmt.Sprintf("value %q is not valid JSON (use --raw to store it as a string)", s.Value),
		err,
	)
}

// PathsCmd lists the pointers of a document
type PathsCmd struct {
	Leaves bool `help:"Only list values that are neither objects nor arrays." short:"l"`
	Values bool `help:"Print each value in compact form next to its pointer."`
}

// Run executes the paths command
func (p *PathsCmd) Run(ctx *Context) error {
	doc, err := ctx.readDocument()
	if err != nil {
		return err
	}

	opts := ctx.Config.FormatterOptions()
	opts.Pretty = false
	compact := formatter.NewFormatterWithOptions(opts)

	var b strings.Builder

	err = pointer.Walk(doc, func(ptr string, v models.JSONValue) error {
		switch v.(type) {
		case *models.JSONObject, *models.JSONArray:
			if p.Leaves {
				return nil
			}
		}
		if ptr == "" && !p.Values {
			// the root pointer is an empty line and adds nothing to the listing
			return nil
		}

		b.WriteString(ptr)
		if p.Values {
			rendered, err := compact.FormatString(v)
			if err != nil {
				return errors.NewFormatError(fmt.Sprintf("failed to render '%s'", ptr), err)
			}
			b.WriteByte('\t')
			b.WriteString(rendered)
		}
		b.WriteByte('\n')
		return nil
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(ctx.Stdout, b.String()); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// EscapeCmd escapes keys into reference tokens
type EscapeCmd struct {
	Keys []string `arg:"" help:"Object keys or array indices to escape."`
	Join bool     `help:"Print a single pointer made of all keys instead of one token per line." short:"j"`
}

// Run executes the escape command
func (e *EscapeCmd) Run(ctx *Context) error {
	if e.Join {
		_, err := fmt.Fprintln(ctx.Stdout, pointer.Join(e.Keys...))
		return err
	}
	for _, key := range e.Keys {
		if _, err := fmt.Fprintln(ctx.Stdout, pointer.Escape(key)); err != nil {
			return err
		}
	}
	return nil
}

// UnescapeCmd decodes reference tokens or whole pointers
type UnescapeCmd struct {
	Tokens []string `arg:"" help:"Reference tokens, or pointers when --split is given."`
	Split  bool     `help:"Treat each argument as a pointer and print its decoded tokens, one per line."`
}

// Run executes the unescape command
func (u *UnescapeCmd) Run(ctx *Context) error {
	for _, tok := range u.Tokens {
		decoded := []string{pointer.Decode(tok)}
		if u.Split {
			var err error
			decoded, err = pointer.Tokens(tok)
			if err != nil {
				return errors.NewPointerError(fmt.Sprintf("failed to parse '%s'", tok), err)
			}
		}
		for _, d := range decoded {
			if _, err := fmt.Fprintln(ctx.Stdout, d); err != nil {
				return err
			}
		}
	}
	return nil
}
