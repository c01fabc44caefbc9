package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/mcncl/gopointer/internal/config"
	"github.com/mcncl/gopointer/internal/errors"
	"github.com/mcncl/gopointer/internal/formatter"
	"github.com/mcncl/gopointer/internal/models"
	"github.com/mcncl/gopointer/internal/parser"
)

// CLI defines the command-line interface
type CLI struct {
	Input    string           `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Config   string           `help:"Path to a config file. Defaults to the nearest .gopointer.yml." type:"path"`
	Compact  bool             `help:"Print compact JSON instead of indenting it." short:"c"`
	SortKeys bool             `help:"Sort object keys in printed JSON." short:"s"`
	Debug    bool             `help:"Enable debug logging." short:"d"`
	Version  kong.VersionFlag `help:"Show version information." short:"v"`

	Get      GetCmd      `cmd:"" help:"Print the value a JSON Pointer refers to."`
	Set      SetCmd      `cmd:"" help:"Write a value at a JSON Pointer and print the updated document."`
	Paths    PathsCmd    `cmd:"" help:"List the JSON Pointer of every value in the document."`
	Escape   EscapeCmd   `cmd:"" help:"Escape object keys into reference tokens."`
	Unescape UnescapeCmd `cmd:"" help:"Decode reference tokens into object keys."`
}

// Context holds the runtime context shared by all commands
type Context struct {
	CLI    *CLI
	Config *config.Config
	Log    zerolog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: gopointer --help\n")
		os.Exit(1)
	}
}

// run parses args and executes the selected command
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cli CLI
	p, err := kong.New(&cli,
		kong.Name("gopointer"),
		kong.Description("Resolve and update JSON documents with JSON Pointers (RFC 6901)"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": Version},
	)
	if err != nil {
		return err
	}

	kctx, err := p.Parse(args)
	if err != nil {
		return errors.NewInputError(err.Error(), nil)
	}

	ctx, err := newContext(&cli, stdin, stdout, stderr)
	if err != nil {
		return err
	}
	return kctx.Run(ctx)
}

// newContext loads the configuration and builds the logger
func newContext(cli *CLI, stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	configPath := cli.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, os.LookupEnv, config.CLIOverrides{
		Compact:  flagOverride(cli.Compact),
		SortKeys: flagOverride(cli.SortKeys),
		Raw:      flagOverride(cli.Set.Raw),
		Debug:    flagOverride(cli.Debug),
	})
	if err != nil {
		source := "environment"
		if configPath != "" {
			source = fmt.Sprintf("'%s'", configPath)
		}
		return nil, errors.NewConfigError(fmt.Sprintf("failed to load config from %s", source), err)
	}

	log := newLogger(stderr, cfg.Dev.Debug)
	if configPath != "" {
		log.Debug().Str("path", configPath).Msg("loaded config file")
	}

	return &Context{
		CLI:    cli,
		Config: cfg,
		Log:    log,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}, nil
}

// flagOverride only lets a flag override the config when it was turned on,
// since kong cannot tell an explicit false from the default.
func flagOverride(set bool) *bool {
	if !set {
		return nil
	}
	return &set
}

func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// readDocument reads JSON from the input file or stdin
func (c *Context) readDocument() (models.JSONValue, error) {
	if c.CLI.Input != "" {
		c.Log.Debug().Str("file", c.CLI.Input).Msg("reading document")
		return parser.ParseFile(c.CLI.Input)
	}

	// A terminal on stdin means nothing was piped in
	if f, ok := c.Stdin.(*os.File); ok {
		stdinInfo, err := f.Stat()
		if err != nil {
			return nil, errors.NewInputError("failed to access stdin", err)
		}
		if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
			return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	c.Log.Debug().Msg("reading document from stdin")
	jsonData, err := io.ReadAll(c.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseBytes(jsonData)
}

// newFormatter returns a formatter configured from the loaded config
func (c *Context) newFormatter() *formatter.Formatter {
	return formatter.NewFormatterWithOptions(c.Config.FormatterOptions())
}

// writeValue renders v to the output file or stdout
func (c *Context) writeValue(v models.JSONValue, output string) error {
	out, err := c.newFormatter().Format(v)
	if err != nil {
		return errors.NewFormatError("failed to render JSON", err)
	}

	if output != "" {
		if err := os.WriteFile(output, out, 0644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", output), err)
		}
		fmt.Fprintf(c.Stderr, "Updated document written to %s\n", output)
		return nil
	}

	if _, err := c.Stdout.Write(out); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
