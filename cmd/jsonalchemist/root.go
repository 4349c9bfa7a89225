package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leofalp/jsonalchemist"
	"github.com/leofalp/jsonalchemist/core/recovery"
	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/core/transform"
	"github.com/leofalp/jsonalchemist/providers/observability/slogobs"
)

// cli carries the I/O streams and global flags shared by every command.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	colorMode   string
	configPath  string
	commentMode string
	jsonRepair  bool
	envFile     string

	palette  palette
	observer *slogobs.Observer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:               "jsonalchemist",
		Short:             "Format, validate and repair near-JSON",
		Long:              "jsonalchemist turns JSON with comments, single quotes or foreign literal dumps into valid JSON, asking a language model only when local recovery fails.",
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.colorMode, "color", "auto", "colorize output (auto|on|off)")
	flags.StringVar(&c.configPath, "config", "", "settings file (default: user config dir)")
	flags.StringVar(&c.commentMode, "comment-mode", transform.CommentHeuristic.String(), "comment stripper (heuristic|string-aware)")
	flags.BoolVar(&c.jsonRepair, "local-repair", false, "try jsonrepair locally before giving up")
	flags.StringVar(&c.envFile, "env-file", ".env", "dotenv file to load if present")

	root.AddCommand(
		c.formatCmd(),
		c.minifyCmd(),
		c.validateCmd(),
		c.detectCmd(),
		c.stripCmd(),
		c.fixCmd(),
		c.watchCmd(),
		c.configCmd(),
		c.versionCmd(),
	)

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root
}

// execute runs root and reports a returned error on stderr. It returns the
// process exit code.
func execute(ctx context.Context, root *cobra.Command) int {
	if err := root.ExecuteContext(ctx); err != nil {
		enabled, _ := resolveColor("auto", root.ErrOrStderr())
		fmt.Fprintf(root.ErrOrStderr(), "%s %v\n", newPalette(enabled).fail.Sprint("error:"), err)
		return 1
	}
	return 0
}

func (c *cli) setup(_ *cobra.Command, _ []string) error {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", c.envFile, err)
		}
	}

	enabled, err := resolveColor(c.colorMode, c.stdout)
	if err != nil {
		return err
	}
	c.palette = newPalette(enabled)
	c.observer = slogobs.New(slogobs.WithOutput(c.stderr), slogobs.WithColors(enabled))
	return nil
}

// resolveColor turns the --color flag into a decision. "auto" enables color
// only for terminals and honors NO_COLOR.
func resolveColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (want auto, on or off)", mode)
	}
}

// palette holds the status colors, each enabled or disabled explicitly so
// output to a non-terminal stays plain.
type palette struct {
	ok   *color.Color
	warn *color.Color
	fail *color.Color
	dim  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		ok:   color.New(color.FgGreen, color.Bold),
		warn: color.New(color.FgYellow, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		dim:  color.New(color.Faint),
	}
	for _, col := range []*color.Color{p.ok, p.warn, p.fail, p.dim} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return p
}

func (c *cli) mode() (transform.CommentMode, error) {
	switch c.commentMode {
	case "heuristic", "":
		return transform.CommentHeuristic, nil
	case "string-aware", "string_aware":
		return transform.CommentStringAware, nil
	default:
		return 0, fmt.Errorf("invalid --comment-mode %q (want heuristic or string-aware)", c.commentMode)
	}
}

func (c *cli) alchemist(middlewares ...repair.Middleware) (*jsonalchemist.Alchemist, error) {
	mode, err := c.mode()
	if err != nil {
		return nil, err
	}
	recoveryOpts := []recovery.Option{recovery.WithCommentMode(mode)}
	if c.jsonRepair {
		recoveryOpts = append(recoveryOpts, recovery.WithJSONRepair())
	}
	opts := []jsonalchemist.Option{jsonalchemist.WithMiddleware(middlewares...)}
	if c.observer != nil {
		recoveryOpts = append(recoveryOpts, recovery.WithObserver(c.observer))
		opts = append(opts, jsonalchemist.WithObserver(c.observer))
	}
	opts = append(opts, jsonalchemist.WithRecoverer(recovery.New(recoveryOpts...)))

	return jsonalchemist.New(opts...), nil
}

func (c *cli) store() (*settings.FileStore, error) {
	path := c.configPath
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return settings.NewFileStore(path), nil
}

// loadSettings reads the stored settings and applies JSONALCHEMIST_*
// overrides from the environment.
func (c *cli) loadSettings() (settings.Settings, error) {
	store, err := c.store()
	if err != nil {
		return settings.Default(), err
	}
	cfg, err := store.Load()
	if err != nil {
		return cfg, err
	}
	return settings.FromEnv(cfg)
}
