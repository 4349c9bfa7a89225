package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist/core/classify"
)

func (c *cli) formatCmd() *cobra.Command {
	var output string
	var fix bool

	cmd := &cobra.Command{
		Use:   "format [file]",
		Short: "Pretty-print near-JSON with two-space indentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd, args, output, fix, true)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&fix, "fix", false, "escalate to the AI provider when local recovery fails")
	return cmd
}

func (c *cli) minifyCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "minify [file]",
		Short: "Print near-JSON without whitespace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.render(cmd, args, output, false, false)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func (c *cli) render(cmd *cobra.Command, args []string, output string, fix, pretty bool) error {
	text, _, err := c.readInput(args)
	if err != nil {
		return err
	}
	a, err := c.alchemist()
	if err != nil {
		return err
	}

	var rendered string
	if pretty {
		rendered, err = a.Format(text)
	} else {
		rendered, err = a.Minify(text)
	}
	if err == nil {
		return c.writeOutput(rendered, output)
	}

	if !fix {
		if d := a.Detect(text); d.Kind == classify.ForeignLiteral {
			return errors.New(d.Message)
		}
		return err
	}

	cfg, cfgErr := c.loadSettings()
	if cfgErr != nil {
		return cfgErr
	}
	res, err := a.Fix(cmd.Context(), text, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stderr, c.palette.dim.Sprintf("repaired by %s", res.Provider))
	if pretty {
		return c.writeOutput(res.Pretty, output)
	}
	return c.writeOutput(res.Text, output)
}
