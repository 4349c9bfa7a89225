package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist"
	"github.com/leofalp/jsonalchemist/core/classify"
)

type detectReport struct {
	Input   string `json:"input"`
	Kind    string `json:"kind"`
	Rule    string `json:"rule,omitempty"`
	Chain   string `json:"chain,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *cli) detectCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Classify input as JSON, a foreign literal, or unknown",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, name, err := c.readInput(args)
			if err != nil {
				return err
			}
			a, err := c.alchemist()
			if err != nil {
				return err
			}

			d := a.Detect(text)
			if asJSON {
				enc := json.NewEncoder(c.stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(newDetectReport(name, d))
			}
			fmt.Fprintln(c.stdout, c.describe(name, d))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report")
	return cmd
}

func newDetectReport(name string, d jsonalchemist.Detection) detectReport {
	return detectReport{
		Input:   name,
		Kind:    d.Kind.String(),
		Rule:    d.Rule,
		Chain:   string(d.Chain),
		Message: d.Message,
	}
}

// describe renders a Detection as one status line.
func (c *cli) describe(name string, d jsonalchemist.Detection) string {
	switch d.Kind {
	case classify.JSON:
		return fmt.Sprintf("%s %s (%s)", c.palette.ok.Sprint("json"), name, d.Chain)
	case classify.ForeignLiteral:
		return fmt.Sprintf("%s %s: %s", c.palette.warn.Sprint("foreign_literal"), name, d.Message)
	default:
		if d.Err == nil {
			return fmt.Sprintf("%s %s: empty input", c.palette.dim.Sprint("unknown"), name)
		}
		return fmt.Sprintf("%s %s: %s", c.palette.fail.Sprint("unknown"), name, d.Message)
	}
}
