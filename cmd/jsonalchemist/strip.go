package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist/core/transform"
)

func (c *cli) stripCmd() *cobra.Command {
	var output string
	var stringAware bool

	cmd := &cobra.Command{
		Use:   "strip [file]",
		Short: "Remove // and /* */ comments",
		Long:  "strip removes comments and pretty-prints the result when it parses. Otherwise the stripped text is printed as is and the parse error goes to stderr.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := c.readInput(args)
			if err != nil {
				return err
			}
			mode, err := c.mode()
			if err != nil {
				return err
			}
			if stringAware {
				mode = transform.CommentStringAware
			}
			a, err := c.alchemist()
			if err != nil {
				return err
			}

			res := a.Strip(text, mode)
			if res.Err != nil {
				fmt.Fprintf(c.stderr, "%s %v\n", c.palette.warn.Sprint("warning:"), res.Err)
			}
			return c.writeOutput(res.Text, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&stringAware, "string-aware", false, "leave // and /* inside string literals alone")
	return cmd
}
