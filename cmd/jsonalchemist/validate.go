package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) validateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Check that inputs are recoverable JSON",
		Long:  "validate reports each input as valid when it is blank or local recovery accepts it. The error shown is the one for the unmodified input.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.alchemist()
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}

			var invalid int
			for _, in := range inputs {
				text, name, err := c.readInput([]string{in})
				if err != nil {
					return err
				}
				ok, verr := a.Validate(text)
				if ok {
					if !quiet {
						fmt.Fprintf(c.stdout, "%s %s\n", c.palette.ok.Sprint("valid"), name)
					}
					continue
				}
				invalid++
				fmt.Fprintf(c.stdout, "%s %s: %v\n", c.palette.fail.Sprint("invalid"), name, verr)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d inputs invalid", invalid, len(inputs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report invalid inputs")
	return cmd
}
