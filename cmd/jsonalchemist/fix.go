package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist"
	"github.com/leofalp/jsonalchemist/core/repair"
	"github.com/leofalp/jsonalchemist/core/repair/middleware"
	"github.com/leofalp/jsonalchemist/core/settings"
)

func (c *cli) fixCmd() *cobra.Command {
	var (
		output      string
		compact     bool
		provider    string
		timeout     time.Duration
		retries     int
		logRequests bool
	)

	cmd := &cobra.Command{
		Use:   "fix [file]",
		Short: "Repair input locally, or with the configured AI provider",
		Long: `fix tries the local recovery chains first. When they all fail the input is
sent to the provider from the settings (see "jsonalchemist config") and the
answer is validated again before it is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := c.readInput(args)
			if err != nil {
				return err
			}
			cfg, err := c.loadSettings()
			if err != nil {
				return err
			}
			if provider != "" {
				tag, err := settings.ParseProviderTag(provider)
				if err != nil {
					return err
				}
				cfg.Provider = tag
			}

			var mws []repair.Middleware
			if logRequests {
				mws = append(mws, middleware.Logging(c.observer.Logger(), middleware.LogLevelMinimal))
			}
			if retries > 0 {
				mws = append(mws, middleware.Retry(middleware.RetryConfig{MaxRetries: retries}))
			}
			if timeout > 0 {
				mws = append(mws, middleware.Timeout(timeout))
			}

			a, err := c.alchemist(mws...)
			if err != nil {
				return err
			}
			res, err := a.Fix(cmd.Context(), text, cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(c.stderr, c.fixSummary(res))
			if compact {
				return c.writeOutput(res.Text, output)
			}
			return c.writeOutput(res.Pretty, output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	flags.BoolVar(&compact, "compact", false, "print minified JSON")
	flags.StringVar(&provider, "provider", "", "override the configured provider (gemini|openai)")
	flags.DurationVar(&timeout, "timeout", 60*time.Second, "deadline for the AI request (0 disables)")
	flags.IntVar(&retries, "retries", 0, "retry transient AI failures this many times")
	flags.BoolVar(&logRequests, "log-requests", false, "log each AI request")
	return cmd
}

func (c *cli) fixSummary(res *jsonalchemist.FixResult) string {
	if res.Source == jsonalchemist.SourceAI {
		return c.palette.warn.Sprintf("repaired by %s (%s input)", res.Provider, res.Kind)
	}
	return c.palette.ok.Sprintf("recovered locally via %s", res.Chain)
}
