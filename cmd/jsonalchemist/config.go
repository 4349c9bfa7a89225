package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/jsonalchemist/core/settings"
	"github.com/leofalp/jsonalchemist/internal/utils"
)

func (c *cli) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the stored settings",
	}
	cmd.AddCommand(c.configShowCmd(), c.configSetCmd(), c.configResetCmd())
	return cmd
}

func (c *cli) configShowCmd() *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadSettings()
			if err != nil {
				return err
			}
			if !reveal {
				cfg.OpenAI.APIKey = utils.MaskSecret(cfg.OpenAI.APIKey)
			}
			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, string(data))

			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(c.stderr, "%s %v\n", c.palette.warn.Sprint("warning:"), err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print API keys in full")
	return cmd
}

func (c *cli) configSetCmd() *cobra.Command {
	var provider, baseURL, apiKey, model, theme string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update stored settings",
		Long: fmt.Sprintf(`set changes only the fields whose flags are given.

For the OpenAI provider a typical base URL is %s; any
OpenAI-compatible endpoint works.`, settings.SuggestedOpenAIBaseURL),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.store()
			if err != nil {
				return err
			}
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("provider") {
				tag, err := settings.ParseProviderTag(provider)
				if err != nil {
					return err
				}
				cfg.Provider = tag
			}
			if flags.Changed("base-url") {
				cfg.OpenAI.BaseURL = baseURL
			}
			if flags.Changed("api-key") {
				cfg.OpenAI.APIKey = apiKey
			}
			if flags.Changed("model") {
				cfg.OpenAI.Model = model
			}
			if flags.Changed("theme") {
				t, ok := settings.ThemeByPrefix(theme)
				if !ok {
					return fmt.Errorf("unknown theme %q", theme)
				}
				cfg.Theme = t
			}

			if err := store.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "%s %s\n", c.palette.ok.Sprint("saved"), store.Path())
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&provider, "provider", "", "repair provider (gemini|openai)")
	flags.StringVar(&baseURL, "base-url", "", "OpenAI-compatible base URL")
	flags.StringVar(&apiKey, "api-key", "", "OpenAI-compatible API key")
	flags.StringVar(&model, "model", "", "model name (empty means gpt-3.5-turbo)")
	flags.StringVar(&theme, "theme", "", "theme class prefix")
	return cmd
}

func (c *cli) configResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget stored settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.store()
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "%s %s\n", c.palette.ok.Sprint("reset"), store.Path())
			return nil
		},
	}
}
