package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotebook/internal/platform/config"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// cli is shared by every subcommand. It is filled in by setup before a
// command runs.
type cli struct {
	profile   string
	configDir string
	baseURL   string
	verbose   bool
	asJSON    bool

	cfg    *config.Config
	logger *slog.Logger
	api    ports.QuotesAPI
}

// newRootCmd builds the command tree. A non-nil api replaces the HTTP
// client.
func newRootCmd(api ports.QuotesAPI) *cobra.Command {
	c := &cli{api: api}

	root := &cobra.Command{
		Use:   "quotes",
		Short: "Browse and manage quotes served by the quotes API",
		Long: `quotes talks to a running quotes API. The API location comes from
services.quotes.base_url in the config files, APP_SERVICES_QUOTES_BASE__URL
or --base-url.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.profile, "profile", profile, "config profile to load")
	flags.StringVar(&c.configDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and profile files")
	flags.StringVar(&c.baseURL, "base-url", "", "quotes API root, overrides the config")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log requests to stderr")
	flags.BoolVar(&c.asJSON, "json", false, "print quotes as JSON")

	root.AddCommand(
		newListCmd(c),
		newTopCmd(c),
		newRandomCmd(c),
		newTagsCmd(c),
		newTagCmd(c),
		newUntagCmd(c),
		newSuggestCmd(c),
		newAddCmd(c),
		newEditCmd(c),
		newLikeCmd(c),
		newImportCmd(c),
		newBrowseCmd(c),
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFromDir(c.configDir, c.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.cfg = cfg

	level := "warn"
	if c.verbose {
		level = "debug"
	}

	c.logger = logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: "quotes-cli",
		Version: cfg.App.Version,
	}, cmd.ErrOrStderr())
	logging.SetDefault(c.logger)

	if c.api != nil {
		return nil
	}

	baseURL := cfg.Services.Quotes.BaseURL
	if c.baseURL != "" {
		baseURL = c.baseURL
	}

	transport, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: cfg.Services.Quotes.Name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      c.logger,
	})
	if err != nil {
		return fmt.Errorf("creating HTTP client: %w", err)
	}

	c.api = acl.NewQuotesClient(acl.QuotesClientConfig{
		Client:      transport,
		ServiceName: cfg.Services.Quotes.Name,
		Logger:      c.logger,
	})

	return nil
}
