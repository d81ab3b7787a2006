package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/podtrends/trenddeck/internal/application/usecase"
	"github.com/podtrends/trenddeck/internal/infrastructure/api"
	"github.com/podtrends/trenddeck/internal/infrastructure/config"
	"github.com/podtrends/trenddeck/internal/infrastructure/credential"
	"github.com/podtrends/trenddeck/internal/infrastructure/feed"
	"github.com/podtrends/trenddeck/internal/presentation/tui"
)

// CLI defines the command line interface.
type CLI struct {
	Config string `kong:"help='Path to the config file',type='path'"`

	Dashboard DashboardCmd `kong:"cmd,default='1',help='Open the trend dashboard.'"`
	Sources   SourcesCmd   `kong:"cmd,help='Manage ingestion source overrides.'"`
	Preview   PreviewCmd   `kong:"cmd,help='Preview an RSS source before adding it.'"`
}

// DashboardCmd runs the interactive dashboard.
type DashboardCmd struct{}

// Run starts the TUI against the configured backend.
func (c *DashboardCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	sessions := credential.NewStore(cfg.CredentialFile)
	client := api.NewClient(cfg.APIBaseURL, sessions)
	auth := usecase.NewAuthService(client, sessions)
	trends := usecase.NewTrendService(client, cfg.Ingest, cfg.ItemLimit)

	program := tea.NewProgram(tui.NewModel(cfg, auth, trends), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// SourcesCmd manages the ingestion source override list.
type SourcesCmd struct {
	List   SourcesListCmd   `kong:"cmd,default='1',help='List configured source overrides.'"`
	Add    SourcesAddCmd    `kong:"cmd,help='Add a source override URL.'"`
	Remove SourcesRemoveCmd `kong:"cmd,help='Remove a source override by number.'"`
}

// SourcesListCmd prints the configured override URLs.
type SourcesListCmd struct{}

// Run lists the configured source overrides.
func (c *SourcesListCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	sources, err := store.ListSources()
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		fmt.Println("No source overrides configured; the backend uses its own feed list.")
		return nil
	}
	for i, src := range sources {
		fmt.Printf("%d. %s\n", i+1, src)
	}
	return nil
}

// SourcesAddCmd adds one override URL to the config.
type SourcesAddCmd struct {
	URL string `kong:"arg,required,help='RSS source URL.'"`
}

// Run adds the source override.
func (c *SourcesAddCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := store.AddSource(c.URL); err != nil {
		return err
	}
	fmt.Printf("Added %s\n", c.URL)
	return nil
}

// SourcesRemoveCmd removes one override URL by its 1-based number.
type SourcesRemoveCmd struct {
	Number int `kong:"arg,required,help='Source number as shown by list.'"`
}

// Run removes the source override.
func (c *SourcesRemoveCmd) Run(cli *CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return err
	}
	if err := store.RemoveSource(c.Number - 1); err != nil {
		return err
	}
	fmt.Printf("Removed source %d\n", c.Number)
	return nil
}

// PreviewCmd fetches a candidate source and prints its latest entries.
type PreviewCmd struct {
	URL   string `kong:"arg,required,help='RSS source URL.'"`
	Limit int    `kong:"help='Max entries to show.',default='10'"`
}

// Run previews the feed without touching the backend.
func (c *PreviewCmd) Run(_ *CLI) error {
	src, err := feed.FetchWithTimeout(c.URL, 10*time.Second)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", c.URL, err)
	}

	fmt.Printf("%s\n%s\n\n", src.Title, src.URL)
	for i, item := range src.Items {
		if i >= c.Limit {
			break
		}
		if item.Published != "" {
			fmt.Printf("- %s (%s)\n", item.Title, item.Published)
		} else {
			fmt.Printf("- %s\n", item.Title)
		}
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("trenddeck"),
		kong.Description("Terminal dashboard for the POD trend backend."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
