// Package settings defines application-level configuration data.
package settings

import "strings"

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Up        string `yaml:"up" kong:"help='Up key',default='k'"`
	Down      string `yaml:"down" kong:"help='Down key',default='j'"`
	UpPage    string `yaml:"up_page" kong:"help='Page Up key',default='ctrl+u'"`
	DownPage  string `yaml:"down_page" kong:"help='Page Down key',default='ctrl+d'"`
	Top       string `yaml:"top" kong:"help='Top key',default='g'"`
	Bottom    string `yaml:"bottom" kong:"help='Bottom key',default='G'"`
	Open      string `yaml:"open" kong:"help='Open detail key',default='enter'"`
	Back      string `yaml:"back" kong:"help='Back key',default='esc'"`
	Quit      string `yaml:"quit" kong:"help='Quit key',default='q'"`
	Refresh   string `yaml:"refresh" kong:"help='Refresh items key',default='r'"`
	Ingest    string `yaml:"ingest" kong:"help='Run ingestion key',default='i'"`
	Search    string `yaml:"search" kong:"help='Edit search query key',default='/'"`
	ScoreUp   string `yaml:"score_up" kong:"help='Raise min score key',default='+'"`
	ScoreDown string `yaml:"score_down" kong:"help='Lower min score key',default='-'"`
	Browse    string `yaml:"browse" kong:"help='Open item in browser key',default='o'"`
	Logout    string `yaml:"logout" kong:"help='Logout key',default='L'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent    string `yaml:"accent" kong:"help='Accent color',default='42'"`
	Muted     string `yaml:"muted" kong:"help='Muted text color',default='244'"`
	Error     string `yaml:"error" kong:"help='Error text color',default='203'"`
	ScoreHigh string `yaml:"score_high" kong:"help='High score color',default='48'"`
	ScoreLow  string `yaml:"score_low" kong:"help='Low score color',default='241'"`
}

// BrandConfig carries the displayed product identity.
type BrandConfig struct {
	Name    string `yaml:"name" kong:"help='Brand name',default='POD Trend Dashboard'"`
	Tagline string `yaml:"tagline" kong:"help='Brand tagline',default='AI-driven print-on-demand trend ingestion and scoring.'"`
}

// IngestConfig holds optional overrides sent with an ingestion request.
// When Sources is empty the backend falls back to its configured feeds.
type IngestConfig struct {
	Sources         []string `yaml:"sources" kong:"help='Override RSS source URLs for ingestion'"`
	MaxItemsPerFeed int      `yaml:"max_items_per_feed" kong:"help='Max items per feed per ingestion run',default='0'"`
	RunAI           bool     `yaml:"run_ai" kong:"help='Request AI scoring during ingestion',default='true'"`
}

// CleanSources returns the override source URLs with blanks dropped.
func (c IngestConfig) CleanSources() []string {
	out := make([]string, 0, len(c.Sources))
	for _, src := range c.Sources {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Settings represents the application configuration.
type Settings struct {
	APIBaseURL     string       `yaml:"api_base_url" kong:"help='Backend API base URL',default='http://localhost:8000'"`
	ItemLimit      int          `yaml:"item_limit" kong:"help='Max items requested per refresh',default='200'"`
	CredentialFile string       `yaml:"credential_file" kong:"help='Credential database path'"`
	Brand          BrandConfig  `yaml:"brand" kong:"embed,prefix='brand.'"`
	KeyMap         KeyMapConfig `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme          ThemeConfig  `yaml:"theme" kong:"embed,prefix='theme.'"`
	Ingest         IngestConfig `yaml:"ingest" kong:"embed,prefix='ingest.'"`
}
