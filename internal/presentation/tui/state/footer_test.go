package state

import "testing"

func TestFooterText(t *testing.T) {
	tests := []struct {
		name         string
		screen       Screen
		loading      bool
		ingestStatus string
		helpText     string
		want         string
	}{
		{
			name:     "help only when no status",
			screen:   DashboardView,
			helpText: "help",
			want:     "help",
		},
		{
			name:         "status prepended on dashboard",
			screen:       DashboardView,
			ingestStatus: "ingest queued (task abc)",
			helpText:     "help",
			want:         "ingest queued (task abc)\nhelp",
		},
		{
			name:         "status shown on detail",
			screen:       DetailView,
			ingestStatus: "ingest done: created=3 updated=1 scored=4",
			helpText:     "help",
			want:         "ingest done: created=3 updated=1 scored=4\nhelp",
		},
		{
			name:         "status hidden while loading",
			screen:       DashboardView,
			loading:      true,
			ingestStatus: "ingest running across 4 feeds...",
			helpText:     "help",
			want:         "help",
		},
		{
			name:         "status hidden on login",
			screen:       LoginView,
			ingestStatus: "ingest queued",
			helpText:     "help",
			want:         "help",
		},
		{
			name:         "status alone when help empty",
			screen:       DashboardView,
			ingestStatus: "ingest queued",
			want:         "ingest queued",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.screen, tt.loading, tt.ingestStatus, tt.helpText)
			if got != tt.want {
				t.Errorf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}
