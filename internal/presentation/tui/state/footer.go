package state

import "strings"

// FooterText returns the footer content for the current screen.
func FooterText(screen Screen, loading bool, ingestStatus, helpText string) string {
	status := strings.TrimSpace(ingestStatus)
	if !loading && status != "" && (screen == DashboardView || screen == DetailView) {
		if helpText == "" {
			return status
		}
		return status + "\n" + helpText
	}
	return helpText
}
