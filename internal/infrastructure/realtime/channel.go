// Package realtime receives push notifications for ingestion lifecycle events.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
)

// EventKind enumerates recognized push message types.
type EventKind string

const (
	EventIngestStarted   EventKind = "ingest_started"
	EventIngestCompleted EventKind = "ingest_completed"
)

// Event is one decoded push message. Completion events are a signal to
// refetch the item set, never the source of truth for item contents.
type Event struct {
	Type    EventKind `json:"type"`
	Feeds   int       `json:"feeds"`
	Created int       `json:"created"`
	Updated int       `json:"updated"`
	Scored  int       `json:"scored"`
}

// URL derives the push endpoint from the API base URL: the scheme flips
// http to ws (https to wss) and the fixed path suffix /ws/trends is appended.
func URL(apiBase string) (string, error) {
	u, err := url.Parse(apiBase)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("unsupported api base scheme %q", u.Scheme)
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws/trends"
	u.RawQuery = ""
	return u.String(), nil
}

// Channel is a push connection tied to one session. It never reconnects;
// the next session-presence transition opens a fresh instance.
type Channel struct {
	conn *websocket.Conn
}

// Dial opens the push connection derived from the API base URL.
func Dial(ctx context.Context, apiBase string) (*Channel, error) {
	endpoint, err := URL(apiBase)
	if err != nil {
		return nil, err
	}
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	return &Channel{conn: conn}, nil
}

// Next blocks until the next recognized event arrives. Unparsable or
// unrecognized messages are skipped without terminating the connection.
// A transport error ends the channel and is returned to the caller.
func (c *Channel) Next() (Event, error) {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return Event{}, err
		}
		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			continue
		}
		switch ev.Type {
		case EventIngestStarted, EventIngestCompleted:
			return ev, nil
		}
	}
}

// Close tears down the connection. Close errors are swallowed: the dashboard
// stays usable through manual refresh.
func (c *Channel) Close() {
	if c == nil || c.conn == nil {
		return
	}
	_ = c.conn.Close()
}
