// Package pubsub fans events out to any number of subscribers and turns a
// subscription into Bubble Tea commands. The log tail and the config
// watcher both publish through it.
package pubsub

import "time"

// EventType names what happened to the payload.
type EventType string

const (
	// AppendedEvent carries a new log line.
	AppendedEvent EventType = "appended"
	// ReloadedEvent carries the path of a config file that changed on disk.
	ReloadedEvent EventType = "reloaded"
)

// Event is one published payload, stamped at publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
