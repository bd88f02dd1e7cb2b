package ports

import (
	"context"
	"time"
)

// PreviewServer serves a rendered deck and pushes reload events to browsers
type PreviewServer interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	SetDocument(html []byte)
	NotifyClients(event UpdateEvent) error
	IsRunning() bool
}

// UpdateEvent represents an event sent to WebSocket clients
type UpdateEvent struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// UpdateEventType constants
const (
	EventTypeConnected = "connected"
	EventTypeReload    = "reload"
	EventTypeError     = "error"
)
