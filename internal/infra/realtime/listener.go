package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

const (
	notifyChannel = "appointment_events"

	minReconnectInterval = 5 * time.Second
	maxReconnectInterval = time.Minute

	// pingInterval keeps the connection alive and detects silent drops.
	pingInterval = 90 * time.Second
)

// Logger is the logging interface consumed by the bridge.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Bridge consumes appointment change notifications from Postgres
// (LISTEN/NOTIFY, fed by the trigger in migrations) and publishes them to
// the hub. It is the only realtime transport the core knows about.
type Bridge struct {
	listener *pq.Listener
	hub      *Hub
	logger   Logger
}

// NewBridge opens a LISTEN connection with automatic reconnection.
func NewBridge(dsn string, hub *Hub, logger Logger) *Bridge {
	listener := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(event pq.ListenerEventType, err error) {
			switch event {
			case pq.ListenerEventConnected:
				logger.Info("realtime: listener connected")
			case pq.ListenerEventReconnected:
				// Notifications sent while disconnected are lost; views
				// recover by re-querying on reconnect.
				logger.Warn("realtime: listener reconnected, events may have been missed")
			case pq.ListenerEventDisconnected:
				logger.Warn("realtime: listener disconnected: %v", err)
			case pq.ListenerEventConnectionAttemptFailed:
				logger.Error("realtime: listener connection attempt failed: %v", err)
			}
		})

	return &Bridge{listener: listener, hub: hub, logger: logger}
}

// Run subscribes to the appointment channel and pumps notifications into
// the hub until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.listener.Listen(notifyChannel); err != nil {
		return err
	}
	b.logger.Info("realtime: listening on channel %q", notifyChannel)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case notification := <-b.listener.Notify:
			// A nil notification signals a reconnect.
			if notification == nil {
				continue
			}
			b.dispatch(notification.Extra)

		case <-time.After(pingInterval):
			if err := b.listener.Ping(); err != nil {
				b.logger.Warn("realtime: listener ping failed: %v", err)
			}
		}
	}
}

func (b *Bridge) dispatch(payload string) {
	var event AppointmentEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.logger.Error("realtime: malformed notification payload: %v", err)
		return
	}
	if event.SalonID == 0 {
		b.logger.Warn("realtime: notification without salon_id dropped")
		return
	}
	b.hub.Publish(event)
}

// Close tears down the LISTEN connection.
func (b *Bridge) Close() error {
	return b.listener.Close()
}
