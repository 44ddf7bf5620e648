// Package transport provides JSON-RPC transport implementations.
package transport

import (
	"context"
)

// Handler processes a raw JSON-RPC payload and returns the serialized
// response, or nil when no response is due (notifications). The dispatcher
// satisfies this interface; transports stay ignorant of envelope parsing,
// batching, and error normalization.
type Handler interface {
	HandleJSON(ctx context.Context, data []byte) []byte
}

// HandlerFunc is an adapter to allow ordinary functions as handlers.
type HandlerFunc func(ctx context.Context, data []byte) []byte

// HandleJSON calls f(ctx, data).
func (f HandlerFunc) HandleJSON(ctx context.Context, data []byte) []byte {
	return f(ctx, data)
}

// Transport defines the communication layer interface.
type Transport interface {
	// Serve starts the transport, blocking until ctx is canceled or an error occurs.
	Serve(ctx context.Context, handler Handler) error

	// Addr returns the transport's address description.
	Addr() string
}

// NotificationSender can push JSON-RPC notifications to clients.
type NotificationSender interface {
	SendNotification(method string, params any) error
}

// notificationSenderKey is the context key for the notification sender.
type notificationSenderKey struct{}

// ContextWithNotificationSender returns a context with the notification sender attached.
func ContextWithNotificationSender(ctx context.Context, sender NotificationSender) context.Context {
	return context.WithValue(ctx, notificationSenderKey{}, sender)
}

// NotificationSenderFromContext returns the notification sender from context, or nil if none.
func NotificationSenderFromContext(ctx context.Context) NotificationSender {
	sender, _ := ctx.Value(notificationSenderKey{}).(NotificationSender)
	return sender
}
