package transport

import (
	"context"
	"testing"
)

type stubSender struct {
	method string
	params any
}

func (s *stubSender) SendNotification(method string, params any) error {
	s.method = method
	s.params = params
	return nil
}

func TestHandlerFunc(t *testing.T) {
	var called bool
	h := HandlerFunc(func(_ context.Context, data []byte) []byte {
		called = true
		return data
	})

	out := h.HandleJSON(context.Background(), []byte("x"))
	if !called {
		t.Error("expected function to be called")
	}
	if string(out) != "x" {
		t.Errorf("out = %q, want x", out)
	}
}

func TestNotificationSenderContext(t *testing.T) {
	t.Run("nil when not set", func(t *testing.T) {
		if sender := NotificationSenderFromContext(context.Background()); sender != nil {
			t.Errorf("expected nil sender, got %v", sender)
		}
	})

	t.Run("roundtrip", func(t *testing.T) {
		sender := &stubSender{}
		ctx := ContextWithNotificationSender(context.Background(), sender)

		got := NotificationSenderFromContext(ctx)
		if got != NotificationSender(sender) {
			t.Error("expected sender from context to match")
		}

		_ = got.SendNotification("m", 1)
		if sender.method != "m" {
			t.Errorf("method = %q, want m", sender.method)
		}
	})
}
