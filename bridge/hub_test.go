package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kayaomerr/ytsummarizer/bridge"
)

func TestHub_PublishAndSubscribe(t *testing.T) {
	t.Run("valid payload reaches subscriber", func(t *testing.T) {
		hub := bridge.NewHub()
		messages, cancel := hub.Subscribe()
		defer cancel()

		hub.Publish([]byte(`{"kind":"auth-error","error":"access_denied"}`))

		msg := <-messages
		require.Equal(t, bridge.KindAuthError, msg.Kind)
		require.Equal(t, "access_denied", msg.Error)
	})

	t.Run("malformed payload is dropped silently", func(t *testing.T) {
		hub := bridge.NewHub()
		messages, cancel := hub.Subscribe()
		defer cancel()

		hub.Publish([]byte(`garbage`))
		hub.Publish([]byte(`{"kind":"unknown"}`))

		select {
		case msg := <-messages:
			t.Fatalf("unexpected delivery: %+v", msg)
		default:
		}
	})

	t.Run("cancel unregisters and is idempotent", func(t *testing.T) {
		hub := bridge.NewHub()
		_, cancel := hub.Subscribe()
		require.Equal(t, 1, hub.SubscriberCount())

		cancel()
		cancel()
		require.Equal(t, 0, hub.SubscriberCount())
	})

	t.Run("delivery after cancel has no effect", func(t *testing.T) {
		hub := bridge.NewHub()
		messages, cancel := hub.Subscribe()
		cancel()

		hub.Deliver(bridge.Failure("late"))

		select {
		case msg := <-messages:
			t.Fatalf("unexpected delivery: %+v", msg)
		default:
		}
	})

	t.Run("duplicate terminal delivery does not block", func(t *testing.T) {
		hub := bridge.NewHub()
		messages, cancel := hub.Subscribe()
		defer cancel()

		msg := bridge.Success("tok-1", nil)
		for i := 0; i < 10; i++ {
			hub.Deliver(msg)
		}

		first := <-messages
		require.Equal(t, "tok-1", first.AccessToken)
	})

	t.Run("fan out to multiple subscribers", func(t *testing.T) {
		hub := bridge.NewHub()
		a, cancelA := hub.Subscribe()
		defer cancelA()
		b, cancelB := hub.Subscribe()
		defer cancelB()

		hub.Deliver(bridge.Failure("boom"))
		require.Equal(t, "boom", (<-a).Error)
		require.Equal(t, "boom", (<-b).Error)
	})
}
