package network

import (
	"testing"

	"crawl-server/pkg/api"
)

func TestBroadcaster(t *testing.T) {
	t.Run("SendTo reaches only its subscriber", func(t *testing.T) {
		b := NewBroadcaster()
		alice := b.Register("alice")
		bob := b.Register("bob")

		b.SendTo("alice", api.ServerResponse{Type: "UPDATE", Turn: 3})

		select {
		case msg := <-alice:
			if msg.Turn != 3 {
				t.Errorf("turn = %d, want 3", msg.Turn)
			}
		default:
			t.Fatal("alice got nothing")
		}

		select {
		case <-bob:
			t.Error("bob should not receive a unicast to alice")
		default:
		}
	})

	t.Run("Broadcast reaches everyone", func(t *testing.T) {
		b := NewBroadcaster()
		alice := b.Register("alice")
		bob := b.Register("bob")

		b.Broadcast(api.ServerResponse{Type: "UPDATE"})

		for name, ch := range map[string]chan api.ServerResponse{"alice": alice, "bob": bob} {
			select {
			case <-ch:
			default:
				t.Errorf("%s got nothing", name)
			}
		}
	})

	t.Run("Unregister closes the channel", func(t *testing.T) {
		b := NewBroadcaster()
		ch := b.Register("alice")
		b.Unregister("alice")

		if _, open := <-ch; open {
			t.Error("channel should be closed")
		}
		if b.HasSubscriber("alice") {
			t.Error("subscriber should be gone")
		}
	})

	t.Run("Re-register replaces the old channel", func(t *testing.T) {
		b := NewBroadcaster()
		old := b.Register("alice")
		fresh := b.Register("alice")

		if _, open := <-old; open {
			t.Error("old channel should be closed")
		}

		b.SendTo("alice", api.ServerResponse{Type: "UPDATE"})
		select {
		case <-fresh:
		default:
			t.Error("fresh channel got nothing")
		}

		if b.SubscriberCount() != 1 {
			t.Errorf("subscriber count = %d, want 1", b.SubscriberCount())
		}
	})

	t.Run("Full channels drop instead of blocking", func(t *testing.T) {
		b := NewBroadcaster()
		ch := b.Register("alice")

		for i := 0; i < 150; i++ {
			b.SendTo("alice", api.ServerResponse{Turn: i})
		}

		if len(ch) != cap(ch) {
			t.Errorf("channel holds %d, want full at %d", len(ch), cap(ch))
		}
	})
}
