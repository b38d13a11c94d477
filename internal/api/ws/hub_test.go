//go:build unit
// +build unit

package ws

import (
	"testing"

	pkgTesting "github.com/mahamudh472/GlobalCreoleSociety/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	return NewHub(pkgTesting.SetupTestLogger(t))
}

func TestHub_Broadcast_ReachesRoomMembers(t *testing.T) {
	hub := newTestHub(t)

	alice := NewClient("alice", nil)
	bruno := NewClient("bruno", nil)
	outsider := NewClient("carla", nil)

	hub.Register(alice)
	hub.Register(bruno)
	hub.Register(outsider)
	hub.Join(alice, "conversation:1")
	hub.Join(bruno, "conversation:1")
	hub.Join(outsider, "conversation:2")

	hub.Broadcast("conversation:1", []byte("hello"), nil)

	assert.Equal(t, "hello", string(<-alice.send))
	assert.Equal(t, "hello", string(<-bruno.send))
	assert.Empty(t, outsider.send)
}

func TestHub_Broadcast_SkipsExceptedClient(t *testing.T) {
	hub := newTestHub(t)

	alice := NewClient("alice", nil)
	bruno := NewClient("bruno", nil)

	hub.Register(alice)
	hub.Register(bruno)
	hub.Join(alice, GlobalRoom)
	hub.Join(bruno, GlobalRoom)

	hub.Broadcast(GlobalRoom, []byte("typing"), alice)

	assert.Empty(t, alice.send)
	assert.Equal(t, "typing", string(<-bruno.send))
}

func TestHub_Unregister_RemovesFromRoomsAndClosesChannel(t *testing.T) {
	hub := newTestHub(t)

	alice := NewClient("alice", nil)
	hub.Register(alice)
	hub.Join(alice, GlobalRoom)
	require.Equal(t, 1, hub.RoomSize(GlobalRoom))

	hub.Unregister(alice)

	assert.Zero(t, hub.RoomSize(GlobalRoom))
	_, open := <-alice.send
	assert.False(t, open, "send channel should be closed")

	// A second unregister is a no-op.
	hub.Unregister(alice)
}

func TestHub_Send_OnlyReachesRegisteredClients(t *testing.T) {
	hub := newTestHub(t)

	alice := NewClient("alice", nil)
	hub.Send(alice, []byte("lost"))
	assert.Empty(t, alice.send)

	hub.Register(alice)
	hub.Send(alice, []byte("delivered"))
	assert.Equal(t, "delivered", string(<-alice.send))
}
