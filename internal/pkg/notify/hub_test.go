package notify

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSuccessNeverBlocks(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	// No Run loop, no clients. Overflow the buffer and then some; every
	// call must return immediately.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Success("Course added successfully!")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Success blocked with a full buffer")
	}

	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubDrainsBroadcasts(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	go hub.Run()

	for i := 0; i < 200; i++ {
		hub.Success("Assignment added successfully!")
	}

	// With the run loop draining, the buffer frees up again.
	assert.Eventually(t, func() bool {
		select {
		case hub.broadcast <- &Notification{}:
			return true
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}
