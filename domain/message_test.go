package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Visibility_Rule(t *testing.T) {
	req := require.New(t)

	broadcast := Message{From: "ana", To: BroadcastRecipient, Type: TypeMessage}
	private := Message{From: "ana", To: "bruno", Type: TypePrivateMessage}

	req.True(broadcast.VisibleTo("carla"))
	req.True(private.VisibleTo("ana"))
	req.True(private.VisibleTo("bruno"))
	req.False(private.VisibleTo("carla"))
}

func Test_UserSent_Types(t *testing.T) {
	req := require.New(t)

	req.True(TypeMessage.UserSent())
	req.True(TypePrivateMessage.UserSent())
	req.False(TypeStatus.UserSent())
	req.False(MessageType("shout").UserSent())
}

func Test_Clock_Renders_Wall_Time(t *testing.T) {
	req := require.New(t)

	at := time.Date(2024, 3, 9, 21, 5, 37, 0, time.UTC)
	m := Message{At: at}
	req.Equal("21:05:37", m.Clock())
}

func Test_Staleness(t *testing.T) {
	req := require.New(t)

	now := time.Now().UTC()
	threshold := 10 * time.Second

	fresh := Participant{Name: "ana", LastSeen: now.Add(-threshold)}
	stale := Participant{Name: "bruno", LastSeen: now.Add(-threshold - time.Millisecond)}

	// Exactly at the threshold is still considered alive
	req.False(fresh.StaleAt(now, threshold))
	req.True(stale.StaleAt(now, threshold))
}
