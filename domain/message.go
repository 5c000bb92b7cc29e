// Package domain contains core concepts of the chat room.
// This file defines Message events and related rules.
// Messages are immutable and validated by the domain.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	TypeMessage        MessageType = "message"
	TypePrivateMessage MessageType = "private_message"
	TypeStatus         MessageType = "status"
)

const (
	// BroadcastRecipient is the reserved recipient meaning "everyone".
	// It must never collide with a real participant name.
	BroadcastRecipient = "Todos"

	JoinedNotice = "entra na sala..."
	LeftNotice   = "sai da sala..."
)

const clockLayout = "15:04:05"

// Message represents an immutable chat event.
type Message struct {
	ID   uuid.UUID // unique identifier
	From string
	To   string
	Text string
	Type MessageType
	At   time.Time
}

// UserSent reports whether the type is one a participant may send.
// Status notices are reserved for the system.
func (t MessageType) UserSent() bool {
	return t == TypeMessage || t == TypePrivateMessage
}

func (m Message) Broadcast() bool {
	return m.To == BroadcastRecipient
}

// VisibleTo is the single visibility rule of the room: a viewer sees
// a message iff they sent it, it is addressed to them, or it is a broadcast.
func (m Message) VisibleTo(viewer string) bool {
	return m.From == viewer || m.To == viewer || m.Broadcast()
}

// Clock renders the wall-clock time of the message (HH:mm:ss), the
// shape exposed on the wire. The full timestamp stays in At so
// ordering survives day boundaries.
func (m Message) Clock() string {
	return m.At.Format(clockLayout)
}

// NewSystemNotice builds the broadcast status message recorded on
// join and departure events.
func NewSystemNotice(from, text string, at time.Time) Message {
	return Message{
		ID:   uuid.New(),
		From: from,
		To:   BroadcastRecipient,
		Text: text,
		Type: TypeStatus,
		At:   at,
	}
}
