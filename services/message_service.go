//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"batepapo/domain"
	"batepapo/errors"
	"batepapo/repositories"

	"github.com/google/uuid"
)

type IMessageService interface {
	Send(from, to, text string, messageType domain.MessageType) error
	AppendSystemNotice(from, text string) error
	VisibleTo(viewer string, limit *int) ([]domain.Message, error)
}

// MessageService creates messages under sender-identity constraints
// and answers "what can this viewer see" queries. The presence gate
// on Send and VisibleTo is the same underlying record check the
// presence registry exposes as IsPresent.
type MessageService struct {
	messages     repositories.IMessageRepository
	participants repositories.IParticipantRepository
	log          *slog.Logger
	now          func() time.Time
}

func NewMessageService(messages repositories.IMessageRepository, participants repositories.IParticipantRepository, log *slog.Logger) *MessageService {
	return &MessageService{
		messages:     messages,
		participants: participants,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Send appends a user message. The sender must currently be present,
// the type must be a user-sendable one, and visibility is never
// fanned out at write time: one stored record serves every reader.
func (s *MessageService) Send(from, to, text string, messageType domain.MessageType) error {
	if from == "" || to == "" || text == "" {
		return errors.ErrEmptyField
	}
	if !messageType.UserSent() {
		return errors.ErrInvalidMessageType
	}

	present, err := s.participants.Exists(from)
	if err != nil {
		return fmt.Errorf("presence lookup failed: %w", err)
	}
	if !present {
		return errors.ErrNotPresent
	}

	return s.messages.Store(domain.Message{
		ID:   uuid.New(),
		From: from,
		To:   to,
		Text: text,
		Type: messageType,
		At:   s.now(),
	})
}

// AppendSystemNotice records a join/leave broadcast. It deliberately
// skips the presence gate: on departure the sender is already gone.
func (s *MessageService) AppendSystemNotice(from, text string) error {
	if from == "" || text == "" {
		return errors.ErrEmptyField
	}
	return s.messages.Store(domain.NewSystemNotice(from, text, s.now()))
}

// VisibleTo returns the viewer's message history in insertion order.
// A non-nil limit must be positive and truncates to the most recent
// `limit` visible entries.
func (s *MessageService) VisibleTo(viewer string, limit *int) ([]domain.Message, error) {
	present, err := s.participants.Exists(viewer)
	if err != nil {
		return nil, fmt.Errorf("presence lookup failed: %w", err)
	}
	if !present {
		return nil, errors.ErrNotPresent
	}
	if limit != nil && *limit <= 0 {
		return nil, errors.ErrInvalidLimit
	}
	return s.messages.VisibleTo(viewer, limit)
}
