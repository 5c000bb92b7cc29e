//go:generate go run go.uber.org/mock/mockgen -source=presence_service.go -destination=../mocks/mock_presence_service.go -package=mocks
package services

import (
	"log/slog"
	"time"

	"batepapo/domain"
	"batepapo/errors"
	"batepapo/repositories"
)

type IPresenceService interface {
	Join(name string) error
	ListActive() ([]domain.Participant, error)
	Heartbeat(name string) error
	IsPresent(name string) (bool, error)
	Evict(name string) error
}

// PresenceService owns the participant lifecycle: join, heartbeat
// renewal, duplicate-name rejection and eviction. Presence is binary
// from the caller's perspective; a record exists or it does not.
type PresenceService struct {
	participants repositories.IParticipantRepository
	notices      NoticeWriter
	log          *slog.Logger
	now          func() time.Time
}

// NoticeWriter is the one capability the presence side needs from the
// message side: recording broadcast status notices.
type NoticeWriter interface {
	AppendSystemNotice(from, text string) error
}

func NewPresenceService(participants repositories.IParticipantRepository, notices NoticeWriter, log *slog.Logger) *PresenceService {
	return &PresenceService{
		participants: participants,
		notices:      notices,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Join creates the presence record and announces the arrival to the
// room. Uniqueness is enforced by the repository transaction, so a
// duplicate name surfaces as ErrNameTaken even under concurrent joins.
//
// If the join notice cannot be recorded after the participant landed,
// the record is NOT rolled back: "present without a recorded notice"
// is the accepted partial-failure mode, and the error is still
// surfaced to the caller.
func (s *PresenceService) Join(name string) error {
	if name == "" {
		return errors.ErrEmptyField
	}
	if err := s.participants.Create(name, s.now()); err != nil {
		return err
	}
	if err := s.notices.AppendSystemNotice(name, domain.JoinedNotice); err != nil {
		s.log.Warn("Join notice not recorded, participant kept", "name", name, "error", err)
		return err
	}
	return nil
}

// ListActive returns every stored participant. No staleness filtering
// happens here; stale records linger until the reaper resolves them.
func (s *PresenceService) ListActive() ([]domain.Participant, error) {
	return s.participants.List()
}

// Heartbeat refreshes lastSeen. Unknown names fail with ErrNotPresent.
func (s *PresenceService) Heartbeat(name string) error {
	if name == "" {
		return errors.ErrNotPresent
	}
	return s.participants.Touch(name, s.now())
}

func (s *PresenceService) IsPresent(name string) (bool, error) {
	return s.participants.Exists(name)
}

// Evict removes a participant. Only the reaper calls this; a regular
// client has no way to leave other than going silent.
func (s *PresenceService) Evict(name string) error {
	return s.participants.Delete(name)
}
