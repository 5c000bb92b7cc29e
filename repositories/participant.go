//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"batepapo/domain"
	apperrors "batepapo/errors"

	"github.com/dgraph-io/badger/v4"
)

const participantPrefix = "participant:"

type IParticipantRepository interface {
	Create(name string, lastSeen time.Time) error
	Touch(name string, lastSeen time.Time) error
	List() ([]domain.Participant, error)
	Exists(name string) (bool, error)
	Delete(name string) error
}

type ParticipantRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewParticipantRepository(db *badger.DB, log *slog.Logger) IParticipantRepository {
	return &ParticipantRepository{db: db, log: log}
}

// diskParticipant is the persisted shape of a presence record.
type diskParticipant struct {
	Name     string `json:"name"`
	LastSeen int64  `json:"last_seen"` // UnixNano
}

func participantKey(name string) []byte {
	return []byte(participantPrefix + name)
}

// Create persists a new presence record keyed by name.
// The existence check and the write run inside a single Badger
// transaction, so two concurrent joins for the same name cannot both
// land: the loser gets ErrNameTaken.
func (r ParticipantRepository) Create(name string, lastSeen time.Time) error {
	data, err := json.Marshal(diskParticipant{Name: name, LastSeen: lastSeen.UnixNano()})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := participantKey(name)
		if _, err := txn.Get(key); err == nil {
			return apperrors.ErrNameTaken
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
}

// Touch refreshes the lastSeen timestamp of an existing record.
// A missing record is a business outcome, not a storage failure.
func (r ParticipantRepository) Touch(name string, lastSeen time.Time) error {
	data, err := json.Marshal(diskParticipant{Name: name, LastSeen: lastSeen.UnixNano()})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	return r.db.Update(func(txn *badger.Txn) error {
		key := participantKey(name)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return apperrors.ErrNotPresent
			}
			return err
		}
		return txn.Set(key, data)
	})
}

// List returns every stored presence record via a prefix scan.
// The mere presence of a record means "active"; no staleness
// filtering happens on reads.
func (r ParticipantRepository) List() ([]domain.Participant, error) {
	var participants []domain.Participant
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(participantPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var dp diskParticipant
				if err := json.Unmarshal(val, &dp); err != nil {
					return err
				}
				participants = append(participants, toParticipant(dp))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r ParticipantRepository) Exists(name string) (bool, error) {
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(participantKey(name))
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a presence record. Deleting an absent name is a
// no-op so concurrent sweeps stay idempotent.
func (r ParticipantRepository) Delete(name string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(participantKey(name))
	})
}

func toParticipant(dp diskParticipant) domain.Participant {
	return domain.Participant{
		Name:     dp.Name,
		LastSeen: time.Unix(0, dp.LastSeen).UTC(),
	}
}
