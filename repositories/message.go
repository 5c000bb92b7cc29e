//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"batepapo/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const messagePrefix = "msg:"

// newestSeek sorts after every zero-padded timestamp, so a reverse
// iterator starting here walks messages newest first.
const newestSeek = "9999999999999999999"

type IMessageRepository interface {
	Store(message domain.Message) error
	VisibleTo(viewer string, limit *int) ([]domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) IMessageRepository {
	return &MessageRepository{db: db, log: log}
}

// diskMessage is the persisted shape of a message.
type diskMessage struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	At   int64  `json:"at"` // UnixNano
}

// Store persists a message in BadgerDB.
// The key is formatted as "msg:{timestamp_padded}:{uuid}" to:
//  1. Ensure insertion ordering using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using the UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (m MessageRepository) Store(message domain.Message) error {
	key := fmt.Sprintf("%s%019d:%s", messagePrefix, message.At.UnixNano(), message.ID)
	data, err := json.Marshal(fromMessage(message))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// VisibleTo retrieves the messages a viewer may see: those they sent,
// those addressed to them, and broadcasts. Filtering happens at read
// time over the full history; there is no per-recipient mailbox.
// The iteration runs newest first so a limit stops after the last
// `limit` visible entries, then the slice is flipped back to
// insertion order.
func (m MessageRepository) VisibleTo(viewer string, limit *int) ([]domain.Message, error) {
	var messages []domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(messagePrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		seekKey := append([]byte(messagePrefix), []byte(newestSeek)...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(messages) == *limit {
				m.log.Debug(fmt.Sprintf("Maximum of %d visible messages reached", *limit))
				break
			}
			var dm diskMessage
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &dm)
			})
			if err != nil {
				return err
			}
			message, err := toMessage(dm)
			if err != nil {
				return err
			}
			if !message.VisibleTo(viewer) {
				continue
			}
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Reverse(messages), nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:   message.ID.String(),
		From: message.From,
		To:   message.To,
		Text: message.Text,
		Type: string(message.Type),
		At:   message.At.UnixNano(),
	}
}

func toMessage(dm diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(dm.ID)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.Message{
		ID:   parsedID,
		From: dm.From,
		To:   dm.To,
		Text: dm.Text,
		Type: domain.MessageType(dm.Type),
		At:   time.Unix(0, dm.At).UTC(),
	}, nil
}
