package services

import (
	"log/slog"
	"testing"
	"time"

	"batepapo/domain"
	"batepapo/errors"
	"batepapo/mocks"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMessageService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	svc := NewMessageService(mockMessages, mockParticipants, slog.Default())

	t.Run("should store a message from a present sender", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Exists("ana").Return(true, nil).Times(1)

		var stored domain.Message
		mockMessages.EXPECT().
			Store(gomock.Any()).
			Do(func(m domain.Message) { stored = m }).
			Return(nil).
			Times(1)

		req.NoError(svc.Send("ana", "bruno", "hi", domain.TypePrivateMessage))
		req.Equal("ana", stored.From)
		req.Equal("bruno", stored.To)
		req.Equal("hi", stored.Text)
		req.Equal(domain.TypePrivateMessage, stored.Type)
		req.False(stored.At.IsZero())
	})

	t.Run("should refuse an absent sender", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Exists("ghost").Return(false, nil).Times(1)
		mockMessages.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(svc.Send("ghost", "bruno", "hi", domain.TypeMessage), errors.ErrNotPresent)
	})

	t.Run("should refuse the status type before any lookup", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Exists(gomock.Any()).Times(0)
		mockMessages.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(svc.Send("ana", "bruno", "hi", domain.TypeStatus), errors.ErrInvalidMessageType)
	})

	t.Run("should refuse empty required fields", func(t *testing.T) {
		req := require.New(t)

		mockMessages.EXPECT().Store(gomock.Any()).Times(0)

		req.ErrorIs(svc.Send("ana", "", "hi", domain.TypeMessage), errors.ErrEmptyField)
		req.ErrorIs(svc.Send("ana", "bruno", "", domain.TypeMessage), errors.ErrEmptyField)
		req.ErrorIs(svc.Send("", "bruno", "hi", domain.TypeMessage), errors.ErrEmptyField)
	})
}

func TestMessageService_AppendSystemNotice(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	svc := NewMessageService(mockMessages, mockParticipants, slog.Default())

	// No presence gate: the sender may already be gone on departure
	mockParticipants.EXPECT().Exists(gomock.Any()).Times(0)

	var stored domain.Message
	mockMessages.EXPECT().
		Store(gomock.Any()).
		Do(func(m domain.Message) { stored = m }).
		Return(nil).
		Times(1)

	req.NoError(svc.AppendSystemNotice("ana", domain.LeftNotice))
	req.Equal("ana", stored.From)
	req.Equal(domain.BroadcastRecipient, stored.To)
	req.Equal(domain.LeftNotice, stored.Text)
	req.Equal(domain.TypeStatus, stored.Type)
}

func TestMessageService_VisibleTo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMessages := mocks.NewMockIMessageRepository(ctrl)
	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	svc := NewMessageService(mockMessages, mockParticipants, slog.Default())

	t.Run("should pass the limit through for a present viewer", func(t *testing.T) {
		req := require.New(t)
		history := []domain.Message{
			{From: "ana", To: domain.BroadcastRecipient, Text: "hello all", Type: domain.TypeMessage, At: time.Now().UTC()},
		}

		mockParticipants.EXPECT().Exists("ana").Return(true, nil).Times(1)
		mockMessages.EXPECT().VisibleTo("ana", lo.ToPtr(1)).Return(history, nil).Times(1)

		messages, err := svc.VisibleTo("ana", lo.ToPtr(1))
		req.NoError(err)
		req.Equal(history, messages)
	})

	t.Run("should refuse an absent viewer", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Exists("ghost").Return(false, nil).Times(1)
		mockMessages.EXPECT().VisibleTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.VisibleTo("ghost", nil)
		req.ErrorIs(err, errors.ErrNotPresent)
	})

	t.Run("should refuse a non-positive limit", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Exists("ana").Return(true, nil).Times(2)
		mockMessages.EXPECT().VisibleTo(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.VisibleTo("ana", lo.ToPtr(0))
		req.ErrorIs(err, errors.ErrInvalidLimit)

		_, err = svc.VisibleTo("ana", lo.ToPtr(-3))
		req.ErrorIs(err, errors.ErrInvalidLimit)
	})
}
