package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"batepapo/domain"
	"batepapo/errors"
	"batepapo/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPresenceService_Join(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	mockNotices := mocks.NewMockNoticeWriter(ctrl)
	svc := NewPresenceService(mockParticipants, mockNotices, slog.Default())

	t.Run("should create the participant and announce the join", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().
			Create("ana", gomock.Any()).
			Return(nil).
			Times(1)
		mockNotices.EXPECT().
			AppendSystemNotice("ana", domain.JoinedNotice).
			Return(nil).
			Times(1)

		req.NoError(svc.Join("ana"))
	})

	t.Run("should reject a duplicate name without announcing", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().
			Create("ana", gomock.Any()).
			Return(errors.ErrNameTaken).
			Times(1)
		mockNotices.EXPECT().AppendSystemNotice(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Join("ana"), errors.ErrNameTaken)
	})

	t.Run("should reject an empty name before touching storage", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Join(""), errors.ErrEmptyField)
	})

	t.Run("should keep the participant when the join notice fails", func(t *testing.T) {
		req := require.New(t)
		noticeErr := fmt.Errorf("storage unavailable")

		mockParticipants.EXPECT().
			Create("bruno", gomock.Any()).
			Return(nil).
			Times(1)
		mockNotices.EXPECT().
			AppendSystemNotice("bruno", domain.JoinedNotice).
			Return(noticeErr).
			Times(1)
		// No rollback: the record stays even though the notice is missing
		mockParticipants.EXPECT().Delete(gomock.Any()).Times(0)

		req.ErrorIs(svc.Join("bruno"), noticeErr)
	})
}

func TestPresenceService_Heartbeat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	mockNotices := mocks.NewMockNoticeWriter(ctrl)
	svc := NewPresenceService(mockParticipants, mockNotices, slog.Default())

	t.Run("should refresh lastSeen for a present participant", func(t *testing.T) {
		req := require.New(t)

		var touched time.Time
		mockParticipants.EXPECT().
			Touch("ana", gomock.Any()).
			Do(func(_ string, lastSeen time.Time) { touched = lastSeen }).
			Return(nil).
			Times(1)

		before := time.Now().UTC()
		req.NoError(svc.Heartbeat("ana"))
		req.False(touched.Before(before))
	})

	t.Run("should fail for an unknown name", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().
			Touch("ghost", gomock.Any()).
			Return(errors.ErrNotPresent).
			Times(1)

		req.ErrorIs(svc.Heartbeat("ghost"), errors.ErrNotPresent)
	})

	t.Run("should treat an empty name as absent without touching storage", func(t *testing.T) {
		req := require.New(t)

		mockParticipants.EXPECT().Touch(gomock.Any(), gomock.Any()).Times(0)

		req.ErrorIs(svc.Heartbeat(""), errors.ErrNotPresent)
	})
}

func TestPresenceService_IsPresent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	svc := NewPresenceService(mockParticipants, mocks.NewMockNoticeWriter(ctrl), slog.Default())

	mockParticipants.EXPECT().Exists("ana").Return(true, nil).Times(1)
	mockParticipants.EXPECT().Exists("ghost").Return(false, nil).Times(1)

	present, err := svc.IsPresent("ana")
	req.NoError(err)
	req.True(present)

	present, err = svc.IsPresent("ghost")
	req.NoError(err)
	req.False(present)
}

func TestPresenceService_ListActive(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockParticipants := mocks.NewMockIParticipantRepository(ctrl)
	svc := NewPresenceService(mockParticipants, mocks.NewMockNoticeWriter(ctrl), slog.Default())

	stored := []domain.Participant{
		{Name: "ana", LastSeen: time.Now().UTC()},
		{Name: "bruno", LastSeen: time.Now().UTC().Add(-time.Hour)}, // stale, still listed
	}
	mockParticipants.EXPECT().List().Return(stored, nil).Times(1)

	participants, err := svc.ListActive()
	req.NoError(err)
	req.Equal(stored, participants)
}
