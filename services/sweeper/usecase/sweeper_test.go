package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/tumpangan/internal/pkg/apperrors"
	"github.com/piresc/tumpangan/internal/pkg/models"
	reservationmocks "github.com/piresc/tumpangan/services/reservation/mocks"
	"github.com/piresc/tumpangan/services/sweeper/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		Reservation: models.ReservationConfig{
			MinSeats:           1,
			MaxSeats:           4,
			CreateWindowHours:  3,
			ApproveWindowHours: 3,
			ExpiryWindowHours:  2,
		},
		Sweeper: models.SweeperConfig{
			IntervalSeconds: 60,
			LockTTLSeconds:  55,
			BatchSize:       100,
		},
	}
}

func newTestUC(t *testing.T) (*mocks.MockSweeperRepo, *mocks.MockSweeperGW, *reservationmocks.MockReservationUC, *sweeperUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockSweeperRepo(ctrl)
	mockGW := mocks.NewMockSweeperGW(ctrl)
	mockResUC := reservationmocks.NewMockReservationUC(ctrl)

	uc := NewSweeperUC(testConfig(), mockRepo, mockGW, mockResUC)
	return mockRepo, mockGW, mockResUC, uc.(*sweeperUC)
}

func candidate(departureIn time.Duration) models.SweepCandidate {
	return models.SweepCandidate{
		ReservationID: uuid.New(),
		TripID:        uuid.New(),
		PassengerID:   uuid.New(),
		PaymentID:     uuid.New(),
		PaymentStatus: models.PaymentStatusPending,
		DepartureTime: time.Now().UTC().Add(departureIn),
	}
}

func TestSweepExpiredUnpaid_ExpiresCandidates(t *testing.T) {
	mockRepo, mockGW, _, uc := newTestUC(t)

	c1 := candidate(1 * time.Hour)
	c2 := candidate(90 * time.Minute)

	mockRepo.EXPECT().
		FindExpirableUnpaid(gomock.Any(), gomock.Any(), 100).
		Return([]models.SweepCandidate{c1, c2}, nil)
	mockRepo.EXPECT().ExpireReservation(gomock.Any(), c1).Return(nil)
	mockRepo.EXPECT().ExpireReservation(gomock.Any(), c2).Return(nil)
	mockGW.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	result, err := uc.SweepExpiredUnpaid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned)
	assert.Equal(t, 2, result.Applied)
	assert.Equal(t, 0, result.Failed)
}

func TestSweepExpiredUnpaid_SkipsOutsideWindow(t *testing.T) {
	mockRepo, _, _, uc := newTestUC(t)

	// Departure beyond the expiry window; the time policy skips it even if
	// the query returned it.
	far := candidate(5 * time.Hour)

	mockRepo.EXPECT().
		FindExpirableUnpaid(gomock.Any(), gomock.Any(), 100).
		Return([]models.SweepCandidate{far}, nil)

	result, err := uc.SweepExpiredUnpaid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 0, result.Applied)
}

func TestSweepExpiredUnpaid_CountsFailures(t *testing.T) {
	mockRepo, mockGW, _, uc := newTestUC(t)

	c1 := candidate(1 * time.Hour)
	c2 := candidate(1 * time.Hour)

	mockRepo.EXPECT().
		FindExpirableUnpaid(gomock.Any(), gomock.Any(), 100).
		Return([]models.SweepCandidate{c1, c2}, nil)
	// A concurrent cancellation raced the sweep on the first candidate.
	mockRepo.EXPECT().ExpireReservation(gomock.Any(), c1).
		Return(apperrors.Conflict("reservation was modified concurrently"))
	mockRepo.EXPECT().ExpireReservation(gomock.Any(), c2).Return(nil)
	mockGW.EXPECT().NotifyUser(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishAudit(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.SweepExpiredUnpaid(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Applied)
	assert.Equal(t, 1, result.Failed)
}

func TestSweepExpiredUnpaid_QueryError(t *testing.T) {
	mockRepo, _, _, uc := newTestUC(t)

	mockRepo.EXPECT().
		FindExpirableUnpaid(gomock.Any(), gomock.Any(), 100).
		Return(nil, errors.New("connection refused"))

	_, err := uc.SweepExpiredUnpaid(context.Background())
	require.Error(t, err)
}

func TestSweepExpiredPendingApprovals_DelegatesToBulkRejection(t *testing.T) {
	mockRepo, _, mockResUC, uc := newTestUC(t)

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mockRepo.EXPECT().
		FindPendingApprovalsNearDeparture(gomock.Any(), gomock.Any(), 100).
		Return(ids, nil)
	mockResUC.EXPECT().
		RejectReservations(gomock.Any(), uuid.Nil, ids, true).
		Return(3, nil)

	result, err := uc.SweepExpiredPendingApprovals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scanned)
	assert.Equal(t, 3, result.Applied)
}

func TestSweepExpiredPendingApprovals_EmptyBatch(t *testing.T) {
	mockRepo, _, _, uc := newTestUC(t)

	mockRepo.EXPECT().
		FindPendingApprovalsNearDeparture(gomock.Any(), gomock.Any(), 100).
		Return(nil, nil)

	result, err := uc.SweepExpiredPendingApprovals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Scanned)
}

func TestSweepExpiredPendingApprovals_BatchFailureCounted(t *testing.T) {
	mockRepo, _, mockResUC, uc := newTestUC(t)

	ids := []uuid.UUID{uuid.New()}

	mockRepo.EXPECT().
		FindPendingApprovalsNearDeparture(gomock.Any(), gomock.Any(), 100).
		Return(ids, nil)
	mockResUC.EXPECT().
		RejectReservations(gomock.Any(), uuid.Nil, ids, true).
		Return(0, apperrors.Validation("trip is not active"))

	result, err := uc.SweepExpiredPendingApprovals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 0, result.Applied)
}

func TestRunLocked_SkipsWhenLockHeld(t *testing.T) {
	mockRepo, _, _, uc := newTestUC(t)

	mockRepo.EXPECT().
		AcquireLock(gomock.Any(), "sweeper:lock:unpaid", 55*time.Second).
		Return("", nil)

	called := false
	uc.runLocked(context.Background(), "unpaid", func(context.Context) error {
		called = true
		return nil
	})
	assert.False(t, called)
}

func TestRunLocked_RunsAndReleases(t *testing.T) {
	mockRepo, _, _, uc := newTestUC(t)

	token := uuid.NewString()
	mockRepo.EXPECT().
		AcquireLock(gomock.Any(), "sweeper:lock:unpaid", 55*time.Second).
		Return(token, nil)
	mockRepo.EXPECT().ReleaseLock(gomock.Any(), "sweeper:lock:unpaid", token).Return(nil)

	called := false
	uc.runLocked(context.Background(), "unpaid", func(context.Context) error {
		called = true
		return nil
	})
	assert.True(t, called)
}
