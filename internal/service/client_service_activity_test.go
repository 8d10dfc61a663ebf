package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/mock"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestActivitySvc(t *testing.T) (*clientActivityService, *mock.MockActivityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockActivityRepository(ctrl)

	svc := NewClientActivityService(repo, logger.Nop()).(*clientActivityService)
	svc.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }
	return svc, repo
}

func TestClientActivityService_RecordSuccess(t *testing.T) {
	svc, repo := newTestActivitySvc(t)

	repo.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.Operation) error {
			assert.NotEmpty(t, op.ID)
			assert.Equal(t, models.OperationRedeem, op.Kind)
			assert.Equal(t, models.OperationSucceeded, op.Status)
			assert.Equal(t, "Redeemed!", op.Message)
			assert.Equal(t, "AwEB", op.Input)
			assert.Equal(t, 2026, op.CreatedAt.Year())
			return nil
		})

	svc.Record(context.Background(), models.OperationRedeem, "AwEB", "Redeemed!", nil)
}

func TestClientActivityService_RecordFailureKeepsErrorText(t *testing.T) {
	svc, repo := newTestActivitySvc(t)
	longInvoice := "lnbc" + strings.Repeat("x", 200)

	repo.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, op models.Operation) error {
			assert.Equal(t, models.OperationFailed, op.Status)
			assert.Equal(t, "route not found", op.Message)
			assert.Equal(t, longInvoice[:maxJournalInput]+"...", op.Input)
			return nil
		})

	svc.Record(context.Background(), models.OperationPay, longInvoice, "Paid!", errors.New("route not found"))
}

func TestClientActivityService_RecordSwallowsRepositoryError(t *testing.T) {
	svc, repo := newTestActivitySvc(t)

	repo.EXPECT().SaveOperation(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))

	assert.NotPanics(t, func() {
		svc.Record(context.Background(), models.OperationJoin, "fed11", "Joined!", nil)
	})
}

func TestClientActivityService_Recent(t *testing.T) {
	svc, repo := newTestActivitySvc(t)
	want := []models.Operation{{ID: "b"}, {ID: "a"}}

	repo.EXPECT().ListOperations(gomock.Any(), 2).Return(want, nil)

	got, err := svc.Recent(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "abc", shorten("abc", 3))
	assert.Equal(t, "ab...", shorten("abc", 2))
	assert.Equal(t, "ключ...", shorten("ключевой", 4))
}
