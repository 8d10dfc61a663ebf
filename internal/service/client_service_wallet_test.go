// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/mock"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestWalletSvc wires a wallet service to a mocked adapter and journal and
// a real balance hub.
func newTestWalletSvc(t *testing.T, ctrl *gomock.Controller) (
	*clientWalletService,
	*mock.MockWalletAdapter,
	*mock.MockClientActivityService,
	ClientBalanceService,
) {
	t.Helper()
	mockAdapter := mock.NewMockWalletAdapter(ctrl)
	mockActivity := mock.NewMockClientActivityService(ctrl)
	hub := NewClientBalanceService(logger.Nop())

	svc := NewClientWalletService(mockAdapter, hub, mockActivity, logger.Nop()).(*clientWalletService)
	return svc, mockAdapter, mockActivity, hub
}

var joinedInfo = models.WalletInfo{
	"fed-a": {FederationID: "fed-a", TotalAmountMsat: 42_000},
}

// ── RefreshOpen ──────────────────────────────────────────────────────────────

func TestClientWalletService_RefreshOpen_ConcurrentCallsPublishInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, hub := newTestWalletSvc(t, ctrl)

	var published []models.Amount
	var mu sync.Mutex
	unsubscribe := hub.SubscribeBalance(func(a models.Amount) {
		mu.Lock()
		published = append(published, a)
		mu.Unlock()
	})
	defer unsubscribe()

	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	var infoCalls atomic.Int32

	older := models.WalletInfo{"fed-a": {FederationID: "fed-a", TotalAmountMsat: 1_000}}
	newer := models.WalletInfo{"fed-a": {FederationID: "fed-a", TotalAmountMsat: 2_000}}

	mockAdapter.EXPECT().Info(gomock.Any()).DoAndReturn(func(context.Context) (models.WalletInfo, error) {
		if infoCalls.Add(1) == 1 {
			close(firstEntered)
			<-releaseFirst
			return older, nil
		}
		return newer, nil
	}).Times(2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = svc.RefreshOpen(context.Background())
	}()
	<-firstEntered

	go func() {
		defer wg.Done()
		_, _ = svc.RefreshOpen(context.Background())
	}()

	// the second refresh must not read Info while the first one is pending
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), infoCalls.Load())

	close(releaseFirst)
	wg.Wait()

	balance, known := hub.Balance()
	require.True(t, known)
	assert.Equal(t, models.Amount(2_000), balance, "the newest reply wins")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []models.Amount{1_000, 2_000}, published)
}

func TestClientWalletService_RefreshOpen_Joined(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, hub := newTestWalletSvc(t, ctrl)

	mockAdapter.EXPECT().Info(gomock.Any()).Return(joinedInfo, nil)

	open, err := svc.RefreshOpen(context.Background())

	require.NoError(t, err)
	assert.True(t, open)
	assert.True(t, svc.IsOpen())
	balance, known := hub.Balance()
	assert.True(t, known)
	assert.Equal(t, int64(42), balance.Sats())
}

func TestClientWalletService_RefreshOpen_NotJoined(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, hub := newTestWalletSvc(t, ctrl)

	mockAdapter.EXPECT().Info(gomock.Any()).Return(models.WalletInfo{}, nil)

	open, err := svc.RefreshOpen(context.Background())

	require.NoError(t, err)
	assert.False(t, open)
	balance, known := hub.Balance()
	assert.True(t, known)
	assert.Zero(t, balance)
}

func TestClientWalletService_RefreshOpen_ErrorKeepsCachedFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, _, _ := newTestWalletSvc(t, ctrl)
	svc.open.Store(true)

	mockAdapter.EXPECT().Info(gomock.Any()).
		Return(nil, fmt.Errorf("info request: %w: %w", adapter.ErrDaemonUnreachable, errors.New("refused")))

	open, err := svc.RefreshOpen(context.Background())

	assert.ErrorIs(t, err, ErrWalletUnreachable)
	assert.True(t, open)
	assert.True(t, svc.IsOpen())
}

// ── JoinFederation ───────────────────────────────────────────────────────────

func TestClientWalletService_JoinFederation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockActivity, _ := newTestWalletSvc(t, ctrl)
	ctx := context.Background()

	want := models.JoinResult{ThisFederationID: "fed-a", FederationIDs: []string{"fed-a"}}

	gomock.InOrder(
		mockAdapter.EXPECT().Join(ctx, models.JoinRequest{InviteCode: "fed11abc"}).Return(want, nil),
		mockActivity.EXPECT().Record(ctx, models.OperationJoin, "fed11abc", app.MsgJoined, nil),
		mockAdapter.EXPECT().Info(ctx).Return(joinedInfo, nil),
	)

	got, err := svc.JoinFederation(ctx, "  fed11abc\n")

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.True(t, svc.IsOpen())
}

func TestClientWalletService_JoinFederation_OpenEvenIfRefreshFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockActivity, _ := newTestWalletSvc(t, ctrl)

	mockAdapter.EXPECT().Join(gomock.Any(), gomock.Any()).Return(models.JoinResult{ThisFederationID: "fed-a"}, nil)
	mockActivity.EXPECT().Record(gomock.Any(), models.OperationJoin, gomock.Any(), app.MsgJoined, nil)
	mockAdapter.EXPECT().Info(gomock.Any()).Return(nil, adapter.ErrDaemonUnreachable)

	_, err := svc.JoinFederation(context.Background(), "fed11abc")

	require.NoError(t, err)
	assert.True(t, svc.IsOpen())
}

func TestClientWalletService_JoinFederation_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockActivity, _ := newTestWalletSvc(t, ctrl)

	mockAdapter.EXPECT().Join(gomock.Any(), gomock.Any()).
		Return(models.JoinResult{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "Invalid invite code"))
	mockActivity.EXPECT().Record(gomock.Any(), models.OperationJoin, "garbage", "", gomock.Any()).
		Do(func(_ context.Context, _ models.OperationKind, _, _ string, opErr error) {
			assert.ErrorIs(t, opErr, ErrWalletRejected)
		})

	_, err := svc.JoinFederation(context.Background(), "garbage")

	assert.ErrorIs(t, err, ErrWalletRejected)
	assert.Contains(t, err.Error(), "Invalid invite code")
	assert.False(t, svc.IsOpen())
}

func TestClientWalletService_JoinFederation_EmptyCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter, mockActivity, _ := newTestWalletSvc(t, ctrl)

	mockAdapter.EXPECT().Join(gomock.Any(), gomock.Any()).Times(0)
	mockActivity.EXPECT().Record(gomock.Any(), models.OperationJoin, "", "", ErrEmptyInviteCode)

	_, err := svc.JoinFederation(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyInviteCode)
	assert.False(t, svc.IsOpen())
}
