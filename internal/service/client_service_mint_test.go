package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-fedi-wallet/internal/adapter"
	"github.com/MKhiriev/go-fedi-wallet/internal/app"
	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/mock"
	"github.com/MKhiriev/go-fedi-wallet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientMintService_RedeemEcash_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockWalletAdapter(ctrl)
	mockWallet := mock.NewMockClientWalletService(ctrl)
	mockActivity := mock.NewMockClientActivityService(ctrl)
	svc := NewClientMintService(mockAdapter, mockWallet, mockActivity, logger.Nop())

	gomock.InOrder(
		mockAdapter.EXPECT().Reissue(gomock.Any(), models.ReissueRequest{Notes: "AwEBAQ"}).
			Return(models.RedeemResult{AmountMsat: 8000}, nil),
		mockActivity.EXPECT().Record(gomock.Any(), models.OperationRedeem, "AwEBAQ", app.MsgRedeemed, nil),
		mockWallet.EXPECT().RefreshOpen(gomock.Any()).Return(true, nil),
	)

	got, err := svc.RedeemEcash(context.Background(), " AwEBAQ ")

	require.NoError(t, err)
	assert.Equal(t, int64(8), got.Amount().Sats())
}

func TestClientMintService_RedeemEcash_SpentNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockWalletAdapter(ctrl)
	mockWallet := mock.NewMockClientWalletService(ctrl)
	mockActivity := mock.NewMockClientActivityService(ctrl)
	svc := NewClientMintService(mockAdapter, mockWallet, mockActivity, logger.Nop())

	mockAdapter.EXPECT().Reissue(gomock.Any(), gomock.Any()).
		Return(models.RedeemResult{}, fmt.Errorf("%w: %s", adapter.ErrInternalServerError, "notes already spent"))
	mockActivity.EXPECT().Record(gomock.Any(), models.OperationRedeem, "AwEBAQ", "", gomock.Not(nil))

	_, err := svc.RedeemEcash(context.Background(), "AwEBAQ")

	assert.ErrorIs(t, err, ErrWalletRejected)
	assert.Contains(t, err.Error(), "notes already spent")
}

func TestClientMintService_RedeemEcash_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockActivity := mock.NewMockClientActivityService(ctrl)
	svc := NewClientMintService(mock.NewMockWalletAdapter(ctrl), mock.NewMockClientWalletService(ctrl), mockActivity, logger.Nop())

	mockActivity.EXPECT().Record(gomock.Any(), models.OperationRedeem, "", "", ErrEmptyToken)

	_, err := svc.RedeemEcash(context.Background(), "")

	assert.ErrorIs(t, err, ErrEmptyToken)
}
