package store

import (
	"context"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ActivityRepository is the local journal of wallet operation outcomes.
type ActivityRepository interface {
	// SaveOperation appends op to the journal.
	SaveOperation(ctx context.Context, op models.Operation) error

	// ListOperations returns at most limit entries, newest first.
	ListOperations(ctx context.Context, limit int) ([]models.Operation, error)
}
