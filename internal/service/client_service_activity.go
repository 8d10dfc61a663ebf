package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/internal/store"
	"github.com/MKhiriev/go-fedi-wallet/internal/utils"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

// maxJournalInput is the number of runes of the submitted value kept in the
// journal. Invoices and tokens are long; the prefix is enough to recognise
// them.
const maxJournalInput = 32

type clientActivityService struct {
	repo  store.ActivityRepository
	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewClientActivityService creates the journal service over repo.
func NewClientActivityService(repo store.ActivityRepository, logger *logger.Logger) ClientActivityService {
	return &clientActivityService{
		repo:   repo,
		newID:  utils.NewOperationID,
		now:    time.Now,
		logger: logger,
	}
}

func (s *clientActivityService) Record(ctx context.Context, kind models.OperationKind, input, successMsg string, opErr error) {
	op := models.Operation{
		ID:        s.newID(),
		Kind:      kind,
		Input:     shorten(input, maxJournalInput),
		Status:    models.OperationSucceeded,
		Message:   successMsg,
		CreatedAt: s.now(),
	}
	if opErr != nil {
		op.Status = models.OperationFailed
		op.Message = opErr.Error()
	}

	if err := s.repo.SaveOperation(ctx, op); err != nil {
		s.logger.Err(err).
			Str("func", "clientActivityService.Record").
			Str("op", string(kind)).
			Msg("failed to journal operation")
	}
}

func (s *clientActivityService) Recent(ctx context.Context, limit int) ([]models.Operation, error) {
	ops, err := s.repo.ListOperations(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ops, nil
}

func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
