package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fedi-wallet/internal/logger"
	"github.com/MKhiriev/go-fedi-wallet/models"
)

// activityRepository is the sqlite-backed implementation of
// [ActivityRepository] over the "operations" table.
type activityRepository struct {
	*DB
	logger *logger.Logger
}

// NewActivityRepository constructs an [ActivityRepository] backed by db.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveOperation implements [ActivityRepository].
func (a *activityRepository) SaveOperation(ctx context.Context, op models.Operation) error {
	log := a.logger.GetChildLogger()

	query, args, err := buildInsertOperationQuery(op)
	if err != nil {
		log.Err(err).Str("func", "activityRepository.SaveOperation").Msg("failed to create query")
		return err
	}

	result, err := a.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "activityRepository.SaveOperation").
			Str("id", op.ID).
			Str("kind", string(op.Kind)).
			Msg("failed to insert operation")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOperationNotSaved
	}

	return nil
}

// ListOperations implements [ActivityRepository].
func (a *activityRepository) ListOperations(ctx context.Context, limit int) ([]models.Operation, error) {
	log := a.logger.GetChildLogger()

	query, args, err := buildListOperationsQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "activityRepository.ListOperations").Int("limit", limit).Msg("failed to create query")
		return nil, err
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "activityRepository.ListOperations").Msg("failed to query operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	operations := make([]models.Operation, 0, limit)
	for rows.Next() {
		var (
			op     models.Operation
			kind   string
			status string
		)
		if err = rows.Scan(&op.ID, &kind, &op.Input, &status, &op.Message, &op.CreatedAt); err != nil {
			log.Err(err).Str("func", "activityRepository.ListOperations").Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		op.Kind = models.OperationKind(kind)
		op.Status = models.OperationStatus(status)
		operations = append(operations, op)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return operations, nil
}
