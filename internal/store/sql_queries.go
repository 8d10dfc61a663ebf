package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-fedi-wallet/models"
)

const operationsTable = "operations"

// MaxListLimit is the largest page of journal entries returned at once.
const MaxListLimit = 100

var operationColumns = []string{"id", "kind", "input", "status", "message", "created_at"}

// sqlite uses "?" placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildInsertOperationQuery(op models.Operation) (string, []any, error) {
	query, args, err := qb.
		Insert(operationsTable).
		Columns(operationColumns...).
		Values(op.ID, string(op.Kind), op.Input, string(op.Status), op.Message, op.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListOperationsQuery(limit int) (string, []any, error) {
	if limit <= 0 || limit > MaxListLimit {
		return "", nil, ErrInvalidLimit
	}

	query, args, err := qb.
		Select(operationColumns...).
		From(operationsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
