package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/zvz23/valuation-app-sub001/internal/utils"
	"github.com/zvz23/valuation-app-sub001/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordTableName = "valuation.valuation_records"

var recordColumns = utils.StructTagValues(types.ValuationRecord{})

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

func (r *RecordRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *RecordRepository) Record(ctx context.Context, id string) (*types.ValuationRecord, error) {

	query, args, err := psql().Select(recordColumns...).From(recordTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record query: %w", err)
	}

	var record = new(types.ValuationRecord)
	err = pgxscan.Get(ctx, r.pool, record, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrRecordNotFound
		}
		return nil, err
	}

	return record, nil
}

func (r *RecordRepository) Records(ctx context.Context) ([]*types.ValuationRecord, error) {

	query, args, err := psql().Select(recordColumns...).From(recordTableName).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate records query: %w", err)
	}

	var records = make([]*types.ValuationRecord, 0)
	err = pgxscan.Select(ctx, r.pool, &records, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	return records, nil
}

// UpsertRecord writes the provided section columns for id, creating the
// record when absent. Sections not present in the map are left untouched
// by the ON CONFLICT update, which is what gives partial updates their
// top-level merge semantics.
func (r *RecordRepository) UpsertRecord(ctx context.Context, id string, sections map[string]any) (*types.ValuationRecord, error) {

	now := time.Now().UTC()

	insertMap := map[string]any{
		"id":         id,
		"created_at": now,
		"updated_at": now,
	}
	updateMap := map[string]any{
		"updated_at": now,
	}
	for column, value := range sections {
		insertMap[column] = value
		updateMap[column] = value
	}

	returning := "RETURNING " + strings.Join(recordColumns, ", ")

	query, args, err := psql().
		Insert(recordTableName).
		SetMap(insertMap).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + buildUpdateClause(updateMap) + " " + returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate upsert query: %w", err)
	}

	var record = new(types.ValuationRecord)
	err = pgxscan.Get(ctx, r.pool, record, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert record: %w", err)
	}

	return record, nil
}

// UpdatePhotos replaces only the photos column for an existing record.
func (r *RecordRepository) UpdatePhotos(ctx context.Context, id string, photos types.Photos) error {

	query, args, err := psql().
		Update(recordTableName).
		Set("photos", photos).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate photos update query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update photos: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrRecordNotFound
	}

	return nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, id string) error {

	query, args, err := psql().
		Delete(recordTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate delete query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrRecordNotFound
	}

	return nil
}
