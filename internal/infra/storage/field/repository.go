package field

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Long0701/PitchSpot-BookingService/internal/domain"
	"github.com/Long0701/PitchSpot-BookingService/pkg/dbmetrics"
	"github.com/Long0701/PitchSpot-BookingService/pkg/psqlbuilder"
	"github.com/Long0701/PitchSpot-BookingService/pkg/types"
)

var fieldColumns = []string{
	"id",
	"name",
	"description",
	"sport_type",
	"address",
	"city",
	"latitude",
	"longitude",
	"hourly_rate",
	"currency",
	"owner_id",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository persists fields and their slot schedules
type Repository struct {
	db DBExecutor
}

// NewRepository creates a field repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a field together with its generated slot horizon.
// Run it inside a transaction so a slot insert failure does not leave a
// field without a schedule.
func (r *Repository) Create(ctx context.Context, field *domain.Field, slotSet []domain.TimeSlot) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("fields").
		Columns(
			"name",
			"description",
			"sport_type",
			"address",
			"city",
			"latitude",
			"longitude",
			"hourly_rate",
			"currency",
			"owner_id",
			"is_active",
		).
		Values(
			field.Name,
			field.Description,
			field.SportType,
			field.Location.Address,
			field.Location.City,
			field.Location.Latitude,
			field.Location.Longitude,
			field.Pricing.HourlyRate,
			field.Pricing.Currency,
			field.OwnerID,
			field.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&field.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	if len(slotSet) > 0 {
		if err := r.insertSlots(ctx, executor, field.ID, slotSet); err != nil {
			return nil, err
		}
	}

	return field, nil
}

func (r *Repository) insertSlots(ctx context.Context, executor DBExecutor, fieldID int64, slotSet []domain.TimeSlot) error {
	insertBuilder := psqlbuilder.Insert("field_slots").
		Columns("field_id", "slot_date", "start_time", "end_time", "is_available", "price")

	for _, slot := range slotSet {
		insertBuilder = insertBuilder.Values(
			fieldID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.IsAvailable,
			slot.Price,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertSlots - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertSlots - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID fetches a field by its ID, active or not
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(fieldColumns...).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	field, err := scanField(row)
	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan field: %v", ErrScanRow, err)
	}

	return field, nil
}

// List fetches active fields matching the filter, paginated
func (r *Repository) List(ctx context.Context, filter domain.FieldsFilter) ([]*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFieldsFilter(psqlbuilder.Select(fieldColumns...).From("fields"), filter).
		OrderBy("created_at DESC")

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	selectBuilder = selectBuilder.
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Field, 0)
	for rows.Next() {
		field, err := scanField(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan field: %v", ErrScanRow, err)
		}
		result = append(result, field)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Count returns the number of active fields matching the filter, for pagination
func (r *Repository) Count(ctx context.Context, filter domain.FieldsFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFieldsFilter(psqlbuilder.Select("COUNT(*)").From("fields"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan total: %v", ErrScanRow, err)
	}

	return total, nil
}

// SetActive flips the field's soft-delete flag. Slots are retained either way.
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("fields").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// GetSlotsByDate fetches a field's slots for one date, hour-ascending.
// Inside a transaction the rows are locked with FOR UPDATE so concurrent
// booking attempts on the same day serialize on them.
func (r *Repository) GetSlotsByDate(ctx context.Context, fieldID int64, date string) ([]domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"slot_date",
		"start_time",
		"end_time",
		"is_available",
		"price",
	).
		From("field_slots").
		Where(squirrel.Eq{"field_id": fieldID, "slot_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// MarkSlotsUnavailable consumes the addressed slots for a booking. The update
// is conditional on each slot still being available, which is the optimistic
// write guarding against double-booking: callers must check that the returned
// count equals the number of keys and treat a shortfall as a conflict.
func (r *Repository) MarkSlotsUnavailable(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString) (int64, error) {
	return r.updateSlots(ctx, "MarkSlotsUnavailable", fieldID, date, startTimes, false, nil, true)
}

// MarkSlotsAvailable releases the addressed slots, used on booking
// cancellation
func (r *Repository) MarkSlotsAvailable(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString) (int64, error) {
	return r.updateSlots(ctx, "MarkSlotsAvailable", fieldID, date, startTimes, true, nil, false)
}

// UpdateSlots applies an owner's administrative edit to the addressed slots:
// availability and, optionally, price. Unconditional within the key set.
func (r *Repository) UpdateSlots(ctx context.Context, fieldID int64, date string, startTimes []types.TimeString, available bool, price *int64) (int64, error) {
	return r.updateSlots(ctx, "UpdateSlots", fieldID, date, startTimes, available, price, false)
}

func (r *Repository) updateSlots(
	ctx context.Context,
	op string,
	fieldID int64,
	date string,
	startTimes []types.TimeString,
	available bool,
	price *int64,
	onlyIfAvailable bool,
) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	starts := make([]string, len(startTimes))
	for i, t := range startTimes {
		starts[i] = t.String()
	}

	updateBuilder := psqlbuilder.Update("field_slots").
		Set("is_available", available).
		Where(squirrel.Eq{"field_id": fieldID, "slot_date": date}).
		Where(squirrel.Expr("start_time = ANY(?)", pq.Array(starts)))

	if price != nil {
		updateBuilder = updateBuilder.Set("price", *price)
	}
	if onlyIfAvailable {
		updateBuilder = updateBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	return rowsAffected, nil
}

// scanner abstracts *sql.Row and *sql.Rows for the shared field scan
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanField(s scanner) (*domain.Field, error) {
	var field domain.Field
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&field.ID,
		&field.Name,
		&field.Description,
		&field.SportType,
		&field.Location.Address,
		&field.Location.City,
		&field.Location.Latitude,
		&field.Location.Longitude,
		&field.Pricing.HourlyRate,
		&field.Pricing.Currency,
		&field.OwnerID,
		&field.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}

func scanSlots(rows *sql.Rows) ([]domain.TimeSlot, error) {
	result := make([]domain.TimeSlot, 0)

	for rows.Next() {
		var slot domain.TimeSlot
		err := rows.Scan(
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.IsAvailable,
			&slot.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		result = append(result, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func applyFieldsFilter(selectBuilder squirrel.SelectBuilder, filter domain.FieldsFilter) squirrel.SelectBuilder {
	selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})

	if filter.City != nil {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"city": "%" + *filter.City + "%"})
	}
	if filter.SportType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport_type": *filter.SportType})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"hourly_rate": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"hourly_rate": *filter.MaxPrice})
	}

	return selectBuilder
}
