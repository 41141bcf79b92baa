package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"date",
	"start_at",
	"time",
	"duration_minutes",
	"service",
	"client_name",
	"client_email",
	"client_phone",
	"notes",
	"created_at",
}

// Repository репозиторий записей клиентов
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает репозиторий; даты и время из БД приводятся к часовому поясу loc
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// Create сохраняет запись клиента
func (r *Repository) Create(ctx context.Context, appt domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			appt.ID,
			appt.Date.Format(domain.DateFormat),
			wallClock(appt.Start),
			appt.Time,
			appt.DurationMinutes,
			appt.Service,
			appt.Client.Name,
			appt.Client.Email,
			appt.Client.Phone,
			appt.Notes,
			wallClock(appt.CreatedAt),
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID возвращает запись по идентификатору.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetAll возвращает все записи, отсортированные по времени начала
func (r *Repository) GetAll(ctx context.Context) ([]domain.Appointment, error) {
	return r.list(ctx, "GetAll", psqlbuilder.Select(columns...).From(table))
}

// GetRange возвращает записи с датами в [from, to] включительно
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	return r.list(ctx, "GetRange", psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"date": from.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": to.Format(domain.DateFormat)}))
}

// Delete удаляет запись
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.OrderBy("start_at ASC", "created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, *appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt      domain.Appointment
		date      time.Time
		startAt   time.Time
		notes     sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&date,
		&startAt,
		&appt.Time,
		&appt.DurationMinutes,
		&appt.Service,
		&appt.Client.Name,
		&appt.Client.Email,
		&appt.Client.Phone,
		&notes,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appt.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
	appt.Start = r.fromWallClock(startAt)
	if notes.Valid {
		appt.Notes = &notes.String
	}
	if createdAt.Valid {
		appt.CreatedAt = r.fromWallClock(createdAt.Time)
	}

	return &appt, nil
}

// TIMESTAMP без часового пояса хранит локальное время записи как есть
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func (r *Repository) fromWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), r.loc)
}
