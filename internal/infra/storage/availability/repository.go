package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const table = "day_availability"

var columns = []string{"date", "times", "staff_count", "max_staff_count"}

// Repository репозиторий записей доступности по датам
type Repository struct {
	db  DBExecutor
	loc *time.Location
}

// NewRepository создает репозиторий; даты из БД приводятся к часовому поясу loc
func NewRepository(db DBExecutor, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.Local
	}
	return &Repository{db: db, loc: loc}
}

// GetAll возвращает все записи по возрастанию даты
func (r *Repository) GetAll(ctx context.Context) ([]domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// GetRange возвращает записи с датами в [from, to] включительно
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"date": dateParam(from)}).
		Where(squirrel.LtOrEq{"date": dateParam(to)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDays(rows)
}

// GetByDate возвращает запись на дату.
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.DayAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"date": dateParam(date)})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	day, err := r.scanDay(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan day: %v", ErrScanRow, err)
	}

	return day, nil
}

// Upsert сохраняет запись на дату, заменяя существующую
func (r *Repository) Upsert(ctx context.Context, day domain.DayAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day = normalize(day)
	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(dateParam(day.Date), pq.Array(toInt64(day.Times)), day.StaffCount, day.MaxStaffCount).
		Suffix("ON CONFLICT (date) DO UPDATE SET " +
			"times = EXCLUDED.times, " +
			"staff_count = EXCLUDED.staff_count, " +
			"max_staff_count = EXCLUDED.max_staff_count, " +
			"updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ReplaceRange удаляет записи с датами в [from, to] и вставляет days.
// Вызывать внутри транзакции, иначе читатели могут увидеть пустой диапазон.
func (r *Repository) ReplaceRange(ctx context.Context, from, to time.Time, days []domain.DayAvailability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.GtOrEq{"date": dateParam(from)}).
		Where(squirrel.LtOrEq{"date": dateParam(to)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRange - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRange - execute delete: %v", ErrExecQuery, err)
	}

	if len(days) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(table).Columns(columns...)
	for _, day := range days {
		day = normalize(day)
		insertBuilder = insertBuilder.Values(dateParam(day.Date), pq.Array(toInt64(day.Times)), day.StaffCount, day.MaxStaffCount)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRange - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRange - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanDay(row rowScanner) (*domain.DayAvailability, error) {
	var (
		date  time.Time
		times pq.Int64Array
		day   domain.DayAvailability
	)

	if err := row.Scan(&date, &times, &day.StaffCount, &day.MaxStaffCount); err != nil {
		return nil, err
	}

	day.Date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, r.loc)
	day.Times = make([]int, len(times))
	for i, t := range times {
		day.Times[i] = int(t)
	}

	day = normalize(day)
	return &day, nil
}

func (r *Repository) scanDays(rows *sql.Rows) ([]domain.DayAvailability, error) {
	days := make([]domain.DayAvailability, 0)

	for rows.Next() {
		day, err := r.scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, *day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanDays - rows error: %v", ErrScanRow, err)
	}

	return days, nil
}

// normalize гарантирует StaffCount >= 0 и MaxStaffCount >= StaffCount
func normalize(day domain.DayAvailability) domain.DayAvailability {
	if day.StaffCount < 0 {
		day.StaffCount = 0
	}
	if day.MaxStaffCount < day.StaffCount {
		day.MaxStaffCount = day.StaffCount
	}
	if day.Times == nil {
		day.Times = []int{}
	}
	return day
}

func dateParam(t time.Time) string {
	return t.Format(domain.DateFormat)
}

func toInt64(times []int) []int64 {
	out := make([]int64, len(times))
	for i, t := range times {
		out[i] = int64(t)
	}
	return out
}
