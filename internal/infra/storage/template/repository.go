package template

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

const table = "weekly_templates"

// Repository хранит недельный шаблон, из которого развёрнута доступность на год.
// Нужен, чтобы восстановить потолок staffCount при отмене записи на дату без записи доступности.
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save заменяет шаблон года
func (r *Repository) Save(ctx context.Context, year int, tmpl domain.WeeklyTemplate) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"year": year}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute delete: %v", ErrExecQuery, err)
	}

	if len(tmpl) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(table).
		Columns("year", "day", "is_open", "start_minutes", "end_minutes", "staff_count")
	for _, d := range tmpl {
		insertBuilder = insertBuilder.Values(year, string(d.Day), d.IsOpen, d.Start, d.End, d.StaffCount)
	}

	query, args, err = insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByYear возвращает шаблон года, упорядоченный с понедельника
func (r *Repository) GetByYear(ctx context.Context, year int) (domain.WeeklyTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day", "is_open", "start_minutes", "end_minutes", "staff_count").
		From(table).
		Where(squirrel.Eq{"year": year}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByYear - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByYear - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tmpl := make(domain.WeeklyTemplate, 0, len(domain.WeekOrder))
	for rows.Next() {
		var (
			day string
			d   domain.DayTemplate
		)
		if err := rows.Scan(&day, &d.IsOpen, &d.Start, &d.End, &d.StaffCount); err != nil {
			return nil, fmt.Errorf("%w: GetByYear - scan row: %v", ErrScanRow, err)
		}

		weekday, err := domain.ParseWeekday(day)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByYear - %v", ErrCorruptedTemplate, err)
		}
		d.Day = weekday
		tmpl = append(tmpl, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByYear - rows error: %v", ErrScanRow, err)
	}

	if len(tmpl) == 0 {
		return nil, ErrTemplateNotFound
	}

	return tmpl.Normalized(), nil
}
