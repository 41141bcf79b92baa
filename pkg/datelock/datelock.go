package datelock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLockTimeout возвращается, если блокировку не удалось получить за отведённое время
	ErrLockTimeout = errors.New("datelock: lock acquisition timed out")

	// ErrLockLost возвращается при освобождении блокировки, которая уже истекла или перехвачена
	ErrLockLost = errors.New("datelock: lock no longer held")
)

// Unlock освобождает полученную блокировку
type Unlock func(ctx context.Context) error

// Key ключ блокировки для календарной даты
func Key(date time.Time) string {
	return "date:" + date.Format("2006-01-02")
}

// YearKey ключ блокировки для целого года (пересохранение шаблона)
func YearKey(year int) string {
	return fmt.Sprintf("year:%d", year)
}
