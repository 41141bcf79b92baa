package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// QueryDate разбирает необязательный query параметр в формате YYYY-MM-DD.
// Отсутствующий параметр возвращает nil без ошибки.
func QueryDate(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// QueryInt разбирает необязательный целочисленный query параметр, 0 если не задан
func QueryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
