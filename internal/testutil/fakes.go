// Package testutil содержит in-memory реализации репозиториев и инфраструктуры для тестов use case.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/availability"
	templateRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/template"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/events"
	"github.com/m04kA/SMC-CalendarService/pkg/datelock"
)

// FixedClock провайдер времени с фиксированным значением
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// NopLogger логгер, который ничего не пишет
type NopLogger struct{}

func (NopLogger) Info(string, ...interface{})  {}
func (NopLogger) Warn(string, ...interface{})  {}
func (NopLogger) Error(string, ...interface{}) {}

// TxManager выполняет функцию без транзакции, но откатывает хранилище при ошибке
type TxManager struct {
	Store *Store
	Calls int
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	if m.Store == nil {
		return fn(ctx)
	}

	snapshot := m.Store.snapshot()
	if err := fn(ctx); err != nil {
		m.Store.restore(snapshot)
		return err
	}
	return nil
}

// Locker учитывает полученные ключи поверх локальной блокировки
type Locker struct {
	inner *datelock.LocalLocker
	mu    sync.Mutex
	Keys  []string
	Err   error
}

func NewLocker() *Locker {
	return &Locker{inner: datelock.NewLocalLocker()}
}

func (l *Locker) Lock(ctx context.Context, key string) (datelock.Unlock, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	l.mu.Lock()
	l.Keys = append(l.Keys, key)
	l.mu.Unlock()
	return l.inner.Lock(ctx, key)
}

// Publisher запоминает опубликованные события
type Publisher struct {
	mu     sync.Mutex
	Events []events.Event
	Err    error
}

func (p *Publisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, event)
	return nil
}

// Metrics считает вызовы метрик
type Metrics struct {
	Booked     int
	Cancelled  int
	Rejections map[string]int
	Expanded   int
}

func (m *Metrics) IncAppointmentsBooked()    { m.Booked++ }
func (m *Metrics) IncAppointmentsCancelled() { m.Cancelled++ }
func (m *Metrics) AddDaysExpanded(n int)     { m.Expanded += n }
func (m *Metrics) IncBookingRejected(reason string) {
	if m.Rejections == nil {
		m.Rejections = make(map[string]int)
	}
	m.Rejections[reason]++
}

// Store in-memory хранилище с семантикой postgres-репозиториев
type Store struct {
	mu           sync.Mutex
	Days         map[string]domain.DayAvailability
	Appointments map[string]domain.Appointment
	Templates    map[int]domain.WeeklyTemplate
	Err          error // если задано, любой вызов возвращает ошибку
}

func NewStore() *Store {
	return &Store{
		Days:         make(map[string]domain.DayAvailability),
		Appointments: make(map[string]domain.Appointment),
		Templates:    make(map[int]domain.WeeklyTemplate),
	}
}

func key(t time.Time) string { return t.Format(domain.DateFormat) }

type storeSnapshot struct {
	days         map[string]domain.DayAvailability
	appointments map[string]domain.Appointment
	templates    map[int]domain.WeeklyTemplate
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		days:         make(map[string]domain.DayAvailability, len(s.Days)),
		appointments: make(map[string]domain.Appointment, len(s.Appointments)),
		templates:    make(map[int]domain.WeeklyTemplate, len(s.Templates)),
	}
	for k, v := range s.Days {
		snap.days[k] = v.Clone()
	}
	for k, v := range s.Appointments {
		snap.appointments[k] = v
	}
	for k, v := range s.Templates {
		snap.templates[k] = v
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Days = snap.days
	s.Appointments = snap.appointments
	s.Templates = snap.templates
}

// PutDay кладёт запись доступности
func (s *Store) PutDay(day domain.DayAvailability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Days[key(day.Date)] = day.Clone()
}

// Day возвращает запись доступности на дату
func (s *Store) Day(date time.Time) (domain.DayAvailability, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.Days[key(date)]
	return d.Clone(), ok
}

// Availability реализация репозитория доступности
type Availability struct{ S *Store }

func (a Availability) GetAll(ctx context.Context) ([]domain.DayAvailability, error) {
	return a.GetRange(ctx, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (a Availability) GetRange(_ context.Context, from, to time.Time) ([]domain.DayAvailability, error) {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return nil, a.S.Err
	}

	out := make([]domain.DayAvailability, 0)
	for k, d := range a.S.Days {
		if k >= key(from) && k <= key(to) {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (a Availability) GetByDate(_ context.Context, date time.Time) (*domain.DayAvailability, error) {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return nil, a.S.Err
	}
	d, ok := a.S.Days[key(date)]
	if !ok {
		return nil, availabilityRepo.ErrNotFound
	}
	c := d.Clone()
	return &c, nil
}

func (a Availability) Upsert(_ context.Context, day domain.DayAvailability) error {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return a.S.Err
	}
	a.S.Days[key(day.Date)] = day.Clone()
	return nil
}

func (a Availability) ReplaceRange(_ context.Context, from, to time.Time, days []domain.DayAvailability) error {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return a.S.Err
	}
	for k := range a.S.Days {
		if k >= key(from) && k <= key(to) {
			delete(a.S.Days, k)
		}
	}
	for _, d := range days {
		a.S.Days[key(d.Date)] = d.Clone()
	}
	return nil
}

// Appointments реализация репозитория записей клиентов
type Appointments struct{ S *Store }

func (a Appointments) Create(_ context.Context, appt domain.Appointment) error {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return a.S.Err
	}
	a.S.Appointments[appt.ID] = appt
	return nil
}

func (a Appointments) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return nil, a.S.Err
	}
	appt, ok := a.S.Appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return &appt, nil
}

func (a Appointments) GetAll(ctx context.Context) ([]domain.Appointment, error) {
	return a.GetRange(ctx, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (a Appointments) GetRange(_ context.Context, from, to time.Time) ([]domain.Appointment, error) {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return nil, a.S.Err
	}
	out := make([]domain.Appointment, 0)
	for _, appt := range a.S.Appointments {
		if k := key(appt.Date); k >= key(from) && k <= key(to) {
			out = append(out, appt)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (a Appointments) Delete(_ context.Context, id string) error {
	a.S.mu.Lock()
	defer a.S.mu.Unlock()
	if a.S.Err != nil {
		return a.S.Err
	}
	if _, ok := a.S.Appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(a.S.Appointments, id)
	return nil
}

// Templates реализация репозитория шаблонов
type Templates struct{ S *Store }

func (t Templates) Save(_ context.Context, year int, tmpl domain.WeeklyTemplate) error {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	if t.S.Err != nil {
		return t.S.Err
	}
	t.S.Templates[year] = append(domain.WeeklyTemplate(nil), tmpl...)
	return nil
}

func (t Templates) GetByYear(_ context.Context, year int) (domain.WeeklyTemplate, error) {
	t.S.mu.Lock()
	defer t.S.mu.Unlock()
	if t.S.Err != nil {
		return nil, t.S.Err
	}
	tmpl, ok := t.S.Templates[year]
	if !ok {
		return nil, templateRepo.ErrTemplateNotFound
	}
	return tmpl, nil
}

// WeekdayTemplate будни 9:00-17:00, выходные закрыты
func WeekdayTemplate(staff int) domain.WeeklyTemplate {
	tmpl := make(domain.WeeklyTemplate, 0, len(domain.WeekOrder))
	for _, day := range domain.WeekOrder {
		open := day != domain.Saturday && day != domain.Sunday
		d := domain.DayTemplate{Day: day, IsOpen: open}
		if open {
			d.Start, d.End, d.StaffCount = 540, 1020, staff
		}
		tmpl = append(tmpl, d)
	}
	return tmpl
}
