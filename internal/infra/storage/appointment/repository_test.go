package appointment

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []interface{}
}

func (f fakeRow) Scan(dest ...interface{}) error {
	for i, v := range f.values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int:
			*d = v.(int)
		case *time.Time:
			*d = v.(time.Time)
		case *sql.NullString:
			*d = v.(sql.NullString)
		case *sql.NullTime:
			*d = v.(sql.NullTime)
		}
	}
	return nil
}

func TestScanAppointment_RestoresWallClock(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	r := NewRepository(nil, loc)

	appt, err := r.scanAppointment(fakeRow{values: []interface{}{
		"8a0c2f57-8a43-4d6b-9c53-1f2b7b8e8a11",
		time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC),
		"1:00pm",
		60,
		"Haircut",
		"Ann",
		"ann@example.com",
		"555",
		sql.NullString{String: "first visit", Valid: true},
		sql.NullTime{Time: time.Date(2025, time.March, 1, 9, 15, 0, 0, time.UTC), Valid: true},
	}})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, loc), appt.Date)
	assert.Equal(t, time.Date(2025, time.March, 10, 13, 0, 0, 0, loc), appt.Start)
	assert.Equal(t, 780, appt.StartMinutes())
	require.NotNil(t, appt.Notes)
	assert.Equal(t, "first visit", *appt.Notes)
	assert.Equal(t, 9, appt.CreatedAt.Hour())
}

func TestWallClock(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*3600)
	in := time.Date(2025, time.March, 10, 9, 30, 0, 0, loc)

	out := wallClock(in)
	assert.Equal(t, time.UTC, out.Location())
	assert.Equal(t, 9, out.Hour())
	assert.Equal(t, 30, out.Minute())
}
