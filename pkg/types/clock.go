package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	MinutesPerDay  = 24 * 60
	minutesPerHour = 60
)

var (
	// ErrParse возвращается, когда строка не соответствует формату "h:mmam" / "h:mm pm"
	ErrParse = errors.New("types: invalid clock time string")

	// ErrOutOfRange возвращается, когда значение не является временем суток
	ErrOutOfRange = errors.New("types: clock time out of range")
)

var clockPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)$`)

// MinutesToTimeString converts minutes since midnight into a 12-hour clock string.
// Hour 0 is shown as 12, minutes are zero-padded: 540 -> "9:00am", 780 -> "1:00pm".
func MinutesToTimeString(total int) string {
	hours := total / minutesPerHour
	minutes := total % minutesPerHour

	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}

	hour12 := hours % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d%s", hour12, minutes, suffix)
}

// TimeStringToMinutes parses a 12-hour clock string into minutes since midnight.
// The match is case-insensitive and allows whitespace before the suffix only;
// leading or trailing whitespace is rejected. Only the pattern is checked: "13:00pm" yields 1500.
func TimeStringToMinutes(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hours != 12 {
			hours += 12
		}
	case "am":
		if hours == 12 {
			hours = 0
		}
	}

	return hours*minutesPerHour + minutes, nil
}

// ParseClockTime строгий вариант TimeStringToMinutes для входных данных API:
// обрезает пробелы по краям и требует, чтобы результат был реальным временем суток.
func ParseClockTime(s string) (int, error) {
	s = strings.TrimSpace(s)
	total, err := TimeStringToMinutes(s)
	if err != nil {
		return 0, err
	}
	if err := ValidateClockRange(s); err != nil {
		return 0, err
	}
	return total, nil
}

// ValidateClockRange проверяет, что час в диапазоне 1..12, а минуты 0..59
func ValidateClockRange(s string) error {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return fmt.Errorf("%w: %q", ErrParse, s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours < 1 || hours > 12 || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return nil
}
