package slot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate     = errors.New("invalid date format")
	ErrInvalidWallTime = errors.New("invalid wall-clock time")
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time component. Slots and bookings are keyed
// by the date as the customer sees it in the business timezone.
type Date struct {
	value time.Time
}

func NewDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.value.Format(dateLayout)
}

func (d Date) Time() time.Time {
	return d.value
}

func (d Date) IsZero() bool {
	return d.value.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}

// WallTime is a wall-clock time of day in the business timezone, minute
// resolution. The site historically stored both "10:00 AM" and "10:00", so
// parsing accepts 12-hour and 24-hour forms; the canonical form is 24-hour.
type WallTime struct {
	hour   int
	minute int
}

func ParseWallTime(s string) (WallTime, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WallTime{}, ErrInvalidWallTime
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			upper = strings.TrimSpace(strings.TrimSuffix(upper, suffix))
		}
	}

	parts := strings.Split(upper, ":")
	if len(parts) != 2 {
		return WallTime{}, ErrInvalidWallTime
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return WallTime{}, ErrInvalidWallTime
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return WallTime{}, ErrInvalidWallTime
	}

	switch meridiem {
	case "PM":
		if hour < 1 || hour > 12 {
			return WallTime{}, ErrInvalidWallTime
		}
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour < 1 || hour > 12 {
			return WallTime{}, ErrInvalidWallTime
		}
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WallTime{}, ErrInvalidWallTime
	}
	return WallTime{hour: hour, minute: minute}, nil
}

// String returns the canonical 24-hour "15:04" form.
func (w WallTime) String() string {
	return fmt.Sprintf("%02d:%02d", w.hour, w.minute)
}

// Display returns the customer-facing 12-hour form, e.g. "3:04 PM".
func (w WallTime) Display() string {
	meridiem := "AM"
	hour := w.hour
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		meridiem = "PM"
	case hour > 12:
		hour -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, w.minute, meridiem)
}

func (w WallTime) MinutesFromMidnight() int {
	return w.hour*60 + w.minute
}

func (w WallTime) Before(other WallTime) bool {
	return w.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// At anchors the wall-clock time on a calendar date in the given location,
// producing the absolute instant used for calendar events.
func (w WallTime) At(d Date, loc *time.Location) time.Time {
	t := d.Time()
	return time.Date(t.Year(), t.Month(), t.Day(), w.hour, w.minute, 0, 0, loc)
}
