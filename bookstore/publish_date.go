package bookstore

import (
	"fmt"
	"time"
)

// PublishDateISOLayout is the layout used by machine-readable renderings of a PublishDate.
const PublishDateISOLayout = "2006-01-02"

// PublishDate is a calendar date without time of day.
//
// The zero value is not a valid date; build one with BuildPublishDate.
type PublishDate struct {
	date time.Time
}

// BuildPublishDate is a factory method for PublishDate.
//
// Day and month are 1-based, the year must have four digits.
// Dates that do not exist in the calendar (like 31-2-2020) are rejected with ErrInvalidPublishDate.
func BuildPublishDate(day, month, year int) (PublishDate, error) {
	if year < 1000 || year > 9999 {
		return PublishDate{}, fmt.Errorf("%w: year %d has not 4 digits", ErrInvalidPublishDate, year)
	}

	if month < 1 || month > 12 {
		return PublishDate{}, fmt.Errorf("%w: month %d is out of range", ErrInvalidPublishDate, month)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Day() != day || int(date.Month()) != month || date.Year() != year {
		return PublishDate{}, fmt.Errorf("%w: day %d does not exist in %d-%d", ErrInvalidPublishDate, day, month, year)
	}

	return PublishDate{date: date}, nil
}

func (d PublishDate) Day() int {
	return d.date.Day()
}

func (d PublishDate) Month() int {
	return int(d.date.Month())
}

func (d PublishDate) Year() int {
	return d.date.Year()
}

// Time returns the date as midnight UTC.
func (d PublishDate) Time() time.Time {
	return d.date
}

func (d PublishDate) IsZero() bool {
	return d.date.IsZero()
}

// ISO returns the date formatted with PublishDateISOLayout.
func (d PublishDate) ISO() string {
	return d.date.Format(PublishDateISOLayout)
}

// String renders the date as day-month-year without padding, e.g. 1-8-1990.
func (d PublishDate) String() string {
	return fmt.Sprintf("%d-%d-%d", d.Day(), d.Month(), d.Year())
}
