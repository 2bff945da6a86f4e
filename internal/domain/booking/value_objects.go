package booking

import (
	"regexp"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without zone, formatted YYYY-MM-DD.
type Date string

func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", ErrInvalidDate
	}
	return Date(s), nil
}

// DateIn returns the calendar date of t as observed in loc.
func DateIn(t time.Time, loc *time.Location) Date {
	if loc != nil {
		t = t.In(loc)
	}
	return Date(t.Format(DateLayout))
}

func (d Date) String() string {
	return string(d)
}

var seatIDPattern = regexp.MustCompile(`^[A-Z][1-9][0-9]*$`)

// SeatID is a table letter followed by the seat position, e.g. "A1".
type SeatID string

func ParseSeatID(s string) (SeatID, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !seatIDPattern.MatchString(s) {
		return "", ErrInvalidSeatID
	}
	return SeatID(s), nil
}

func (s SeatID) Table() string {
	if s == "" {
		return ""
	}
	return string(s[:1])
}

func (s SeatID) String() string {
	return string(s)
}

// Details is the optional metadata a caller may attach when booking.
type Details struct {
	UserEmail       *string
	UserName        *string
	SpecialRequests *string
	ContactPhone    *string
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// optional trims v, folds line breaks and maps blank to absent.
// Stored rows are newline-delimited, so a field must never contain one.
func optional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(lineBreaks.Replace(*v))
	if s == "" {
		return nil
	}
	return &s
}

func (d Details) normalized() Details {
	return Details{
		UserEmail:       optional(d.UserEmail),
		UserName:        optional(d.UserName),
		SpecialRequests: optional(d.SpecialRequests),
		ContactPhone:    optional(d.ContactPhone),
	}
}
