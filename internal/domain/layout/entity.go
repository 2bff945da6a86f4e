package layout

import (
	"errors"
	"fmt"
	"strings"

	"seat-reservation/internal/domain/booking"
)

var (
	ErrNoTables           = errors.New("layout needs at least one table")
	ErrInvalidTableLetter = errors.New("table letters must be single uppercase letters")
	ErrDuplicateTable     = errors.New("table letters must be unique")
	ErrInvalidSeatCount   = errors.New("seats per table must be between 1 and 9")
	ErrInvalidRowWidth    = errors.New("tables per row must be positive")
)

const MaxSeatsPerTable = 9

// Layout is the fixed seating plan: lettered tables, each with the same number of seats.
type Layout struct {
	tableLetters  []string
	seatsPerTable int
	tablesPerRow  int
}

// Row is one visual row of tables, as rendered by a client.
type Row struct {
	Tables []string
}

func NewLayout(tableLetters []string, seatsPerTable, tablesPerRow int) (*Layout, error) {
	letters, err := validateTableLetters(tableLetters)
	if err != nil {
		return nil, err
	}
	if seatsPerTable < 1 || seatsPerTable > MaxSeatsPerTable {
		return nil, ErrInvalidSeatCount
	}
	if tablesPerRow < 1 {
		return nil, ErrInvalidRowWidth
	}

	return &Layout{
		tableLetters:  letters,
		seatsPerTable: seatsPerTable,
		tablesPerRow:  tablesPerRow,
	}, nil
}

// AllSeats lists every seat id table by table: A1..A6, B1..B6, ...
func (l *Layout) AllSeats() []booking.SeatID {
	seats := make([]booking.SeatID, 0, len(l.tableLetters)*l.seatsPerTable)
	for _, letter := range l.tableLetters {
		for n := 1; n <= l.seatsPerTable; n++ {
			seats = append(seats, booking.SeatID(fmt.Sprintf("%s%d", letter, n)))
		}
	}
	return seats
}

func (l *Layout) Contains(seat booking.SeatID) bool {
	if len(seat) != 2 {
		return false
	}
	n := int(seat[1] - '0')
	if n < 1 || n > l.seatsPerTable {
		return false
	}
	for _, letter := range l.tableLetters {
		if letter == seat.Table() {
			return true
		}
	}
	return false
}

func (l *Layout) Rows() []Row {
	rows := make([]Row, 0, (len(l.tableLetters)+l.tablesPerRow-1)/l.tablesPerRow)
	for start := 0; start < len(l.tableLetters); start += l.tablesPerRow {
		end := min(start+l.tablesPerRow, len(l.tableLetters))
		tables := make([]string, end-start)
		copy(tables, l.tableLetters[start:end])
		rows = append(rows, Row{Tables: tables})
	}
	return rows
}

func validateTableLetters(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrNoTables
	}
	seen := make(map[string]struct{}, len(raw))
	letters := make([]string, 0, len(raw))
	for _, r := range raw {
		letter := strings.ToUpper(strings.TrimSpace(r))
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return nil, ErrInvalidTableLetter
		}
		if _, dup := seen[letter]; dup {
			return nil, ErrDuplicateTable
		}
		seen[letter] = struct{}{}
		letters = append(letters, letter)
	}
	return letters, nil
}

func (l *Layout) TableLetters() []string { return append([]string(nil), l.tableLetters...) }
func (l *Layout) SeatsPerTable() int     { return l.seatsPerTable }
func (l *Layout) TablesPerRow() int      { return l.tablesPerRow }
