package booking

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

type TimeSlot string

const (
	SlotAM      TimeSlot = "AM"
	SlotPM      TimeSlot = "PM"
	SlotFullDay TimeSlot = "FULL_DAY"
)

func (t TimeSlot) String() string {
	return string(t)
}

func (t TimeSlot) IsValid() bool {
	switch t {
	case SlotAM, SlotPM, SlotFullDay:
		return true
	default:
		return false
	}
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	ts := TimeSlot(s)
	if !ts.IsValid() {
		return "", ErrInvalidTimeSlot
	}
	return ts, nil
}

// Overlaps reports whether two claims on the same seat and date collide.
// FULL_DAY collides with everything; AM and PM only with themselves.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t == other || t == SlotFullDay || other == SlotFullDay
}
