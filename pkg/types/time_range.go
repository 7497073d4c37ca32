package types

// TimeRange represents a half-open [Start, End) interval within a single day
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// NewTimeRange парсит и нормализует границы интервала
func NewTimeRange(start, end string) (TimeRange, error) {
	s, err := NewTimeStringFromString(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := NewTimeStringFromString(end)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: s, End: e}, nil
}

// IsZero возвращает true для пустого (нулевой длины) интервала
func (r TimeRange) IsZero() bool {
	return r.Start.Minutes() >= r.End.Minutes()
}

// Overlaps проверяет пересечение с другим полуинтервалом
func (r TimeRange) Overlaps(other TimeRange) bool {
	return Overlap(r.Start, r.End, other.Start, other.End)
}

// Contains возвращает true, если other целиком помещается в r
// Границы включаются: [10:00, 11:00) содержится в [10:00, 12:00)
func (r TimeRange) Contains(other TimeRange) bool {
	return r.Start.Minutes() <= other.Start.Minutes() && other.End.Minutes() <= r.End.Minutes()
}

// String возвращает представление вида "10:00-12:00"
func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
