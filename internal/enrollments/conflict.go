package enrollments

import "time"

// Meeting is the weekly time block of a section, used for schedule
// conflict checks.
type Meeting struct {
	SectionID string
	Day       string
	Start     time.Time
	End       time.Time
}

// normalizeClock projects a timestamp onto a fixed reference date so that
// sections stored against different dates compare by clock time only.
func normalizeClock(t time.Time) time.Time {
	return time.Date(2000, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// Overlaps reports whether the candidate meeting clashes with another
// meeting on a student's schedule. Two meetings clash when they fall on the
// same day and the candidate starts or ends within the other's time block,
// endpoints inclusive. A section never clashes with itself.
func Overlaps(candidate, other Meeting) bool {
	if candidate.SectionID == other.SectionID {
		return false
	}
	if candidate.Day != other.Day {
		return false
	}

	cs := normalizeClock(candidate.Start)
	ce := normalizeClock(candidate.End)
	os := normalizeClock(other.Start)
	oe := normalizeClock(other.End)

	startsWithin := !cs.Before(os) && !cs.After(oe)
	endsWithin := !ce.Before(os) && !ce.After(oe)

	return startsWithin || endsWithin
}

// ConflictsWith returns the section IDs from schedule that the candidate
// meeting clashes with.
func ConflictsWith(candidate Meeting, schedule []Meeting) []string {
	var conflicts []string
	for _, other := range schedule {
		if Overlaps(candidate, other) {
			conflicts = append(conflicts, other.SectionID)
		}
	}
	return conflicts
}
