package enrollments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func meetingAt(sectionID, day string, startHour, startMin, endHour, endMin int) Meeting {
	// Deliberately vary the stored date; only the clock time matters
	base := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	return Meeting{
		SectionID: sectionID,
		Day:       day,
		Start:     base.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:       base.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestOverlaps_StartFallsWithinOther(t *testing.T) {
	a := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)
	b := meetingAt("sec-b", "MONDAY", 10, 30, 12, 0)

	assert.True(t, Overlaps(b, a))
	assert.True(t, Overlaps(a, b))
}

func TestOverlaps_EndFallsWithinOther(t *testing.T) {
	a := meetingAt("sec-a", "TUESDAY", 9, 0, 10, 30)
	b := meetingAt("sec-b", "TUESDAY", 8, 0, 9, 30)

	assert.True(t, Overlaps(a, b))
}

func TestOverlaps_ExactSameSlot(t *testing.T) {
	a := meetingAt("sec-a", "FRIDAY", 14, 0, 15, 0)
	b := meetingAt("sec-b", "FRIDAY", 14, 0, 15, 0)

	assert.True(t, Overlaps(a, b))
}

func TestOverlaps_TouchingEndpointsAreInclusive(t *testing.T) {
	a := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)
	b := meetingAt("sec-b", "MONDAY", 11, 0, 12, 0)

	// b starts exactly when a ends: endpoints count as a clash
	assert.True(t, Overlaps(b, a))
}

func TestOverlaps_SameSectionNeverConflicts(t *testing.T) {
	a := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)
	b := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)

	assert.False(t, Overlaps(a, b))
}

func TestOverlaps_DifferentDay(t *testing.T) {
	a := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)
	b := meetingAt("sec-b", "TUESDAY", 10, 0, 11, 0)

	assert.False(t, Overlaps(a, b))
}

func TestOverlaps_DisjointTimes(t *testing.T) {
	a := meetingAt("sec-a", "WEDNESDAY", 8, 0, 9, 0)
	b := meetingAt("sec-b", "WEDNESDAY", 10, 0, 11, 0)

	assert.False(t, Overlaps(a, b))
	assert.False(t, Overlaps(b, a))
}

func TestOverlaps_IgnoresStoredDate(t *testing.T) {
	a := meetingAt("sec-a", "MONDAY", 10, 0, 11, 0)
	b := Meeting{
		SectionID: "sec-b",
		Day:       "MONDAY",
		// Same clock time on a completely different date
		Start: time.Date(1999, time.July, 4, 10, 30, 0, 0, time.UTC),
		End:   time.Date(1999, time.July, 4, 11, 30, 0, 0, time.UTC),
	}

	assert.True(t, Overlaps(b, a))
}

func TestOverlaps_StrictContainmentNotFlagged(t *testing.T) {
	wide := meetingAt("sec-wide", "MONDAY", 8, 0, 12, 0)
	inner := meetingAt("sec-inner", "MONDAY", 9, 0, 10, 0)

	// The candidate fully surrounds the enrolled meeting, so neither of the
	// candidate's endpoints falls inside it. The endpoint-only check treats
	// this as no clash; the swapped direction is caught normally.
	assert.False(t, Overlaps(wide, inner))
	assert.True(t, Overlaps(inner, wide))
}

func TestConflictsWith(t *testing.T) {
	schedule := []Meeting{
		meetingAt("sec-a", "MONDAY", 9, 0, 10, 0),
		meetingAt("sec-b", "MONDAY", 11, 0, 12, 0),
		meetingAt("sec-c", "TUESDAY", 9, 0, 10, 0),
	}

	candidate := meetingAt("sec-new", "MONDAY", 9, 30, 11, 30)

	conflicts := ConflictsWith(candidate, schedule)
	assert.Equal(t, []string{"sec-a", "sec-b"}, conflicts)
}

func TestConflictsWith_NoClash(t *testing.T) {
	schedule := []Meeting{
		meetingAt("sec-a", "MONDAY", 9, 0, 10, 0),
	}

	candidate := meetingAt("sec-new", "THURSDAY", 9, 0, 10, 0)

	assert.Empty(t, ConflictsWith(candidate, schedule))
}
