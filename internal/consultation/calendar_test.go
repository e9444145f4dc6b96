package consultation

import (
	"testing"
	"time"
)

// TestBuildMonth_GridShape checks placeholder and day-cell counts for every
// month of a leap and a non-leap year.
func TestBuildMonth_GridShape(t *testing.T) {
	for _, year := range []int{2023, 2024} {
		for month := time.January; month <= time.December; month++ {
			grid := BuildMonth(year, month, nil)

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			wantLeading := int(first.Weekday())
			wantDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

			if len(grid.Cells) != wantLeading+wantDays {
				t.Errorf("%d-%02d: expected %d cells, got %d", year, month, wantLeading+wantDays, len(grid.Cells))
				continue
			}
			for i := 0; i < wantLeading; i++ {
				if grid.Cells[i].Day != 0 {
					t.Errorf("%d-%02d: expected cell %d to be a placeholder, got day %d", year, month, i, grid.Cells[i].Day)
				}
			}
			for day := 1; day <= wantDays; day++ {
				cell := grid.Cells[wantLeading+day-1]
				if cell.Day != day {
					t.Errorf("%d-%02d: expected day %d at cell %d, got %d", year, month, day, wantLeading+day-1, cell.Day)
				}
			}
		}
	}
}

func TestBuildMonth_KnownShapes(t *testing.T) {
	// 2024-03-01 is a Friday: 5 placeholders, 31 days.
	grid := BuildMonth(2024, time.March, nil)
	if len(grid.Cells) != 5+31 {
		t.Errorf("Expected 36 cells for March 2024, got %d", len(grid.Cells))
	}

	// 2023-02-01 is a Wednesday: 3 placeholders, 28 days.
	grid = BuildMonth(2023, time.February, nil)
	if len(grid.Cells) != 3+28 {
		t.Errorf("Expected 31 cells for February 2023, got %d", len(grid.Cells))
	}

	// February 2024 is a leap February: 29 days, first is a Thursday.
	grid = BuildMonth(2024, time.February, nil)
	if len(grid.Cells) != 4+29 {
		t.Errorf("Expected 33 cells for February 2024, got %d", len(grid.Cells))
	}
}

func TestBuildMonth_BucketsByDateIgnoringTime(t *testing.T) {
	consultations := []Consultation{
		{ID: "a", ConsultationDate: "2024-03-15T10:00"},
		{ID: "b", ConsultationDate: "2024-03-15T23:59:59"},
		{ID: "c", ConsultationDate: "2024-03-16T00:00:00Z"},
		{ID: "d", ConsultationDate: "2024-04-15T10:00"},
		{ID: "e", ConsultationDate: "no es una fecha"},
	}

	grid := BuildMonth(2024, time.March, consultations)

	leading := 5 // March 2024 starts on a Friday
	day15 := grid.Cells[leading+14]
	if day15.Day != 15 {
		t.Fatalf("Expected day 15 cell, got %d", day15.Day)
	}
	if len(day15.Consultations) != 2 {
		t.Fatalf("Expected 2 consultations on day 15, got %d", len(day15.Consultations))
	}
	// Insertion order within the bucket.
	if day15.Consultations[0].ID != "a" || day15.Consultations[1].ID != "b" {
		t.Errorf("Expected insertion order [a b], got [%s %s]", day15.Consultations[0].ID, day15.Consultations[1].ID)
	}

	day16 := grid.Cells[leading+15]
	if len(day16.Consultations) != 1 || day16.Consultations[0].ID != "c" {
		t.Errorf("Expected only c on day 16, got %+v", day16.Consultations)
	}

	// The April consultation and the unparseable date land nowhere in March.
	total := 0
	for _, cell := range grid.Cells {
		total += len(cell.Consultations)
	}
	if total != 3 {
		t.Errorf("Expected 3 bucketed consultations in March, got %d", total)
	}
}

func TestBuildMonth_ConsultationAppearsInExactlyOneCell(t *testing.T) {
	consultations := []Consultation{{ID: "a", ConsultationDate: "2024-03-15T10:00"}}
	grid := BuildMonth(2024, time.March, consultations)

	found := 0
	for _, cell := range grid.Cells {
		for _, c := range cell.Consultations {
			if c.ID == "a" {
				found++
				if cell.Day != 15 {
					t.Errorf("Expected consultation in day 15, found it in day %d", cell.Day)
				}
			}
		}
	}
	if found != 1 {
		t.Errorf("Expected consultation in exactly one cell, found %d", found)
	}
}

func TestParseDate(t *testing.T) {
	testCases := []struct {
		value string
		ok    bool
	}{
		{"2024-03-15T10:00:00.000Z", true},
		{"2024-03-15T10:00:00Z", true},
		{"2024-03-15T10:00:00", true},
		{"2024-03-15T10:00", true},
		{"2024-03-15", true},
		{"15/03/2024", false},
		{"", false},
	}

	for _, tc := range testCases {
		ts, ok := ParseDate(tc.value)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q): expected ok=%v, got %v", tc.value, tc.ok, ok)
			continue
		}
		if ok && (ts.Year() != 2024 || ts.Month() != time.March || ts.Day() != 15) {
			t.Errorf("ParseDate(%q): unexpected date %v", tc.value, ts)
		}
	}
}
