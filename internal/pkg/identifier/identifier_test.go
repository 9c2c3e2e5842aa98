package identifier

import (
	"testing"
	"time"
)

func TestAdmin(t *testing.T) {
	tests := []struct {
		seq  int
		want string
	}{
		{1, "ADM001"},
		{12, "ADM012"},
		{345, "ADM345"},
		{1000, "ADM1000"}, // counts past 999 keep their full width
	}
	for _, tt := range tests {
		if got := Admin(tt.seq); got != tt.want {
			t.Errorf("Admin(%d) = %q, want %q", tt.seq, got, tt.want)
		}
	}
}

func TestStudent(t *testing.T) {
	in2024 := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	in2030 := time.Date(2030, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		at   time.Time
		seq  int
		want string
	}{
		{in2024, 5, "STU24005"},
		{in2024, 1, "STU24001"},
		{in2030, 99, "STU30099"},
	}
	for _, tt := range tests {
		if got := Student(tt.at, tt.seq); got != tt.want {
			t.Errorf("Student(%v, %d) = %q, want %q", tt.at.Year(), tt.seq, got, tt.want)
		}
	}
}

func TestTeacher(t *testing.T) {
	in2026 := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	if got := Teacher(in2026, 7); got != "TCH26007" {
		t.Errorf("Teacher(2026, 7) = %q, want TCH26007", got)
	}
}
