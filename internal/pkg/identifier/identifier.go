// Package identifier generates the role-prefixed registration numbers used
// as external login identifiers. Numbers are derived from a per-role
// monotonic count: the sequence is the row count at creation time plus one.
package identifier

import (
	"fmt"
	"time"
)

// Admin formats an admin registration number: ADM<nnn>, no year component.
// The first admin ever created is ADM001.
func Admin(seq int) string {
	return fmt.Sprintf("ADM%03d", seq)
}

// Student formats a student registration number: STU<yy><nnn>. The 5th
// student created in 2024 is STU24005.
func Student(t time.Time, seq int) string {
	return fmt.Sprintf("STU%02d%03d", t.Year()%100, seq)
}

// Teacher formats a teacher registration number: TCH<yy><nnn>.
func Teacher(t time.Time, seq int) string {
	return fmt.Sprintf("TCH%02d%03d", t.Year()%100, seq)
}
