package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/derin/uniportal/internal/seed"
)

func TestDirectoryListsRoster(t *testing.T) {
	d := NewDirectory(seed.Default())

	assert.Len(t, d.Students(), 3)
	assert.Len(t, d.Faculty(), 2)

	student, ok := d.StudentByID("2")
	assert.True(t, ok)
	assert.Equal(t, "Rahul Verma", student.Name)

	_, ok = d.StudentByID("missing")
	assert.False(t, ok)
}

func TestDirectoryReturnsCopies(t *testing.T) {
	d := NewDirectory(seed.Default())

	students := d.Students()
	students[0].Name = "Mutated"
	students[0].Attendance["CS102"] = 1

	fresh, _ := d.StudentByID("1")
	assert.Equal(t, "Anita Desai", fresh.Name)
	assert.Equal(t, float64(88), fresh.Attendance["CS102"])
}

func TestRecordAttendance(t *testing.T) {
	d := NewDirectory(seed.Default())

	d.RecordAttendance("CS101", map[string]float64{
		"1":       95,
		"3":       80,
		"unknown": 50, // skipped
	})

	s1, _ := d.StudentByID("1")
	assert.Equal(t, float64(95), s1.Attendance["CS101"])
	// Existing entries for other courses are untouched.
	assert.Equal(t, float64(88), s1.Attendance["CS102"])

	s3, _ := d.StudentByID("3")
	assert.Equal(t, float64(80), s3.Attendance["CS101"])
}
