package store

import (
	"sync"

	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/seed"
)

// Directory is the student and faculty roster, populated once from the
// seed dataset. Listings back the admin pages; attendance edits land here
// in memory only and are lost on restart, like the roster itself. No
// pagination, no search.
type Directory struct {
	mu       sync.RWMutex
	students []models.Student
	faculty  []models.Faculty
}

// NewDirectory copies the roster out of the dataset.
func NewDirectory(data *seed.Dataset) *Directory {
	d := &Directory{
		students: make([]models.Student, len(data.Students)),
		faculty:  make([]models.Faculty, len(data.Faculty)),
	}
	for i := range data.Students {
		d.students[i] = *data.Students[i].Clone().(*models.Student)
	}
	for i := range data.Faculty {
		d.faculty[i] = *data.Faculty[i].Clone().(*models.Faculty)
	}
	return d
}

// Students returns the full student roster.
func (d *Directory) Students() []models.Student {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Student, len(d.students))
	for i := range d.students {
		out[i] = *d.students[i].Clone().(*models.Student)
	}
	return out
}

// Faculty returns the full faculty roster.
func (d *Directory) Faculty() []models.Faculty {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.Faculty, len(d.faculty))
	for i := range d.faculty {
		out[i] = *d.faculty[i].Clone().(*models.Faculty)
	}
	return out
}

// StudentByID returns the student with the given id.
func (d *Directory) StudentByID(id string) (models.Student, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.students {
		if d.students[i].ID == id {
			return *d.students[i].Clone().(*models.Student), true
		}
	}
	return models.Student{}, false
}

// FacultyByID returns the faculty member with the given id.
func (d *Directory) FacultyByID(id string) (models.Faculty, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for i := range d.faculty {
		if d.faculty[i].ID == id {
			return *d.faculty[i].Clone().(*models.Faculty), true
		}
	}
	return models.Faculty{}, false
}

// RecordAttendance stores attendance percentages for a course code onto
// the named students' attendance maps. Unknown student ids are skipped;
// the write is total either way.
func (d *Directory) RecordAttendance(courseCode string, entries map[string]float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.students {
		pct, ok := entries[d.students[i].ID]
		if !ok {
			continue
		}
		if d.students[i].Attendance == nil {
			d.students[i].Attendance = make(map[string]float64)
		}
		d.students[i].Attendance[courseCode] = pct
	}
}
