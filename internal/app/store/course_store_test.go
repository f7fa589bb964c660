package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage"
	"github.com/derin/uniportal/internal/storage/memstore"
)

// recordingPublisher captures toast messages for assertions.
type recordingPublisher struct {
	mu       sync.Mutex
	messages []string
}

func (p *recordingPublisher) Success(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, message)
}

func (p *recordingPublisher) last() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}

func newCourseStore(t *testing.T) (*CourseStore, *recordingPublisher, storage.Store) {
	t.Helper()
	st := memstore.New()
	pub := &recordingPublisher{}
	cs := NewCourseStore(context.Background(), st, seed.Default(), pub, "", zerolog.Nop())
	return cs, pub, st
}

func TestCourseStoreSeedsWhenEmpty(t *testing.T) {
	cs, _, st := newCourseStore(t)

	assert.Len(t, cs.Courses(), 4)
	assert.Len(t, cs.Assignments(), 3)

	// Seeding mirrors both collections to storage immediately.
	_, err := st.Get(context.Background(), storage.KeyCourses)
	assert.NoError(t, err)
	_, err = st.Get(context.Background(), storage.KeyAssignments)
	assert.NoError(t, err)
}

func TestAddCourse(t *testing.T) {
	cs, pub, _ := newCourseStore(t)
	stamp := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	cs.now = func() time.Time { return stamp }

	course := cs.AddCourse(context.Background(), dto.CreateCourseRequest{
		CourseID:    "PH301",
		Name:        "Quantum Mechanics",
		Description: "Wave functions and operators.",
	})

	assert.Equal(t, "c1773482400000", course.ID)
	assert.Equal(t, "PH301", course.CourseID)
	assert.NotNil(t, course.EnrolledStudents)
	assert.Empty(t, course.EnrolledStudents)
	assert.Equal(t, "Course added successfully!", pub.last())

	got, ok := cs.CourseByID(course.ID)
	assert.True(t, ok)
	assert.Equal(t, "Quantum Mechanics", got.Name)
}

func TestUpdateCourseMergesOnlyGivenFields(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	name := "Programming Fundamentals"
	cs.UpdateCourse(context.Background(), "c1", dto.UpdateCourseRequest{Name: &name})

	got, ok := cs.CourseByID("c1")
	assert.True(t, ok)
	assert.Equal(t, "Programming Fundamentals", got.Name)
	assert.Equal(t, "CS101", got.CourseID)
	assert.Equal(t, "Course updated successfully!", pub.last())
}

func TestUpdateCourseUnknownIDIsNoop(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	before := cs.Courses()
	name := "Ghost"
	cs.UpdateCourse(context.Background(), "missing", dto.UpdateCourseRequest{Name: &name})

	assert.Equal(t, before, cs.Courses())
	// The notification still fires; callers cannot observe the miss.
	assert.Equal(t, "Course updated successfully!", pub.last())
}

func TestDeleteCourseDoesNotCascade(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	cs.DeleteCourse(context.Background(), "c2")

	_, ok := cs.CourseByID("c2")
	assert.False(t, ok)
	assert.Equal(t, "Course deleted successfully!", pub.last())

	// Assignments keep pointing at the deleted course and stay listable
	// under its old id.
	orphans := cs.CourseAssignments("c2")
	assert.Len(t, orphans, 2)
}

func TestDeleteCourseUnknownIDIsNoop(t *testing.T) {
	cs, _, _ := newCourseStore(t)

	cs.DeleteCourse(context.Background(), "missing")
	assert.Len(t, cs.Courses(), 4)
}

func TestEnrollStudentIsIdempotent(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	cs.EnrollStudent(context.Background(), "c1", "3")
	cs.EnrollStudent(context.Background(), "c1", "3")

	assert.Equal(t, []string{"3"}, cs.StudentsByCourse("c1"))
	assert.Equal(t, "Enrolled in course successfully!", pub.last())
}

func TestUnenrollStudentIsIdempotent(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	cs.UnenrollStudent(context.Background(), "c2", "1")
	cs.UnenrollStudent(context.Background(), "c2", "1")

	assert.Equal(t, []string{"2"}, cs.StudentsByCourse("c2"))
	assert.Equal(t, "Unenrolled from course successfully!", pub.last())
}

func TestAvailableAndEnrolledArePartition(t *testing.T) {
	cs, _, _ := newCourseStore(t)

	enrolled := cs.EnrolledCourses("1")
	available := cs.AvailableCourses("1")

	assert.Len(t, enrolled, 1)
	assert.Equal(t, "c2", enrolled[0].ID)
	assert.Len(t, available, 3)
	for _, c := range available {
		assert.NotEqual(t, "c2", c.ID)
	}

	// Enrolling moves the course from one side to the other.
	cs.EnrollStudent(context.Background(), "c1", "1")
	assert.Len(t, cs.EnrolledCourses("1"), 2)
	assert.Len(t, cs.AvailableCourses("1"), 2)
}

func TestAssignFacultyOverwrites(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	cs.AssignFaculty(context.Background(), "c4", "2")

	got, _ := cs.CourseByID("c4")
	assert.Equal(t, "2", got.FacultyID)
	assert.Equal(t, "Faculty assigned to course successfully!", pub.last())

	assert.Len(t, cs.FacultyCourses("2"), 2)
}

func TestStudentsByCourseUnknownCourse(t *testing.T) {
	cs, _, _ := newCourseStore(t)

	got := cs.StudentsByCourse("missing")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAddAssignmentStampsCreatedAt(t *testing.T) {
	cs, pub, _ := newCourseStore(t)
	stamp := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	cs.now = func() time.Time { return stamp }

	a := cs.AddAssignment(context.Background(), dto.CreateAssignmentRequest{
		CourseID: "c3",
		Title:    "Determinants",
		DueDate:  "2026-04-01",
	})

	assert.Equal(t, "a1773482400000", a.ID)
	assert.Equal(t, "2026-03-14", a.CreatedAt)
	assert.Equal(t, "Assignment added successfully!", pub.last())
}

func TestUpdateAssignmentKeepsCreatedAt(t *testing.T) {
	cs, _, _ := newCourseStore(t)

	due := "2026-01-01"
	cs.UpdateAssignment(context.Background(), "a1", dto.UpdateAssignmentRequest{DueDate: &due})

	var found bool
	for _, a := range cs.Assignments() {
		if a.ID == "a1" {
			found = true
			assert.Equal(t, "2026-01-01", a.DueDate)
			assert.Equal(t, "2025-09-20", a.CreatedAt)
		}
	}
	assert.True(t, found)
}

func TestDeleteAssignment(t *testing.T) {
	cs, pub, _ := newCourseStore(t)

	cs.DeleteAssignment(context.Background(), "a3")

	assert.Len(t, cs.Assignments(), 2)
	assert.Empty(t, cs.CourseAssignments("c3"))
	assert.Equal(t, "Assignment deleted successfully!", pub.last())
}

func TestCourseStoreRehydratesAcrossRestart(t *testing.T) {
	st := memstore.New()
	pub := &recordingPublisher{}
	data := seed.Default()

	cs := NewCourseStore(context.Background(), st, data, pub, "", zerolog.Nop())
	cs.EnrollStudent(context.Background(), "c1", "3")
	cs.DeleteCourse(context.Background(), "c4")

	// A second store over the same backend picks up the mutated state
	// instead of reseeding.
	cs2 := NewCourseStore(context.Background(), st, data, pub, "", zerolog.Nop())
	assert.Len(t, cs2.Courses(), 3)
	assert.Equal(t, []string{"3"}, cs2.StudentsByCourse("c1"))
}

func TestCourseStoreReseedsOnCorruptSnapshot(t *testing.T) {
	st := memstore.New()
	_ = st.Set(context.Background(), storage.KeyCourses, []byte("not json"))

	cs := NewCourseStore(context.Background(), st, seed.Default(), &recordingPublisher{}, "", zerolog.Nop())
	assert.Len(t, cs.Courses(), 4)
}
