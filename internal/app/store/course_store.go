package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/pkg/notify"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage"
)

// CourseStore owns the course and assignment collections. All operations
// are synchronous and total: a mutation that matches nothing silently does
// nothing, and every mutation ends with a transient success notification
// regardless. Each mutation mirrors the affected collection to durable
// storage, strictly after the in-memory update.
//
// Deletes do not cascade. Removing a course leaves its assignments and any
// facultyId/enrolledStudents back-references dangling; that is the
// documented contract, not an oversight to fix here.
type CourseStore struct {
	mu       sync.RWMutex
	storage  storage.Store
	notifier notify.Publisher
	logger   zerolog.Logger

	coursesKey     string
	assignmentsKey string

	// now is swappable so tests control generated ids and stamps.
	now func() time.Time

	courses     []models.Course
	assignments []models.Assignment
}

// NewCourseStore builds a CourseStore, rehydrating both collections from
// storage or seeding them from the dataset when no state exists yet.
func NewCourseStore(ctx context.Context, st storage.Store, data *seed.Dataset, notifier notify.Publisher, keyPrefix string, logger zerolog.Logger) *CourseStore {
	s := &CourseStore{
		storage:        st,
		notifier:       notifier,
		logger:         logger,
		coursesKey:     keyPrefix + storage.KeyCourses,
		assignmentsKey: keyPrefix + storage.KeyAssignments,
		now:            time.Now,
	}
	s.rehydrate(ctx, data)
	return s
}

func (s *CourseStore) rehydrate(ctx context.Context, data *seed.Dataset) {
	if blob, err := s.storage.Get(ctx, s.coursesKey); err == nil {
		if err := json.Unmarshal(blob, &s.courses); err != nil {
			s.logger.Warn().Err(err).Msg("Persisted courses are unreadable, reseeding")
			s.courses = nil
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to read persisted courses")
	}
	if s.courses == nil {
		s.courses = make([]models.Course, len(data.Courses))
		for i, c := range data.Courses {
			s.courses[i] = c.Clone()
		}
		s.persistCourses(ctx)
		s.logger.Info().Int("count", len(s.courses)).Msg("Courses seeded")
	}

	if blob, err := s.storage.Get(ctx, s.assignmentsKey); err == nil {
		if err := json.Unmarshal(blob, &s.assignments); err != nil {
			s.logger.Warn().Err(err).Msg("Persisted assignments are unreadable, reseeding")
			s.assignments = nil
		}
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.logger.Error().Err(err).Msg("Failed to read persisted assignments")
	}
	if s.assignments == nil {
		s.assignments = append([]models.Assignment(nil), data.Assignments...)
		s.persistAssignments(ctx)
		s.logger.Info().Int("count", len(s.assignments)).Msg("Assignments seeded")
	}
}

// persistCourses mirrors the full courses collection. Write-behind: a
// failure is logged, the in-memory state stands.
func (s *CourseStore) persistCourses(ctx context.Context) {
	blob, err := json.Marshal(s.courses)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode courses")
		return
	}
	if err := s.storage.Set(ctx, s.coursesKey, blob); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist courses")
	}
}

func (s *CourseStore) persistAssignments(ctx context.Context) {
	blob, err := json.Marshal(s.assignments)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode assignments")
		return
	}
	if err := s.storage.Set(ctx, s.assignmentsKey, blob); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist assignments")
	}
}

// AddCourse appends a new course with a fresh time-based id and an empty
// enrollment set.
func (s *CourseStore) AddCourse(ctx context.Context, req dto.CreateCourseRequest) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	course := models.Course{
		ID:               fmt.Sprintf("c%d", s.now().UnixMilli()),
		CourseID:         req.CourseID,
		Name:             req.Name,
		Description:      req.Description,
		FacultyID:        req.FacultyID,
		EnrolledStudents: []string{},
	}
	s.courses = append(s.courses, course)
	s.persistCourses(ctx)
	s.notifier.Success("Course added successfully!")
	return course.Clone()
}

// UpdateCourse merges the partial into the matching course. Unknown ids
// are a no-op.
func (s *CourseStore) UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != id {
			continue
		}
		if req.CourseID != nil {
			s.courses[i].CourseID = *req.CourseID
		}
		if req.Name != nil {
			s.courses[i].Name = *req.Name
		}
		if req.Description != nil {
			s.courses[i].Description = *req.Description
		}
		if req.FacultyID != nil {
			s.courses[i].FacultyID = *req.FacultyID
		}
		break
	}
	s.persistCourses(ctx)
	s.notifier.Success("Course updated successfully!")
}

// DeleteCourse removes the matching course. Dependent assignments and
// back-references stay behind. Unknown ids are a no-op.
func (s *CourseStore) DeleteCourse(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.courses[:0]
	for _, c := range s.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.courses = kept
	s.persistCourses(ctx)
	s.notifier.Success("Course deleted successfully!")
}

// EnrollStudent appends the student to the course's enrollment set if not
// already present. Idempotent; the student id is not checked against any
// roster.
func (s *CourseStore) EnrollStudent(ctx context.Context, courseID, studentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == courseID && !s.courses[i].HasStudent(studentID) {
			s.courses[i].EnrolledStudents = append(s.courses[i].EnrolledStudents, studentID)
			break
		}
	}
	s.persistCourses(ctx)
	s.notifier.Success("Enrolled in course successfully!")
}

// UnenrollStudent removes the student from the course's enrollment set if
// present. Idempotent.
func (s *CourseStore) UnenrollStudent(ctx context.Context, courseID, studentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID != courseID {
			continue
		}
		kept := s.courses[i].EnrolledStudents[:0]
		for _, id := range s.courses[i].EnrolledStudents {
			if id != studentID {
				kept = append(kept, id)
			}
		}
		s.courses[i].EnrolledStudents = kept
		break
	}
	s.persistCourses(ctx)
	s.notifier.Success("Unenrolled from course successfully!")
}

// AssignFaculty sets the owning faculty of the course, overwriting any
// prior assignment. The faculty id is not checked against any roster.
func (s *CourseStore) AssignFaculty(ctx context.Context, courseID, facultyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.courses {
		if s.courses[i].ID == courseID {
			s.courses[i].FacultyID = facultyID
			break
		}
	}
	s.persistCourses(ctx)
	s.notifier.Success("Faculty assigned to course successfully!")
}

// Courses returns the whole catalog.
func (s *CourseStore) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCoursesLocked(func(models.Course) bool { return true })
}

// AvailableCourses returns courses the student is not enrolled in.
func (s *CourseStore) AvailableCourses(studentID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCoursesLocked(func(c models.Course) bool { return !c.HasStudent(studentID) })
}

// EnrolledCourses returns courses the student is enrolled in.
func (s *CourseStore) EnrolledCourses(studentID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCoursesLocked(func(c models.Course) bool { return c.HasStudent(studentID) })
}

// FacultyCourses returns courses owned by the faculty member.
func (s *CourseStore) FacultyCourses(facultyID string) []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneCoursesLocked(func(c models.Course) bool { return c.FacultyID == facultyID })
}

// StudentsByCourse returns the ids enrolled on the course, in insertion
// order. Unknown courses yield an empty list.
func (s *CourseStore) StudentsByCourse(courseID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == courseID {
			return append([]string(nil), c.EnrolledStudents...)
		}
	}
	return []string{}
}

// CourseByID returns the course with the given id.
func (s *CourseStore) CourseByID(id string) (models.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return models.Course{}, false
}

func (s *CourseStore) cloneCoursesLocked(keep func(models.Course) bool) []models.Course {
	out := make([]models.Course, 0, len(s.courses))
	for _, c := range s.courses {
		if keep(c) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// AddAssignment appends a new assignment with a fresh time-based id and a
// createdAt stamp that never changes afterwards.
func (s *CourseStore) AddAssignment(ctx context.Context, req dto.CreateAssignmentRequest) models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	assignment := models.Assignment{
		ID:          fmt.Sprintf("a%d", now.UnixMilli()),
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		CreatedAt:   now.Format("2006-01-02"),
	}
	s.assignments = append(s.assignments, assignment)
	s.persistAssignments(ctx)
	s.notifier.Success("Assignment added successfully!")
	return assignment
}

// UpdateAssignment merges the partial into the matching assignment,
// leaving createdAt untouched. Unknown ids are a no-op.
func (s *CourseStore) UpdateAssignment(ctx context.Context, id string, req dto.UpdateAssignmentRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.assignments {
		if s.assignments[i].ID != id {
			continue
		}
		if req.Title != nil {
			s.assignments[i].Title = *req.Title
		}
		if req.Description != nil {
			s.assignments[i].Description = *req.Description
		}
		if req.DueDate != nil {
			s.assignments[i].DueDate = *req.DueDate
		}
		break
	}
	s.persistAssignments(ctx)
	s.notifier.Success("Assignment updated successfully!")
}

// DeleteAssignment removes the matching assignment. Unknown ids are a
// no-op.
func (s *CourseStore) DeleteAssignment(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.assignments[:0]
	for _, a := range s.assignments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.assignments = kept
	s.persistAssignments(ctx)
	s.notifier.Success("Assignment deleted successfully!")
}

// Assignments returns all assignments.
func (s *CourseStore) Assignments() []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Assignment(nil), s.assignments...)
}

// CourseAssignments returns assignments attached to the course, including
// ones whose course has since been deleted when called with the old id.
func (s *CourseStore) CourseAssignments(courseID string) []models.Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Assignment, 0)
	for _, a := range s.assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}
