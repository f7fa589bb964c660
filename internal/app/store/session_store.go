package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/pkg/apperrors"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage"
)

// SessionRecord is the persisted form of the active session. The record is
// trusted indefinitely: there is no expiry and no token, only an issued-at
// stamp. Logout is the only thing that invalidates it.
type SessionRecord struct {
	ID        string          `json:"id"`
	IssuedAt  time.Time       `json:"issuedAt"`
	Principal json.RawMessage `json:"principal"`
}

// SessionStore is the single source of truth for who is using the portal
// right now. Every state transition mirrors a snapshot into durable
// storage, strictly after the in-memory update; construction rehydrates
// from that snapshot.
type SessionStore struct {
	mu      sync.RWMutex
	storage storage.Store
	data    *seed.Dataset
	key     string
	current models.Principal
	logger  zerolog.Logger
}

// NewSessionStore builds a SessionStore and rehydrates any persisted
// session. A snapshot that no longer decodes (shape drift, unknown role)
// is treated as absent state rather than an error.
func NewSessionStore(ctx context.Context, st storage.Store, data *seed.Dataset, keyPrefix string, logger zerolog.Logger) *SessionStore {
	s := &SessionStore{
		storage: st,
		data:    data,
		key:     keyPrefix + storage.KeyCurrentUser,
		logger:  logger,
	}
	s.rehydrate(ctx)
	return s
}

func (s *SessionStore) rehydrate(ctx context.Context) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Error().Err(err).Msg("Failed to read persisted session")
		}
		return
	}

	var record SessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn().Err(err).Msg("Persisted session is unreadable, starting unauthenticated")
		return
	}

	principal, err := models.DecodePrincipal(record.Principal)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Persisted principal is unreadable, starting unauthenticated")
		return
	}

	s.current = principal
	s.logger.Info().
		Str("userID", principal.Base().ID).
		Str("role", string(principal.Base().Role)).
		Time("issuedAt", record.IssuedAt).
		Msg("Session rehydrated")
}

// persistLocked mirrors the current principal to storage. Callers hold the
// write lock. A storage failure is logged but does not undo the in-memory
// transition: the mirror is write-behind and this system carries no
// durability requirement.
func (s *SessionStore) persistLocked(ctx context.Context) {
	if s.current == nil {
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.logger.Error().Err(err).Msg("Failed to clear persisted session")
		}
		return
	}

	snapshot, err := models.EncodePrincipal(s.current)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode session principal")
		return
	}
	record := SessionRecord{
		ID:        uuid.NewString(),
		IssuedAt:  time.Now(),
		Principal: snapshot,
	}
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode session record")
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist session")
	}
}

// Login resolves the credentials against the fixed credential list and
// activates the matching principal. Any mismatch, including a credential
// whose principal record is missing, fails with ErrInvalidCredentials; the
// caller cannot tell a wrong password from an unknown email.
func (s *SessionStore) Login(ctx context.Context, email, password string) (models.Role, string, error) {
	var cred *seed.Credential
	for i := range s.data.Credentials {
		if s.data.Credentials[i].Email == email {
			cred = &s.data.Credentials[i]
			break
		}
	}
	if cred == nil || cred.Password != password {
		return "", "", apperrors.ErrInvalidCredentials
	}

	var principal models.Principal
	switch cred.Role {
	case models.RoleStudent:
		if st := s.data.StudentByID(cred.UserID); st != nil {
			principal = st.Clone()
		}
	case models.RoleFaculty:
		if f := s.data.FacultyByID(cred.UserID); f != nil {
			principal = f.Clone()
		}
	case models.RoleAdmin:
		if s.data.Admin.ID == cred.UserID {
			principal = s.data.Admin.Clone()
		}
	}
	if principal == nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = principal
	s.persistLocked(ctx)

	s.logger.Info().Str("role", string(cred.Role)).Str("userID", cred.UserID).Msg("Login")
	return cred.Role, cred.UserID, nil
}

// Logout clears the active principal. It has no precondition and always
// succeeds.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.persistLocked(ctx)
	s.logger.Info().Msg("Logout")
}

// Current returns a copy of the active principal, or nil when the session
// is unauthenticated.
func (s *SessionStore) Current() models.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	return s.current.Clone()
}

// IsAuthenticated reports whether a principal is active.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// UpdateStudentProfile merges the given fields into the active student
// principal. With no active principal the call is a no-op; with a
// principal of another role it fails with ErrRoleMismatch so a student
// payload can never set fields onto a faculty or admin record.
func (s *SessionStore) UpdateStudentProfile(ctx context.Context, req dto.UpdateStudentProfileRequest) (models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	student, ok := s.current.(*models.Student)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s, active role is %s",
			apperrors.ErrRoleMismatch, models.RoleStudent, s.current.Base().Role)
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		student.ProfilePicture = *req.ProfilePicture
	}
	if req.MobileNumber != nil {
		student.MobileNumber = *req.MobileNumber
	}
	if req.DateOfBirth != nil {
		student.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.FatherName != nil {
		student.FatherName = *req.FatherName
	}
	if req.MotherName != nil {
		student.MotherName = *req.MotherName
	}
	if req.FirstGraduate != nil {
		fg := *req.FirstGraduate
		student.FirstGraduate = &fg
	}
	if req.GithubLink != nil {
		student.GithubLink = *req.GithubLink
	}
	if req.LinkedinLink != nil {
		student.LinkedinLink = *req.LinkedinLink
	}
	if req.Education != nil {
		edu := *req.Education
		student.Education = &edu
	}

	s.persistLocked(ctx)
	return student.Clone(), nil
}

// UpdateFacultyProfile merges the given fields into the active faculty
// principal. Semantics mirror UpdateStudentProfile.
func (s *SessionStore) UpdateFacultyProfile(ctx context.Context, req dto.UpdateFacultyProfileRequest) (models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	faculty, ok := s.current.(*models.Faculty)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s, active role is %s",
			apperrors.ErrRoleMismatch, models.RoleFaculty, s.current.Base().Role)
	}

	if req.Name != nil {
		faculty.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		faculty.ProfilePicture = *req.ProfilePicture
	}
	if req.Department != nil {
		faculty.Department = *req.Department
	}
	if req.DateOfBirth != nil {
		faculty.DateOfBirth = *req.DateOfBirth
	}
	if req.Gender != nil {
		faculty.Gender = *req.Gender
	}
	if req.MobileNumber != nil {
		faculty.MobileNumber = *req.MobileNumber
	}
	if req.WorkExperience != nil {
		faculty.WorkExperience = append([]models.WorkExperience(nil), req.WorkExperience...)
	}

	s.persistLocked(ctx)
	return faculty.Clone(), nil
}

// UpdateAdminProfile merges the given fields into the active admin
// principal. Semantics mirror UpdateStudentProfile.
func (s *SessionStore) UpdateAdminProfile(ctx context.Context, req dto.UpdateAdminProfileRequest) (models.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}
	admin, ok := s.current.(*models.Admin)
	if !ok {
		return nil, fmt.Errorf("%w: expected %s, active role is %s",
			apperrors.ErrRoleMismatch, models.RoleAdmin, s.current.Base().Role)
	}

	if req.Name != nil {
		admin.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		admin.ProfilePicture = *req.ProfilePicture
	}

	s.persistLocked(ctx)
	return admin.Clone(), nil
}
