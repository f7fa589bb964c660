package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/derin/uniportal/internal/app/models"
	"github.com/derin/uniportal/internal/app/models/dto"
	"github.com/derin/uniportal/internal/pkg/apperrors"
	"github.com/derin/uniportal/internal/seed"
	"github.com/derin/uniportal/internal/storage"
	"github.com/derin/uniportal/internal/storage/memstore"
)

func newSessionStore(t *testing.T) (*SessionStore, storage.Store) {
	t.Helper()
	st := memstore.New()
	ss := NewSessionStore(context.Background(), st, seed.Default(), "", zerolog.Nop())
	return ss, st
}

func TestLoginResolvesEachSeedCredential(t *testing.T) {
	tests := []struct {
		email string
		role  models.Role
	}{
		{"student@example.com", models.RoleStudent},
		{"faculty@example.com", models.RoleFaculty},
		{"admin@example.com", models.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			ss, _ := newSessionStore(t)

			role, userID, err := ss.Login(context.Background(), tt.email, "password")
			assert.NoError(t, err)
			assert.Equal(t, tt.role, role)
			assert.Equal(t, "1", userID)

			current := ss.Current()
			assert.NotNil(t, current)
			assert.Equal(t, tt.role, current.Base().Role)
		})
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ss, _ := newSessionStore(t)

	_, _, err := ss.Login(context.Background(), "student@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, _, err = ss.Login(context.Background(), "nobody@example.com", "password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	assert.False(t, ss.IsAuthenticated())
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	ss, _ := newSessionStore(t)

	_, _, err := ss.Login(context.Background(), "student@example.com", "password")
	assert.NoError(t, err)

	_, _, err = ss.Login(context.Background(), "student@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.True(t, ss.IsAuthenticated())
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	ss, st := newSessionStore(t)

	// Without a session it is a harmless no-op.
	ss.Logout(context.Background())
	assert.False(t, ss.IsAuthenticated())

	_, _, err := ss.Login(context.Background(), "admin@example.com", "password")
	assert.NoError(t, err)
	ss.Logout(context.Background())

	assert.False(t, ss.IsAuthenticated())
	assert.Nil(t, ss.Current())

	// The persisted snapshot is cleared as well.
	_, err = st.Get(context.Background(), storage.KeyCurrentUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestCurrentReturnsACopy(t *testing.T) {
	ss, _ := newSessionStore(t)
	_, _, err := ss.Login(context.Background(), "student@example.com", "password")
	assert.NoError(t, err)

	first := ss.Current()
	first.Base().Name = "Mutated"

	assert.Equal(t, "Anita Desai", ss.Current().Base().Name)
}

func TestUpdateStudentProfileMergesGivenFields(t *testing.T) {
	ss, _ := newSessionStore(t)
	_, _, err := ss.Login(context.Background(), "student@example.com", "password")
	assert.NoError(t, err)

	name := "Anita D."
	gender := "Female"
	updated, err := ss.UpdateStudentProfile(context.Background(), dto.UpdateStudentProfileRequest{
		Name:   &name,
		Gender: &gender,
	})
	assert.NoError(t, err)

	student, ok := updated.(*models.Student)
	assert.True(t, ok)
	assert.Equal(t, "Anita D.", student.Name)
	assert.Equal(t, "Female", student.Gender)
	// Untouched fields survive the merge.
	assert.Equal(t, "CS2022001", student.RollNumber)
	assert.Equal(t, "9876543210", student.MobileNumber)
}

func TestUpdateProfileWithoutSessionIsNoop(t *testing.T) {
	ss, _ := newSessionStore(t)

	name := "Ghost"
	updated, err := ss.UpdateStudentProfile(context.Background(), dto.UpdateStudentProfileRequest{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateProfileRejectsWrongRole(t *testing.T) {
	ss, _ := newSessionStore(t)
	_, _, err := ss.Login(context.Background(), "faculty@example.com", "password")
	assert.NoError(t, err)

	name := "Impostor"
	_, err = ss.UpdateStudentProfile(context.Background(), dto.UpdateStudentProfileRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrRoleMismatch)

	_, err = ss.UpdateAdminProfile(context.Background(), dto.UpdateAdminProfileRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrRoleMismatch)

	// The faculty record itself is untouched.
	assert.Equal(t, "Dr. Meera Krishnan", ss.Current().Base().Name)
}

func TestUpdateFacultyProfileReplacesWorkExperience(t *testing.T) {
	ss, _ := newSessionStore(t)
	_, _, err := ss.Login(context.Background(), "faculty@example.com", "password")
	assert.NoError(t, err)

	updated, err := ss.UpdateFacultyProfile(context.Background(), dto.UpdateFacultyProfileRequest{
		WorkExperience: []models.WorkExperience{
			{ID: "w9", OrganizationName: "IISc", Position: "Visiting Researcher", StartYear: "2020", EndYear: "2022"},
		},
	})
	assert.NoError(t, err)

	faculty, ok := updated.(*models.Faculty)
	assert.True(t, ok)
	assert.Len(t, faculty.WorkExperience, 1)
	assert.Equal(t, "IISc", faculty.WorkExperience[0].OrganizationName)
}

func TestSessionRehydratesAcrossRestart(t *testing.T) {
	st := memstore.New()
	data := seed.Default()

	ss := NewSessionStore(context.Background(), st, data, "", zerolog.Nop())
	_, _, err := ss.Login(context.Background(), "student@example.com", "password")
	assert.NoError(t, err)

	name := "Anita D."
	_, err = ss.UpdateStudentProfile(context.Background(), dto.UpdateStudentProfileRequest{Name: &name})
	assert.NoError(t, err)

	// A new store over the same backend trusts the snapshot indefinitely,
	// profile edits included.
	ss2 := NewSessionStore(context.Background(), st, data, "", zerolog.Nop())
	assert.True(t, ss2.IsAuthenticated())
	current := ss2.Current()
	assert.Equal(t, models.RoleStudent, current.Base().Role)
	assert.Equal(t, "Anita D.", current.Base().Name)
}

func TestCorruptSnapshotStartsUnauthenticated(t *testing.T) {
	st := memstore.New()
	_ = st.Set(context.Background(), storage.KeyCurrentUser, []byte("not json"))

	ss := NewSessionStore(context.Background(), st, seed.Default(), "", zerolog.Nop())
	assert.False(t, ss.IsAuthenticated())
}

func TestUnknownRoleSnapshotStartsUnauthenticated(t *testing.T) {
	st := memstore.New()
	_ = st.Set(context.Background(), storage.KeyCurrentUser,
		[]byte(`{"id":"s1","issuedAt":"2026-01-01T00:00:00Z","principal":{"id":"1","role":"registrar"}}`))

	ss := NewSessionStore(context.Background(), st, seed.Default(), "", zerolog.Nop())
	assert.False(t, ss.IsAuthenticated())
}
