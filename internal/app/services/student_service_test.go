package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore for service tests
type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: map[int64]*models.Student{}, nextID: 1}
}

func (f *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	for _, existing := range f.students {
		if existing.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStudentStore) GetByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		if s.CohortID == cohortID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) Update(ctx context.Context, id int64, patch *models.StudentPatch) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if patch.FirstName != nil {
		s.FirstName = *patch.FirstName
	}
	if patch.Languages != nil {
		s.Languages = *patch.Languages
	}
	if patch.CohortID != nil {
		s.CohortID = *patch.CohortID
	}
	return s, nil
}

func (f *fakeStudentStore) Delete(ctx context.Context, id int64) error {
	delete(f.students, id)
	return nil
}

func validStudent() *models.Student {
	return &models.Student{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     "+34 600 000 000",
		Languages: []models.Language{models.LanguageEnglish},
		Program:   models.ProgramWebDev,
		Image:     models.DefaultStudentImage,
		CohortID:  1,
	}
}

func TestCreateStudent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), student))
	assert.NotZero(t, student.ID)
}

func TestCreateStudentValidation(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	tests := []struct {
		name   string
		mutate func(*models.Student)
	}{
		{"unknown program", func(s *models.Student) { s.Program = "Alchemy" }},
		{"unknown language", func(s *models.Student) { s.Languages = []models.Language{"Klingon"} }},
		{"zero cohort id", func(s *models.Student) { s.CohortID = 0 }},
		{"negative cohort id", func(s *models.Student) { s.CohortID = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent()
			tt.mutate(student)
			err := svc.CreateStudent(context.Background(), student)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	require.NoError(t, svc.CreateStudent(context.Background(), validStudent()))
	err := svc.CreateStudent(context.Background(), validStudent())
	assert.ErrorIs(t, err, apperrors.ErrStudentEmailExists)
}

func TestGetStudentsByCohortID(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	first := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), first))

	second := validStudent()
	second.Email = "grace@example.com"
	second.CohortID = 2
	require.NoError(t, svc.CreateStudent(context.Background(), second))

	students, err := svc.GetStudentsByCohortID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, "grace@example.com", students[0].Email)

	// An unknown cohort id yields an empty list, not an error
	students, err = svc.GetStudentsByCohortID(context.Background(), 999)
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestUpdateStudentPatch(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), student))

	newName := "Augusta"
	languages := []models.Language{models.LanguageEnglish, models.LanguageFrench}
	updated, err := svc.UpdateStudent(context.Background(), student.ID, &models.StudentPatch{
		FirstName: &newName,
		Languages: &languages,
	})
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)
	assert.Len(t, updated.Languages, 2)
	assert.Equal(t, "Lovelace", updated.LastName)
}

func TestUpdateStudentPatchValidation(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), student))

	badCohort := int64(0)
	_, err := svc.UpdateStudent(context.Background(), student.ID, &models.StudentPatch{CohortID: &badCohort})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDeleteStudentIdempotent(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)

	student := validStudent()
	require.NoError(t, svc.CreateStudent(context.Background(), student))

	require.NoError(t, svc.DeleteStudent(context.Background(), student.ID))
	assert.NoError(t, svc.DeleteStudent(context.Background(), student.ID))
}
