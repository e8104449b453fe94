package enrollments

import (
	"context"
	"testing"
	"time"

	"varsity/internal/sections"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Enroll(ctx context.Context, schedule *StudentSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *mockRepository) Drop(ctx context.Context, studentID, sectionID uuid.UUID) error {
	args := m.Called(ctx, studentID, sectionID)
	return args.Error(0)
}

func (m *mockRepository) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]StudentSchedule, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]StudentSchedule), args.Error(1)
}

func (m *mockRepository) IsEnrolled(ctx context.Context, studentID, sectionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, studentID, sectionID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error) {
	args := m.Called(ctx, sectionID)
	return args.Get(0).(int64), args.Error(1)
}

type mockSectionRepository struct {
	mock.Mock
}

func (m *mockSectionRepository) Create(section *sections.Section) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *mockSectionRepository) GetByID(id uuid.UUID) (*sections.Section, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sections.Section), args.Error(1)
}

func (m *mockSectionRepository) GetAll() ([]sections.Section, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sections.Section), args.Error(1)
}

func (m *mockSectionRepository) GetByFaculty(facultyID uuid.UUID) ([]sections.Section, error) {
	args := m.Called(facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sections.Section), args.Error(1)
}

func (m *mockSectionRepository) Update(id uuid.UUID, updates map[string]interface{}) (*sections.Section, error) {
	args := m.Called(id, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sections.Section), args.Error(1)
}

func (m *mockSectionRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func sectionAt(code, day string, startHour, endHour int) sections.Section {
	return sections.Section{
		ID:        uuid.New(),
		Name:      "Section " + code,
		Code:      code,
		CourseID:  uuid.New(),
		FacultyID: uuid.New(),
		RoomID:    uuid.New(),
		Day:       day,
		StartTime: time.Date(2024, 1, 1, startHour, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2024, 1, 1, endHour, 0, 0, 0, time.UTC),
	}
}

func TestEnroll_ConflictDoesNotBlock(t *testing.T) {
	repo := new(mockRepository)
	sectionRepo := new(mockSectionRepository)
	svc := NewService(repo, sectionRepo)

	studentID := uuid.New()
	existing := sectionAt("CS101-A", "MONDAY", 9, 11)
	candidate := sectionAt("CS102-B", "MONDAY", 10, 12)

	sectionRepo.On("GetByID", candidate.ID).Return(&candidate, nil)
	repo.On("Enroll", mock.Anything, mock.AnythingOfType("*enrollments.StudentSchedule")).Return(nil)
	repo.On("GetByStudent", mock.Anything, studentID).Return([]StudentSchedule{
		{ID: uuid.New(), StudentID: studentID, SectionID: existing.ID, Section: existing},
		{ID: uuid.New(), StudentID: studentID, SectionID: candidate.ID, Section: candidate},
	}, nil)

	entry, err := svc.Enroll(context.Background(), studentID, candidate.ID)

	require.NoError(t, err)
	assert.Equal(t, candidate.ID.String(), entry.SectionID)
	assert.Equal(t, []string{existing.ID.String()}, entry.ConflictsWith)
	repo.AssertExpectations(t)
}

func TestEnroll_SectionNotFound(t *testing.T) {
	repo := new(mockRepository)
	sectionRepo := new(mockSectionRepository)
	svc := NewService(repo, sectionRepo)

	sectionID := uuid.New()
	sectionRepo.On("GetByID", sectionID).Return(nil, sections.ErrSectionNotFound)

	entry, err := svc.Enroll(context.Background(), uuid.New(), sectionID)

	assert.ErrorIs(t, err, sections.ErrSectionNotFound)
	assert.Nil(t, entry)
	repo.AssertNotCalled(t, "Enroll", mock.Anything, mock.Anything)
}

func TestEnroll_Duplicate(t *testing.T) {
	repo := new(mockRepository)
	sectionRepo := new(mockSectionRepository)
	svc := NewService(repo, sectionRepo)

	section := sectionAt("CS101-A", "MONDAY", 9, 10)
	sectionRepo.On("GetByID", section.ID).Return(&section, nil)
	repo.On("Enroll", mock.Anything, mock.AnythingOfType("*enrollments.StudentSchedule")).
		Return(ErrAlreadyEnrolled)

	entry, err := svc.Enroll(context.Background(), uuid.New(), section.ID)

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	assert.Nil(t, entry)
}

func TestGetSchedule_FlagsMutualConflicts(t *testing.T) {
	repo := new(mockRepository)
	sectionRepo := new(mockSectionRepository)
	svc := NewService(repo, sectionRepo)

	studentID := uuid.New()
	a := sectionAt("A", "MONDAY", 9, 11)
	b := sectionAt("B", "MONDAY", 10, 12)
	c := sectionAt("C", "TUESDAY", 9, 11)

	repo.On("GetByStudent", mock.Anything, studentID).Return([]StudentSchedule{
		{ID: uuid.New(), SectionID: a.ID, Section: a},
		{ID: uuid.New(), SectionID: b.ID, Section: b},
		{ID: uuid.New(), SectionID: c.ID, Section: c},
	}, nil)

	schedule, err := svc.GetSchedule(context.Background(), studentID)

	require.NoError(t, err)
	require.Len(t, schedule, 3)
	assert.Equal(t, []string{b.ID.String()}, schedule[0].ConflictsWith)
	assert.Equal(t, []string{a.ID.String()}, schedule[1].ConflictsWith)
	assert.Empty(t, schedule[2].ConflictsWith)
}

func TestBrowseSections(t *testing.T) {
	repo := new(mockRepository)
	sectionRepo := new(mockSectionRepository)
	svc := NewService(repo, sectionRepo)

	studentID := uuid.New()
	enrolled := sectionAt("A", "MONDAY", 9, 11)
	clashing := sectionAt("B", "MONDAY", 10, 12)
	free := sectionAt("C", "FRIDAY", 9, 11)

	sectionRepo.On("GetAll").Return([]sections.Section{enrolled, clashing, free}, nil)
	repo.On("GetByStudent", mock.Anything, studentID).Return([]StudentSchedule{
		{ID: uuid.New(), SectionID: enrolled.ID, Section: enrolled},
	}, nil)

	result, err := svc.BrowseSections(context.Background(), studentID)

	require.NoError(t, err)
	require.Len(t, result, 3)

	assert.True(t, result[0].Enrolled)
	assert.False(t, result[0].HasConflict) // own section never clashes with itself

	assert.False(t, result[1].Enrolled)
	assert.True(t, result[1].HasConflict)

	assert.False(t, result[2].Enrolled)
	assert.False(t, result[2].HasConflict)
}
