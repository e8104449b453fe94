package enrollments

import (
	"context"
	"fmt"

	"varsity/internal/sections"
	"varsity/pkg/logger"

	"github.com/google/uuid"
)

// Notifier publishes enrollment notifications, best effort.
type Notifier interface {
	NotifyEnrollmentConfirmed(ctx context.Context, studentID, sectionID, sectionName string)
}

type Service interface {
	SetNotifier(n Notifier)

	// Enroll joins a student to a section. Schedule clashes do not block the
	// enrollment; the returned entry carries the clash flags so clients can
	// warn the student.
	Enroll(ctx context.Context, studentID, sectionID uuid.UUID) (*ScheduleEntry, error)
	Drop(ctx context.Context, studentID, sectionID uuid.UUID) error
	GetSchedule(ctx context.Context, studentID uuid.UUID) ([]ScheduleEntry, error)
	BrowseSections(ctx context.Context, studentID uuid.UUID) ([]SectionAvailability, error)
}

type service struct {
	repo        Repository
	sectionRepo sections.Repository
	notifier    Notifier
	log         *logger.Logger
}

func NewService(repo Repository, sectionRepo sections.Repository) Service {
	return &service{
		repo:        repo,
		sectionRepo: sectionRepo,
		log:         logger.GetDefault(),
	}
}

func (s *service) SetNotifier(n Notifier) {
	s.notifier = n
}

func meetingOf(section *sections.Section) Meeting {
	return Meeting{
		SectionID: section.ID.String(),
		Day:       section.Day,
		Start:     section.StartTime,
		End:       section.EndTime,
	}
}

func (s *service) Enroll(ctx context.Context, studentID, sectionID uuid.UUID) (*ScheduleEntry, error) {
	section, err := s.sectionRepo.GetByID(sectionID)
	if err != nil {
		return nil, err
	}

	schedule := &StudentSchedule{
		StudentID: studentID,
		SectionID: sectionID,
	}
	if err := s.repo.Enroll(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.LogEnrollmentCreated(ctx, studentID.String(), sectionID.String())

	if s.notifier != nil {
		s.notifier.NotifyEnrollmentConfirmed(ctx, studentID.String(), sectionID.String(), section.Name)
	}

	// Flag clashes against the rest of the schedule
	enrolled, err := s.repo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}

	others := make([]Meeting, 0, len(enrolled))
	for i := range enrolled {
		if enrolled[i].SectionID == sectionID {
			continue
		}
		others = append(others, meetingOf(&enrolled[i].Section))
	}

	entry := toScheduleEntry(schedule.ID, section, ConflictsWith(meetingOf(section), others))
	return &entry, nil
}

func (s *service) Drop(ctx context.Context, studentID, sectionID uuid.UUID) error {
	return s.repo.Drop(ctx, studentID, sectionID)
}

func (s *service) GetSchedule(ctx context.Context, studentID uuid.UUID) ([]ScheduleEntry, error) {
	enrolled, err := s.repo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	meetings := make([]Meeting, len(enrolled))
	for i := range enrolled {
		meetings[i] = meetingOf(&enrolled[i].Section)
	}

	entries := make([]ScheduleEntry, len(enrolled))
	for i := range enrolled {
		entries[i] = toScheduleEntry(
			enrolled[i].ID,
			&enrolled[i].Section,
			ConflictsWith(meetings[i], meetings),
		)
	}

	return entries, nil
}

func (s *service) BrowseSections(ctx context.Context, studentID uuid.UUID) ([]SectionAvailability, error) {
	allSections, err := s.sectionRepo.GetAll()
	if err != nil {
		return nil, err
	}

	enrolled, err := s.repo.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	enrolledIDs := make(map[uuid.UUID]bool, len(enrolled))
	schedule := make([]Meeting, len(enrolled))
	for i := range enrolled {
		enrolledIDs[enrolled[i].SectionID] = true
		schedule[i] = meetingOf(&enrolled[i].Section)
	}

	result := make([]SectionAvailability, len(allSections))
	for i := range allSections {
		section := &allSections[i]
		result[i] = SectionAvailability{
			Section:     toSectionResponse(section),
			Enrolled:    enrolledIDs[section.ID],
			HasConflict: len(ConflictsWith(meetingOf(section), schedule)) > 0,
		}
	}

	return result, nil
}

func toScheduleEntry(enrollmentID uuid.UUID, section *sections.Section, conflicts []string) ScheduleEntry {
	if conflicts == nil {
		conflicts = []string{}
	}
	return ScheduleEntry{
		EnrollmentID:  enrollmentID.String(),
		SectionID:     section.ID.String(),
		SectionName:   section.Name,
		SectionCode:   section.Code,
		CourseName:    section.Course.Name,
		CourseCode:    section.Course.Code,
		Faculty:       section.Faculty.Name,
		RoomNo:        section.Room.No,
		Day:           section.Day,
		StartTime:     section.StartTime,
		EndTime:       section.EndTime,
		ConflictsWith: conflicts,
	}
}

func toSectionResponse(section *sections.Section) sections.SectionResponse {
	return sections.SectionResponse{
		ID:         section.ID.String(),
		Name:       section.Name,
		Code:       section.Code,
		CourseID:   section.CourseID.String(),
		CourseName: section.Course.Name,
		CourseCode: section.Course.Code,
		FacultyID:  section.FacultyID.String(),
		Faculty:    section.Faculty.Name,
		RoomNo:     section.Room.No,
		Day:        section.Day,
		StartTime:  section.StartTime,
		EndTime:    section.EndTime,
	}
}
