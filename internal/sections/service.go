package sections

import (
	"context"
	"fmt"

	"varsity/internal/shared/constants"
	"varsity/pkg/cache"

	"github.com/google/uuid"
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	Create(ctx context.Context, req CreateSectionRequest) (*SectionResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SectionResponse, error)
	GetAll(ctx context.Context) ([]SectionResponse, error)
	GetByFaculty(ctx context.Context, facultyID uuid.UUID) ([]SectionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) invalidateSectionCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_SECTION)
}

func (s *service) Create(ctx context.Context, req CreateSectionRequest) (*SectionResponse, error) {
	courseID, err := uuid.Parse(req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("invalid course id: %w", err)
	}
	facultyID, err := uuid.Parse(req.FacultyID)
	if err != nil {
		return nil, fmt.Errorf("invalid faculty id: %w", err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room id: %w", err)
	}

	section := &Section{
		Name:      req.Name,
		Code:      req.Code,
		CourseID:  courseID,
		FacultyID: facultyID,
		RoomID:    roomID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.Create(section); err != nil {
		return nil, fmt.Errorf("failed to create section: %w", err)
	}

	s.invalidateSectionCache(ctx)

	return s.GetByID(ctx, section.ID)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*SectionResponse, error) {
	section, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]SectionResponse, error) {
	if s.cacheService != nil {
		var cached []SectionResponse
		if err := s.cacheService.Get(ctx, constants.CACHE_KEY_SECTIONS_LIST, &cached); err == nil {
			return cached, nil
		}
	}

	sectionList, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	responses := toSectionResponses(sectionList)

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.CACHE_KEY_SECTIONS_LIST, responses, constants.TTL_SEMI_STATIC_MEDIUM)
	}

	return responses, nil
}

func (s *service) GetByFaculty(ctx context.Context, facultyID uuid.UUID) ([]SectionResponse, error) {
	sectionList, err := s.repo.GetByFaculty(facultyID)
	if err != nil {
		return nil, err
	}
	return toSectionResponses(sectionList), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, req UpdateSectionRequest) (*SectionResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.FacultyID != nil {
		facultyID, err := uuid.Parse(*req.FacultyID)
		if err != nil {
			return nil, fmt.Errorf("invalid faculty id: %w", err)
		}
		updates["faculty_id"] = facultyID
	}
	if req.RoomID != nil {
		roomID, err := uuid.Parse(*req.RoomID)
		if err != nil {
			return nil, fmt.Errorf("invalid room id: %w", err)
		}
		updates["room_id"] = roomID
	}
	if req.Day != nil {
		updates["day"] = *req.Day
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		updates["end_time"] = *req.EndTime
	}

	section, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidateSectionCache(ctx)

	resp := toSectionResponse(section)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateSectionCache(ctx)
	return nil
}

func toSectionResponse(section *Section) SectionResponse {
	return SectionResponse{
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

func toSectionResponses(sectionList []Section) []SectionResponse {
	responses := make([]SectionResponse, len(sectionList))
	for i := range sectionList {
		responses[i] = toSectionResponse(&sectionList[i])
	}
	return responses
}
