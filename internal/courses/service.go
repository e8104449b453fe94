package courses

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service interface {
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*Course, error)
	GetAllCourses(ctx context.Context) ([]Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, req UpdateCourseRequest) (*Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error

	CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error)
	GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error)
	GetAllRooms(ctx context.Context) ([]Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCourse(ctx context.Context, req CreateCourseRequest) (*Course, error) {
	course := &Course{
		Name: req.Name,
		Code: req.Code,
	}

	if err := s.repo.CreateCourse(course); err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	return course, nil
}

func (s *service) GetCourseByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	return s.repo.GetCourseByID(id)
}

func (s *service) GetAllCourses(ctx context.Context) ([]Course, error) {
	return s.repo.GetAllCourses()
}

func (s *service) UpdateCourse(ctx context.Context, id uuid.UUID, req UpdateCourseRequest) (*Course, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Code != nil {
		updates["code"] = *req.Code
	}

	return s.repo.UpdateCourse(id, updates)
}

func (s *service) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCourse(id)
}

func (s *service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*Room, error) {
	room := &Room{
		No:          req.No,
		MaxCapacity: req.MaxCapacity,
	}

	if err := s.repo.CreateRoom(room); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return room, nil
}

func (s *service) GetRoomByID(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.repo.GetRoomByID(id)
}

func (s *service) GetAllRooms(ctx context.Context) ([]Room, error) {
	return s.repo.GetAllRooms()
}

func (s *service) UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*Room, error) {
	updates := make(map[string]interface{})
	if req.No != nil {
		updates["no"] = *req.No
	}
	if req.MaxCapacity != nil {
		updates["max_capacity"] = *req.MaxCapacity
	}

	return s.repo.UpdateRoom(id, updates)
}

func (s *service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRoom(id)
}
