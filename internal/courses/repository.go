package courses

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrRoomNotFound   = errors.New("room not found")
)

type Repository interface {
	CreateCourse(course *Course) error
	GetCourseByID(id uuid.UUID) (*Course, error)
	GetAllCourses() ([]Course, error)
	UpdateCourse(id uuid.UUID, updates map[string]interface{}) (*Course, error)
	DeleteCourse(id uuid.UUID) error

	CreateRoom(room *Room) error
	GetRoomByID(id uuid.UUID) (*Room, error)
	GetAllRooms() ([]Room, error)
	UpdateRoom(id uuid.UUID, updates map[string]interface{}) (*Room, error)
	DeleteRoom(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateCourse(course *Course) error {
	return r.db.Create(course).Error
}

func (r *repository) GetCourseByID(id uuid.UUID) (*Course, error) {
	var course Course
	if err := r.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *repository) GetAllCourses() ([]Course, error) {
	var courseList []Course
	err := r.db.Order("code ASC").Find(&courseList).Error
	return courseList, err
}

func (r *repository) UpdateCourse(id uuid.UUID, updates map[string]interface{}) (*Course, error) {
	var course Course
	if err := r.db.Where("id = ?", id).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&course).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &course, nil
}

func (r *repository) DeleteCourse(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *repository) CreateRoom(room *Room) error {
	return r.db.Create(room).Error
}

func (r *repository) GetRoomByID(id uuid.UUID) (*Room, error) {
	var room Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *repository) GetAllRooms() ([]Room, error) {
	var roomList []Room
	err := r.db.Order("no ASC").Find(&roomList).Error
	return roomList, err
}

func (r *repository) UpdateRoom(id uuid.UUID, updates map[string]interface{}) (*Room, error) {
	var room Room
	if err := r.db.Where("id = ?", id).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&room).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &room, nil
}

func (r *repository) DeleteRoom(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
