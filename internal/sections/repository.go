package sections

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSectionNotFound = errors.New("section not found")

type Repository interface {
	Create(section *Section) error
	GetByID(id uuid.UUID) (*Section, error)
	GetAll() ([]Section, error)
	GetByFaculty(facultyID uuid.UUID) ([]Section, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*Section, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(section *Section) error {
	return r.db.Create(section).Error
}

func (r *repository) GetByID(id uuid.UUID) (*Section, error) {
	var section Section
	err := r.db.
		Preload("Course").
		Preload("Faculty").
		Preload("Room").
		Where("id = ?", id).
		First(&section).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

func (r *repository) GetAll() ([]Section, error) {
	var sectionList []Section
	err := r.db.
		Preload("Course").
		Preload("Faculty").
		Preload("Room").
		Order("code ASC").
		Find(&sectionList).Error
	return sectionList, err
}

func (r *repository) GetByFaculty(facultyID uuid.UUID) ([]Section, error) {
	var sectionList []Section
	err := r.db.
		Preload("Course").
		Preload("Faculty").
		Preload("Room").
		Where("faculty_id = ?", facultyID).
		Order("code ASC").
		Find(&sectionList).Error
	return sectionList, err
}

func (r *repository) Update(id uuid.UUID, updates map[string]interface{}) (*Section, error) {
	var section Section
	if err := r.db.Where("id = ?", id).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&section).Updates(updates).Error; err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

func (r *repository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Section{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}
