package enrollments

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlreadyEnrolled    = errors.New("already enrolled in this section")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
)

type Repository interface {
	Enroll(ctx context.Context, schedule *StudentSchedule) error
	Drop(ctx context.Context, studentID, sectionID uuid.UUID) error
	GetByStudent(ctx context.Context, studentID uuid.UUID) ([]StudentSchedule, error)
	IsEnrolled(ctx context.Context, studentID, sectionID uuid.UUID) (bool, error)
	CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Enroll(ctx context.Context, schedule *StudentSchedule) error {
	err := r.db.WithContext(ctx).Create(schedule).Error
	if err != nil {
		// Unique constraint on (student_id, section_id)
		if strings.Contains(err.Error(), "uniq_student_section") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

func (r *repository) Drop(ctx context.Context, studentID, sectionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		Delete(&StudentSchedule{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func (r *repository) GetByStudent(ctx context.Context, studentID uuid.UUID) ([]StudentSchedule, error) {
	var scheduleList []StudentSchedule
	err := r.db.WithContext(ctx).
		Preload("Section").
		Preload("Section.Course").
		Preload("Section.Faculty").
		Preload("Section.Room").
		Where("student_id = ?", studentID).
		Order("created_at ASC").
		Find(&scheduleList).Error
	return scheduleList, err
}

func (r *repository) IsEnrolled(ctx context.Context, studentID, sectionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StudentSchedule{}).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CountBySection(ctx context.Context, sectionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&StudentSchedule{}).
		Where("section_id = ?", sectionID).
		Count(&count).Error
	return count, err
}
