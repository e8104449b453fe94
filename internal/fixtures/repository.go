package fixtures

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	// Teams
	CreateTeam(team *Team) error
	GetTeamByID(id uuid.UUID) (*Team, error)
	GetAllTeams() ([]Team, error)
	UpdateTeam(id uuid.UUID, updates map[string]interface{}) (*Team, error)
	DeleteTeam(id uuid.UUID) error

	// Stadiums
	CreateStadium(stadium *Stadium) error
	GetStadiumByID(id uuid.UUID) (*Stadium, error)
	GetAllStadiums() ([]Stadium, error)
	UpdateStadium(id uuid.UUID, updates map[string]interface{}) (*Stadium, error)
	DeleteStadium(id uuid.UUID) error

	// Fixtures
	CreateFixture(fixture *Fixture, slot *TimeSlot) error
	GetFixtureByID(id uuid.UUID) (*Fixture, error)
	GetAllFixtures(query FixtureListQuery) ([]Fixture, int64, error)
	UpdateFixture(id uuid.UUID, updates map[string]interface{}, slotUpdates map[string]interface{}) (*Fixture, error)
	DeleteFixture(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTeam(team *Team) error {
	return r.db.Create(team).Error
}

func (r *repository) GetTeamByID(id uuid.UUID) (*Team, error) {
	var team Team
	if err := r.db.Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *repository) GetAllTeams() ([]Team, error) {
	var teams []Team
	err := r.db.Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *repository) UpdateTeam(id uuid.UUID, updates map[string]interface{}) (*Team, error) {
	var team Team
	if err := r.db.Where("id = ?", id).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&team).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *repository) DeleteTeam(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Team{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) CreateStadium(stadium *Stadium) error {
	return r.db.Create(stadium).Error
}

func (r *repository) GetStadiumByID(id uuid.UUID) (*Stadium, error) {
	var stadium Stadium
	if err := r.db.Where("id = ?", id).First(&stadium).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &stadium, nil
}

func (r *repository) GetAllStadiums() ([]Stadium, error) {
	var stadiums []Stadium
	err := r.db.Order("name ASC").Find(&stadiums).Error
	return stadiums, err
}

func (r *repository) UpdateStadium(id uuid.UUID, updates map[string]interface{}) (*Stadium, error) {
	var stadium Stadium
	if err := r.db.Where("id = ?", id).First(&stadium).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&stadium).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &stadium, nil
}

func (r *repository) DeleteStadium(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&Stadium{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateFixture creates the time slot and the fixture in a single transaction
func (r *repository) CreateFixture(fixture *Fixture, slot *TimeSlot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(slot).Error; err != nil {
			return err
		}
		fixture.TimeSlotID = slot.ID
		return tx.Create(fixture).Error
	})
}

func (r *repository) GetFixtureByID(id uuid.UUID) (*Fixture, error) {
	var fixture Fixture
	err := r.db.
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Stadium").
		Preload("TimeSlot").
		Where("id = ?", id).
		First(&fixture).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &fixture, nil
}

func (r *repository) GetAllFixtures(query FixtureListQuery) ([]Fixture, int64, error) {
	var fixtures []Fixture
	var totalCount int64

	db := r.db.Model(&Fixture{})

	if query.TeamID != "" {
		db = db.Where("team_one_id = ? OR team_two_id = ?", query.TeamID, query.TeamID)
	}

	if query.Stadium != "" {
		db = db.Where("stadium_id IN (?)",
			r.db.Model(&Stadium{}).Select("id").Where("LOWER(name) LIKE ?", "%"+query.Stadium+"%"))
	}

	if query.Day != "" {
		db = db.Where("time_slot_id IN (?)",
			r.db.Model(&TimeSlot{}).Select("id").Where("day = ?", query.Day))
	}

	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}
	offset := (query.Page - 1) * query.Limit

	err := db.
		Preload("TeamOne").
		Preload("TeamTwo").
		Preload("Stadium").
		Preload("TimeSlot").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&fixtures).Error

	return fixtures, totalCount, err
}

func (r *repository) UpdateFixture(id uuid.UUID, updates map[string]interface{}, slotUpdates map[string]interface{}) (*Fixture, error) {
	var fixture Fixture
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&fixture).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if len(updates) > 0 {
			if err := tx.Model(&fixture).Updates(updates).Error; err != nil {
				return err
			}
		}

		if len(slotUpdates) > 0 {
			if err := tx.Model(&TimeSlot{}).
				Where("id = ?", fixture.TimeSlotID).
				Updates(slotUpdates).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetFixtureByID(id)
}

// DeleteFixture removes the fixture and its time slot
func (r *repository) DeleteFixture(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var fixture Fixture
		if err := tx.Where("id = ?", id).First(&fixture).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("id = ?", id).Delete(&Fixture{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", fixture.TimeSlotID).Delete(&TimeSlot{}).Error
	})
}
