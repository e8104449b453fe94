package fixtures

import (
	"context"
	"errors"
	"fmt"
	"math"

	"varsity/internal/shared/constants"
	"varsity/pkg/cache"

	"github.com/google/uuid"
)

var (
	ErrTeamNotFound    = errors.New("team not found")
	ErrStadiumNotFound = errors.New("stadium not found")
	ErrFixtureNotFound = errors.New("fixture not found")
	ErrSameTeams       = errors.New("a team cannot play against itself")
)

type Service interface {
	SetCacheService(cacheService cache.Service)

	// Teams
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error)
	GetTeamByID(ctx context.Context, id uuid.UUID) (*Team, error)
	GetAllTeams(ctx context.Context) ([]Team, error)
	UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error

	// Stadiums
	CreateStadium(ctx context.Context, req CreateStadiumRequest) (*Stadium, error)
	GetStadiumByID(ctx context.Context, id uuid.UUID) (*Stadium, error)
	GetAllStadiums(ctx context.Context) ([]Stadium, error)
	UpdateStadium(ctx context.Context, id uuid.UUID, req UpdateStadiumRequest) (*Stadium, error)
	DeleteStadium(ctx context.Context, id uuid.UUID) error

	// Fixtures
	CreateFixture(ctx context.Context, req CreateFixtureRequest) (*FixtureResponse, error)
	GetFixtureByID(ctx context.Context, id uuid.UUID) (*FixtureResponse, error)
	GetAllFixtures(ctx context.Context, query FixtureListQuery) (*PaginatedFixtures, error)
	UpdateFixture(ctx context.Context, id uuid.UUID, req UpdateFixtureRequest) (*FixtureResponse, error)
	DeleteFixture(ctx context.Context, id uuid.UUID) error
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

func (s *service) invalidateFixtureCache(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	// Stale listings are tolerable; invalidation failures must not fail the write
	_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FIXTURE)
}

// Teams

func (s *service) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	team := &Team{
		Name:      req.Name,
		ShortName: req.ShortName,
		LogoURL:   req.LogoURL,
	}

	if err := s.repo.CreateTeam(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return team, nil
}

func (s *service) GetTeamByID(ctx context.Context, id uuid.UUID) (*Team, error) {
	team, err := s.repo.GetTeamByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *service) GetAllTeams(ctx context.Context) ([]Team, error) {
	return s.repo.GetAllTeams()
}

func (s *service) UpdateTeam(ctx context.Context, id uuid.UUID, req UpdateTeamRequest) (*Team, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ShortName != nil {
		updates["short_name"] = *req.ShortName
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}

	team, err := s.repo.UpdateTeam(id, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	s.invalidateFixtureCache(ctx)
	return team, nil
}

func (s *service) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTeam(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	s.invalidateFixtureCache(ctx)
	return nil
}

// Stadiums

func (s *service) CreateStadium(ctx context.Context, req CreateStadiumRequest) (*Stadium, error) {
	stadium := &Stadium{
		Name: req.Name,
		Abbr: req.Abbr,
		Size: req.Size,
	}

	if err := s.repo.CreateStadium(stadium); err != nil {
		return nil, fmt.Errorf("failed to create stadium: %w", err)
	}

	return stadium, nil
}

func (s *service) GetStadiumByID(ctx context.Context, id uuid.UUID) (*Stadium, error) {
	stadium, err := s.repo.GetStadiumByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrStadiumNotFound
		}
		return nil, err
	}
	return stadium, nil
}

func (s *service) GetAllStadiums(ctx context.Context) ([]Stadium, error) {
	return s.repo.GetAllStadiums()
}

func (s *service) UpdateStadium(ctx context.Context, id uuid.UUID, req UpdateStadiumRequest) (*Stadium, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Abbr != nil {
		updates["abbr"] = *req.Abbr
	}
	if req.Size != nil {
		updates["size"] = *req.Size
	}

	stadium, err := s.repo.UpdateStadium(id, updates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrStadiumNotFound
		}
		return nil, err
	}

	s.invalidateFixtureCache(ctx)
	return stadium, nil
}

func (s *service) DeleteStadium(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteStadium(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrStadiumNotFound
		}
		return err
	}

	s.invalidateFixtureCache(ctx)
	return nil
}

// Fixtures

func (s *service) CreateFixture(ctx context.Context, req CreateFixtureRequest) (*FixtureResponse, error) {
	teamOneID, err := uuid.Parse(req.TeamOneID)
	if err != nil {
		return nil, fmt.Errorf("invalid team one id: %w", err)
	}
	teamTwoID, err := uuid.Parse(req.TeamTwoID)
	if err != nil {
		return nil, fmt.Errorf("invalid team two id: %w", err)
	}
	if teamOneID == teamTwoID {
		return nil, ErrSameTeams
	}
	stadiumID, err := uuid.Parse(req.StadiumID)
	if err != nil {
		return nil, fmt.Errorf("invalid stadium id: %w", err)
	}

	// Validate referenced entities exist
	if _, err := s.GetTeamByID(ctx, teamOneID); err != nil {
		return nil, err
	}
	if _, err := s.GetTeamByID(ctx, teamTwoID); err != nil {
		return nil, err
	}
	if _, err := s.GetStadiumByID(ctx, stadiumID); err != nil {
		return nil, err
	}

	slot := &TimeSlot{
		Day:   req.Day,
		Start: req.Start,
		End:   req.End,
	}

	fixture := &Fixture{
		TeamOneID:      teamOneID,
		TeamTwoID:      teamTwoID,
		StadiumID:      stadiumID,
		PricePerTicket: req.PricePerTicket,
	}

	if err := s.repo.CreateFixture(fixture, slot); err != nil {
		return nil, fmt.Errorf("failed to create fixture: %w", err)
	}

	s.invalidateFixtureCache(ctx)

	return s.GetFixtureByID(ctx, fixture.ID)
}

func (s *service) GetFixtureByID(ctx context.Context, id uuid.UUID) (*FixtureResponse, error) {
	cacheKey := constants.BuildFixtureDetailKey(id.String())

	if s.cacheService != nil {
		var cached FixtureResponse
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	fixture, err := s.repo.GetFixtureByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	resp := toFixtureResponse(fixture)

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, resp, constants.TTL_SEMI_STATIC_SHORT)
	}

	return resp, nil
}

func (s *service) GetAllFixtures(ctx context.Context, query FixtureListQuery) (*PaginatedFixtures, error) {
	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	cacheKey := fmt.Sprintf("%s:page:%d:limit:%d:team:%s:stadium:%s:day:%s",
		constants.CACHE_KEY_FIXTURES_LIST, query.Page, query.Limit, query.TeamID, query.Stadium, query.Day)

	if s.cacheService != nil {
		var cached PaginatedFixtures
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	fixtureList, totalCount, err := s.repo.GetAllFixtures(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}

	responses := make([]FixtureResponse, len(fixtureList))
	for i := range fixtureList {
		responses[i] = *toFixtureResponse(&fixtureList[i])
	}

	result := &PaginatedFixtures{
		Fixtures:   responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, cacheKey, result, constants.TTL_SEMI_STATIC_SHORT)
	}

	return result, nil
}

func (s *service) UpdateFixture(ctx context.Context, id uuid.UUID, req UpdateFixtureRequest) (*FixtureResponse, error) {
	updates := make(map[string]interface{})
	slotUpdates := make(map[string]interface{})

	if req.StadiumID != nil {
		stadiumID, err := uuid.Parse(*req.StadiumID)
		if err != nil {
			return nil, fmt.Errorf("invalid stadium id: %w", err)
		}
		if _, err := s.GetStadiumByID(ctx, stadiumID); err != nil {
			return nil, err
		}
		updates["stadium_id"] = stadiumID
	}
	if req.PricePerTicket != nil {
		updates["price_per_ticket"] = *req.PricePerTicket
	}
	if req.Day != nil {
		slotUpdates["day"] = *req.Day
	}
	if req.Start != nil {
		slotUpdates["start"] = *req.Start
	}
	if req.End != nil {
		slotUpdates["end"] = *req.End
	}

	fixture, err := s.repo.UpdateFixture(id, updates, slotUpdates)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}

	s.invalidateFixtureCache(ctx)
	return toFixtureResponse(fixture), nil
}

func (s *service) DeleteFixture(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteFixture(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrFixtureNotFound
		}
		return err
	}

	s.invalidateFixtureCache(ctx)
	return nil
}

func toFixtureResponse(f *Fixture) *FixtureResponse {
	return &FixtureResponse{
		ID: f.ID.String(),
		TeamOne: TeamInfo{
			ID:        f.TeamOne.ID.String(),
			Name:      f.TeamOne.Name,
			ShortName: f.TeamOne.ShortName,
			LogoURL:   f.TeamOne.LogoURL,
		},
		TeamTwo: TeamInfo{
			ID:        f.TeamTwo.ID.String(),
			Name:      f.TeamTwo.Name,
			ShortName: f.TeamTwo.ShortName,
			LogoURL:   f.TeamTwo.LogoURL,
		},
		Stadium: StadiumInfo{
			ID:   f.Stadium.ID.String(),
			Name: f.Stadium.Name,
			Abbr: f.Stadium.Abbr,
			Size: f.Stadium.Size,
		},
		TimeSlot: TimeSlotInfo{
			ID:    f.TimeSlot.ID.String(),
			Day:   f.TimeSlot.Day,
			Start: f.TimeSlot.Start,
			End:   f.TimeSlot.End,
		},
		PricePerTicket: f.PricePerTicket,
		CreatedAt:      f.CreatedAt,
		UpdatedAt:      f.UpdatedAt,
	}
}
