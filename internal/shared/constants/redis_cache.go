package constants

import "time"

// Redis cache keys and TTLs.
// Pattern: varsity:{module}:{operation}:{identifier}:{params?}

const (
	// Stable reference data (teams, stadiums, courses, rooms)
	TTL_STATIC_LONG   = 24 * time.Hour
	TTL_STATIC_MEDIUM = 12 * time.Hour

	// Changes occasionally (fixture listings, section listings)
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour
	TTL_SEMI_STATIC_SHORT  = 1 * time.Hour

	// Changes frequently (analytics)
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute
)

const CACHE_PREFIX = "varsity"

// Fixture cache keys
const (
	CACHE_KEY_FIXTURES_LIST    = CACHE_PREFIX + ":fixtures:list"          // + :page:X:limit:Y
	CACHE_KEY_FIXTURE_DETAIL   = CACHE_PREFIX + ":fixtures:detail:uuid:"  // + fixture-id
	PATTERN_INVALIDATE_FIXTURE = CACHE_PREFIX + ":fixtures:*"
)

// Section cache keys
const (
	CACHE_KEY_SECTIONS_LIST    = CACHE_PREFIX + ":sections:list"
	PATTERN_INVALIDATE_SECTION = CACHE_PREFIX + ":sections:*"
)

// BuildFixtureDetailKey builds the cache key for a single fixture.
func BuildFixtureDetailKey(fixtureID string) string {
	return CACHE_KEY_FIXTURE_DETAIL + fixtureID
}
