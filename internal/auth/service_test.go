package auth

import (
	"context"
	"testing"
	"time"

	"varsity/internal/shared/config"
	"varsity/internal/users"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateUser(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockRepository) UpdateUserPassword(ctx context.Context, userID, hashedPassword string) error {
	args := m.Called(ctx, userID, hashedPassword)
	return args.Error(0)
}

func (m *mockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:           "test-secret",
		JWTExpiresIn:     15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	}
}

func testUser(role users.Role, password string) *users.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &users.User{
		ID:       uuid.New(),
		Name:     "Test User",
		Email:    "test@varsity.edu",
		Password: string(hashed),
		Role:     role,
	}
}

func TestRegister_DefaultsToAudienceRole(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	repo.On("EmailExists", mock.Anything, "new@varsity.edu").Return(false, nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *users.User) bool {
		return u.Role == users.RoleAudience
	})).Return(nil)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "New User",
		Email:    "new@varsity.edu",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, string(users.RoleAudience), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	repo.AssertExpectations(t)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	repo.On("EmailExists", mock.Anything, "new@varsity.edu").Return(false, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "New User",
		Email:    "new@varsity.edu",
		Password: "secret123",
		Role:     "SUPERUSER",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	repo.On("EmailExists", mock.Anything, "taken@varsity.edu").Return(true, nil)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "New User",
		Email:    "taken@varsity.edu",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleStudent, "secret123")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.User.ID)
	assert.Equal(t, string(users.RoleStudent), resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleStudent, "secret123")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	repo.On("GetUserByEmail", mock.Anything, "nobody@varsity.edu").Return(nil, ErrUserNotFound)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@varsity.edu",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleAdmin, "secret123")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, string(users.RoleAdmin), claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestValidateToken_Garbage(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	_, err := svc.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_RejectsAccessToken(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleAudience, "secret123")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleAudience, "secret123")
	repo.On("GetUserByEmail", mock.Anything, user.Email).Return(user, nil)
	repo.On("GetUserByID", mock.Anything, user.ID.String()).Return(user, nil)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testJWTConfig())

	user := testUser(users.RoleStudent, "secret123")
	repo.On("GetUserByID", mock.Anything, user.ID.String()).Return(user, nil)

	err := svc.ChangePassword(context.Background(), user.ID.String(), &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	repo.AssertNotCalled(t, "UpdateUserPassword", mock.Anything, mock.Anything, mock.Anything)
}
