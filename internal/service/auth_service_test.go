package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lessonup/lessonup-api/internal/domain"
	repoPostgres "github.com/lessonup/lessonup-api/internal/repository/postgres"
	"github.com/lessonup/lessonup-api/internal/service"
	"github.com/lessonup/lessonup-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				First:    "Alice",
				Last:     "Smith",
				Age:      30,
				Username: "alice_tutor",
				Email:    "a@b.com",
				Password: "Str0ng!Pass",
				UserType: domain.UserTypeTutor,
				UserLang: "en",
			},
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				First:    "Bob",
				Last:     "Jones",
				Age:      40,
				Username: "taken_username",
				Email:    "b@c.com",
				Password: "Str0ng!Pass",
				UserType: domain.UserTypeParent,
				UserLang: "en",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("taken_username").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// The failed attempt must not create a second user row
				var count int64
				testDB.DB.Model(&domain.User{}).Where("username = ?", tt.input.Username).Count(&count)
				assert.EqualValues(t, 1, count)
				return
			}

			require.NoError(t, err)
			assert.NotZero(t, result.User.ID)
			assert.Equal(t, tt.input.Username, result.User.Username)
			assert.NotEmpty(t, result.Token)

			// Registration auto-logs-in: exactly one session, 24h expiry
			var sessions []domain.Session
			require.NoError(t, testDB.DB.Find(&sessions, "user_id = ?", result.User.ID).Error)
			require.Len(t, sessions, 1)
			assert.Equal(t, result.Token, sessions[0].Token)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), sessions[0].ExpiresAt, time.Minute)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("login_user").
		WithPassword("Corr3ct!Pass").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name:  "successful login",
			input: service.LoginInput{Username: user.Username, Password: rawPassword, UserType: user.UserType},
		},
		{
			name:    "unknown username",
			input:   service.LoginInput{Username: "nobody_here", Password: rawPassword},
			wantErr: service.ErrUserNotFound,
		},
		{
			name:    "username lookup is case-sensitive",
			input:   service.LoginInput{Username: "LOGIN_USER", Password: rawPassword},
			wantErr: service.ErrUserNotFound,
		},
		{
			name:    "wrong password",
			input:   service.LoginInput{Username: user.Username, Password: "Wr0ng!Pass99"},
			wantErr: service.ErrPasswordRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, result.User.ID)
			assert.NotEmpty(t, result.Token)
		})
	}

	t.Run("each login mints a fresh session", func(t *testing.T) {
		first, err := authService.Login(ctx, service.LoginInput{Username: user.Username, Password: rawPassword})
		require.NoError(t, err)
		second, err := authService.Login(ctx, service.LoginInput{Username: user.Username, Password: rawPassword})
		require.NoError(t, err)
		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestAuthService_Resolve(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("resolve_user").
		Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{Username: user.Username, Password: rawPassword})
	require.NoError(t, err)

	t.Run("valid token resolves to the user", func(t *testing.T) {
		resolved, err := authService.Resolve(ctx, result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
		assert.Equal(t, user.Username, resolved.Username)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := authService.Resolve(ctx, "not-a-real-token")
		assert.ErrorIs(t, err, service.ErrNoSession)
	})

	t.Run("expired session behaves like no session", func(t *testing.T) {
		stale := &domain.Session{
			Token:     "expired-token",
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Hour),
			CreatedAt: time.Now().Add(-25 * time.Hour),
		}
		require.NoError(t, testDB.DB.Create(stale).Error)

		_, err := authService.Resolve(ctx, stale.Token)
		assert.ErrorIs(t, err, service.ErrNoSession)

		// Lazy expiry removes the stale row
		var count int64
		testDB.DB.Model(&domain.Session{}).Where("token = ?", stale.Token).Count(&count)
		assert.EqualValues(t, 0, count)
	})

	t.Run("session for a deleted user is invalid", func(t *testing.T) {
		ghost, ghostPassword := testutil.NewUserBuilder().
			WithUsername("ghost_user").
			Build(t, testDB.DB)
		ghostResult, err := authService.Login(ctx, service.LoginInput{Username: ghost.Username, Password: ghostPassword})
		require.NoError(t, err)

		require.NoError(t, testDB.DB.Delete(&domain.User{}, "id = ?", ghost.ID).Error)

		_, err = authService.Resolve(ctx, ghostResult.Token)
		assert.ErrorIs(t, err, service.ErrNoSession)
	})
}

func TestAuthService_Logout(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := repoPostgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.User, repos.Session, cfg)
	ctx := context.Background()

	user, rawPassword := testutil.NewUserBuilder().
		WithUsername("logout_user").
		Build(t, testDB.DB)

	result, err := authService.Login(ctx, service.LoginInput{Username: user.Username, Password: rawPassword})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, result.Token))

	_, err = authService.Resolve(ctx, result.Token)
	assert.ErrorIs(t, err, service.ErrNoSession)

	// Destroying an already-destroyed session is not an error
	assert.NoError(t, authService.Logout(ctx, result.Token))
	assert.NoError(t, authService.Logout(ctx, "never-existed"))
}
