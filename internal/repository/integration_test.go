//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/database"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/dto"
	"cognitive-pathways/internal/repository"
	"cognitive-pathways/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "cognitive_pathways_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/cognitive_pathways_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func openMigrated(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, config.DBConfig{Host: "container", MaxOpenConns: 5}, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db.DB))
	return db
}

func TestMigrations_DownAndUp(t *testing.T) {
	db := openMigrated(t)
	mg, err := database.NewMigrator(db.DB)
	require.NoError(t, err)

	version, dirty, ok, err := mg.Version()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, dirty)
	assert.Equal(t, uint(3), version)

	require.NoError(t, mg.Down(1, false))
	version, _, _, err = mg.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)

	require.NoError(t, mg.Up())
}

func TestRepositories_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openMigrated(t)
	now := time.Now().UTC().Truncate(time.Microsecond)

	users := repository.NewSQLXUserRepository(db)
	questions := repository.NewSQLXQuestionRepository(db)
	attempts := repository.NewSQLXQuizAttemptRepository(db)
	refdata := repository.NewSQLXRefDataRepository(db)
	txm := repository.NewTransactionManagerAdapter(db)

	user := domain.NewUser(util.NewULID(), "Asha", "Rao", "asha@example.com", "hash", now)

	t.Run("users", func(t *testing.T) {
		require.NoError(t, users.CreateUser(ctx, user))

		byEmail, err := users.GetUserByEmail(ctx, "ASHA@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, user.ID, byEmail.ID)

		dup := domain.NewUser(util.NewULID(), "A", "R", "asha@example.com", "hash", now)
		var de *domain.DomainError
		require.True(t, errors.As(users.CreateUser(ctx, dup), &de))
		assert.Equal(t, domain.CodeDuplicate, de.Code)

		missing, err := users.GetUserByID(ctx, util.NewULID())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("questions", func(t *testing.T) {
		for i, text := range []string{"First?", "Second?"} {
			require.NoError(t, questions.CreateQuestion(ctx, &domain.Question{
				ID:        util.NewULID(),
				Category:  domain.CategoryCareer,
				Question:  text,
				Options:   []string{"A", "B"},
				CreatedAt: now.Add(time.Duration(i) * time.Second),
			}))
		}

		got, err := questions.ListByCategory(ctx, domain.CategoryCareer)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "First?", got[0].Question)
		assert.Equal(t, []string{"A", "B"}, got[0].Options)

		none, err := questions.ListByCategory(ctx, domain.CategoryFoundational)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("attempts", func(t *testing.T) {
		attempt := domain.NewPendingAttempt(util.NewULID(), user.ID, domain.CategoryCareer, []string{"A"}, "Science", now)
		require.NoError(t, attempts.CreateAttempt(ctx, attempt))

		raw := `{"recommendedStream":"Engineering"}`
		attempt.Resolve(&domain.RecommendationOutcome{
			Recommendation: domain.Recommendation{RecommendedStream: "Engineering", TopCourses: []string{"CSE"}, AIInsights: "Go build"},
			RawResponse:    &raw,
		}, now.Add(time.Second))
		require.NoError(t, attempts.UpdateAttemptResult(ctx, attempt))

		list, err := attempts.ListAttemptsByUser(ctx, user.ID, dto.NewPagination(1, 10, 10, 50))
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].IsPending())
		require.NotNil(t, list[0].Result.RecommendedStream)
		assert.Equal(t, "Engineering", *list[0].Result.RecommendedStream)
		assert.Equal(t, []string{"CSE"}, list[0].Result.TopCourses)

		count, err := attempts.CountAttemptsByUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		verbose := domain.NewPendingAttempt(util.NewULID(), user.ID, domain.CategoryCareer, []string{"B"}, strings.Repeat("s", 100), now)
		require.NoError(t, attempts.CreateAttempt(ctx, verbose))
		verbose.Resolve(&domain.RecommendationOutcome{
			Recommendation: domain.Recommendation{RecommendedStream: strings.Repeat("Engineering ", 40), AIInsights: "Long answer"},
		}, now.Add(time.Second))
		require.NoError(t, attempts.UpdateAttemptResult(ctx, verbose))

		ghost := domain.NewPendingAttempt(util.NewULID(), user.ID, domain.CategoryCareer, []string{"A"}, "", now)
		assert.Error(t, attempts.UpdateAttemptResult(ctx, ghost))
	})

	t.Run("refdata", func(t *testing.T) {
		rank := 3
		require.NoError(t, refdata.CreateCourse(ctx, &domain.Course{ID: util.NewULID(), Name: "Computer Science Engineering", Stream: "Science", Careers: []string{"Software Developer"}, CreatedAt: now}))
		require.NoError(t, refdata.CreateCollege(ctx, &domain.College{ID: util.NewULID(), Name: "IIT Delhi", Location: "New Delhi", Type: "Government", Ranking: &rank, Programs: []string{}, Facilities: []string{}, CreatedAt: now}))
		require.NoError(t, refdata.CreateTimelineEvent(ctx, &domain.TimelineEvent{ID: util.NewULID(), Title: "JEE", Date: now.Add(48 * time.Hour), Category: "exam", IsActive: true, CreatedAt: now}))

		courses, total, err := refdata.ListCourses(ctx, domain.CourseFilter{Search: "developer"}, dto.NewPagination(1, 10, 10, 100))
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, courses, 1)

		colleges, _, err := refdata.ListColleges(ctx, domain.CollegeFilter{Location: "delhi"}, dto.NewPagination(1, 10, 10, 100))
		require.NoError(t, err)
		require.Len(t, colleges, 1)
		require.NotNil(t, colleges[0].Ranking)
		assert.Equal(t, 3, *colleges[0].Ranking)

		events, _, err := refdata.ListTimelineEvents(ctx, domain.TimelineFilter{From: now, To: now.Add(30 * 24 * time.Hour)}, dto.NewPagination(1, 10, 10, 100))
		require.NoError(t, err)
		assert.Len(t, events, 1)

		streams, err := refdata.DistinctCourseStreams(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Science"}, streams)
	})

	t.Run("transaction rollback", func(t *testing.T) {
		err := txm.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := questions.DeleteAllQuestions(txCtx); err != nil {
				return err
			}
			return errors.New("abort")
		})
		require.EqualError(t, err, "abort")

		count, err := questions.CountQuestions(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}
