package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"cognitive-pathways/cmd/seed_initial_data/internal/seedmodels"
	"cognitive-pathways/internal/config"
	"cognitive-pathways/internal/database"
	"cognitive-pathways/internal/domain"
	"cognitive-pathways/internal/logger"
	"cognitive-pathways/internal/repository"
	"cognitive-pathways/internal/util"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:embed fixtures/initial_data.json
var builtinSeed []byte

var errAlreadySeeded = errors.New("database already holds quiz questions; rerun with --reset to replace them")

func main() {
	cmd := &cli.Command{
		Name:  "seed_initial_data",
		Usage: "Seed quiz questions, courses, colleges and timeline events",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a JSON seed file (defaults to the built-in fixtures)",
				Sources: cli.EnvVars("SEED_FILE"),
			},
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Delete existing questions and reference data before seeding",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	raw := builtinSeed
	if path := cmd.String("file"); path != "" {
		log.Info("Loading seed data from file", zap.String("path", path))
		if raw, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("failed to read seed file %s: %w", path, err)
		}
	}
	data, err := seedmodels.Parse(raw)
	if err != nil {
		return err
	}

	db, err := database.NewPostgresDB(ctx, cfg.DB, cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	s := &seeder{
		tx:        repository.NewTransactionManagerAdapter(db),
		questions: repository.NewSQLXQuestionRepository(db),
		refdata:   repository.NewSQLXRefDataRepository(db),
		now:       time.Now().UTC(),
	}
	if err := s.seed(ctx, data, cmd.Bool("reset")); err != nil {
		return err
	}

	log.Info("Database seeding completed",
		zap.Int("questions", len(data.Questions)),
		zap.Int("courses", len(data.Courses)),
		zap.Int("colleges", len(data.Colleges)),
		zap.Int("timeline_events", len(data.Timeline)))
	return nil
}

type seeder struct {
	tx        domain.TransactionManager
	questions domain.QuestionRepository
	refdata   domain.RefDataRepository
	now       time.Time
}

// seed writes every collection in its own transaction. Collections run concurrently;
// the first failure cancels the others.
func (s *seeder) seed(ctx context.Context, data *seedmodels.SeedData, reset bool) error {
	if reset {
		err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := s.questions.DeleteAllQuestions(txCtx); err != nil {
				return err
			}
			return s.refdata.DeleteAllRefData(txCtx)
		})
		if err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
		logger.Get().Info("Cleared existing data")
	} else {
		count, err := s.questions.CountQuestions(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return errAlreadySeeded
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.inTx(gctx, "questions", func(c context.Context) error { return s.seedQuestions(c, data.Questions) }) })
	g.Go(func() error { return s.inTx(gctx, "courses", func(c context.Context) error { return s.seedCourses(c, data.Courses) }) })
	g.Go(func() error { return s.inTx(gctx, "colleges", func(c context.Context) error { return s.seedColleges(c, data.Colleges) }) })
	g.Go(func() error { return s.inTx(gctx, "timeline", func(c context.Context) error { return s.seedTimeline(c, data.Timeline) }) })
	return g.Wait()
}

func (s *seeder) inTx(ctx context.Context, collection string, fn func(ctx context.Context) error) error {
	if err := s.tx.WithTransaction(ctx, fn); err != nil {
		logger.Get().Error("Seeding collection failed, transaction rolled back", zap.String("collection", collection), zap.Error(err))
		return fmt.Errorf("seed %s: %w", collection, err)
	}
	logger.Get().Info("Seeded collection", zap.String("collection", collection))
	return nil
}

func (s *seeder) seedQuestions(ctx context.Context, items []seedmodels.SeedQuestion) error {
	for i, item := range items {
		// Offsetting the timestamp keeps file order as creation order.
		q, err := item.ToDomain(util.NewULID(), s.now.Add(time.Duration(i)*time.Millisecond))
		if err != nil {
			return err
		}
		if err := s.questions.CreateQuestion(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedCourses(ctx context.Context, items []seedmodels.SeedCourse) error {
	for _, item := range items {
		if err := s.refdata.CreateCourse(ctx, item.ToDomain(util.NewULID(), s.now)); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedColleges(ctx context.Context, items []seedmodels.SeedCollege) error {
	for _, item := range items {
		if err := s.refdata.CreateCollege(ctx, item.ToDomain(util.NewULID(), s.now)); err != nil {
			return err
		}
	}
	return nil
}

func (s *seeder) seedTimeline(ctx context.Context, items []seedmodels.SeedTimelineEvent) error {
	for _, item := range items {
		e, err := item.ToDomain(util.NewULID(), s.now)
		if err != nil {
			return err
		}
		if err := s.refdata.CreateTimelineEvent(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
