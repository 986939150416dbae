package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aliskhannn/shape-quiz-generator/internal/config"
	"github.com/aliskhannn/shape-quiz-generator/internal/csvout"
	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
	"github.com/aliskhannn/shape-quiz-generator/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/shape-quiz-generator/internal/infra/postgres/repository"
	"github.com/aliskhannn/shape-quiz-generator/internal/logger"
	"github.com/aliskhannn/shape-quiz-generator/internal/repository"
	"github.com/aliskhannn/shape-quiz-generator/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run generates the CSV and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	outputPath := cfg.OutputPath
	if len(args) > 0 {
		outputPath = args[0]
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	runID := uuid.NewString()

	log.Info("starting generation",
		zap.String("run_id", runID),
		zap.String("output", outputPath),
		zap.Int("count", cfg.Count),
		zap.Int64("seed", seed),
	)

	var sink service.QuestionSink
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to connect to database: %v\n", err)
			return 1
		}
		defer pool.Close()

		questionRepo := pgrepo.NewQuestionRepository(pool, postgres.NewTransactor(pool))
		if err := questionRepo.EnsureSchema(ctx); err != nil {
			fmt.Fprintf(stderr, "Failed to prepare database: %v\n", err)
			return 1
		}
		sink = questionRepo
	}

	generator, err := service.NewQuestionGenerator(
		repository.NewShapeRepository(),
		rand.New(rand.NewSource(seed)),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to generate CSV: %v\n", err)
		return 1
	}

	meta := entities.RowMeta{
		QuestionType:     "Text",
		AnswerType:       "1",
		TopicNumber:      cfg.TopicNumber,
		TimeSeconds:      cfg.TimeSeconds,
		ContributorEmail: cfg.ContributorEmail,
		VariationNumber:  cfg.VariationNumber,
	}
	exporter := service.NewExportService(generator, meta, sink, log)

	res, err := writeFile(ctx, exporter, runID, outputPath, cfg.Count)
	if err != nil {
		log.Error("generation failed", zap.String("output", outputPath), zap.Error(err))
		fmt.Fprintf(stderr, "Failed to generate CSV: %v\n", err)
		return 1
	}

	if err := exporter.Publish(ctx, res); err != nil {
		fmt.Fprintf(stderr, "Failed to export questions: %v\n", err)
		return 1
	}

	abs, err := filepath.Abs(outputPath)
	if err != nil {
		abs = outputPath
	}
	fmt.Fprintf(stdout, "CSV generated at: %s\n", abs)

	return 0
}

// writeFile opens path once and closes it on every exit path.
func writeFile(ctx context.Context, exporter *service.ExportService, runID, path string, count int) (res *service.Result, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	res, err = exporter.Export(ctx, runID, csvout.NewWriter(f), count)
	if errors.Is(err, context.Canceled) {
		return res, fmt.Errorf("interrupted after %d rows: %w", len(res.Rows), err)
	}
	return res, err
}
