package repository

import (
	"context"
	"math/rand"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
	"github.com/aliskhannn/shape-quiz-generator/internal/infra/postgres"
	shapes "github.com/aliskhannn/shape-quiz-generator/internal/repository"
	"github.com/aliskhannn/shape-quiz-generator/internal/service"
)

func TestVariationNumber(t *testing.T) {
	fields := make([]string, entities.ColumnCount)
	fields[entities.ColVariationNumber] = "128"

	if got := variationNumber(fields); got != "128" {
		t.Fatalf("variationNumber = %q, want 128", got)
	}
	if got := variationNumber(nil); got != "" {
		t.Fatalf("variationNumber(nil) = %q, want empty", got)
	}
}

func TestQuestionRepository_SaveBatch(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{MaxConns: 2})
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Close()

	repo := NewQuestionRepository(pool, postgres.NewTransactor(pool))
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	gen, err := service.NewQuestionGenerator(shapes.NewShapeRepository(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewQuestionGenerator: %v", err)
	}
	meta := entities.RowMeta{VariationNumber: 128}

	rows := make([]service.GeneratedRow, 3)
	for i := range rows {
		rec := gen.Generate(i)
		rows[i] = service.GeneratedRow{SrNo: i + 1, Record: rec, Fields: service.Row(i, rec, meta)}
	}

	runID := uuid.NewString()
	if err := repo.SaveBatch(ctx, runID, rows); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM generated_questions WHERE run_id = $1", runID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(rows) {
		t.Fatalf("stored %d rows, want %d", count, len(rows))
	}

	var distractors []string
	if err := pool.QueryRow(ctx,
		"SELECT distractors FROM generated_questions WHERE run_id = $1 AND sr_no = 1", runID,
	).Scan(&distractors); err != nil {
		t.Fatalf("select distractors: %v", err)
	}
	if len(distractors) != service.WrongAnswerCount {
		t.Fatalf("distractors = %v", distractors)
	}

	// Same run id again violates the primary key and must leave nothing behind.
	if err := repo.SaveBatch(ctx, runID, rows); err == nil {
		t.Fatalf("expected duplicate run to fail")
	}
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM generated_questions WHERE run_id = $1", runID).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != len(rows) {
		t.Fatalf("after failed batch stored %d rows, want %d", count, len(rows))
	}
}
