package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/shape-quiz-generator/internal/infra/postgres"
	"github.com/aliskhannn/shape-quiz-generator/internal/service"
)

const createGeneratedQuestions = `
	CREATE TABLE IF NOT EXISTS generated_questions (
		run_id           UUID        NOT NULL,
		sr_no            INTEGER     NOT NULL,
		shape            TEXT        NOT NULL,
		graphic_variant  TEXT        NOT NULL,
		question         TEXT        NOT NULL,
		correct_answer   TEXT        NOT NULL,
		distractors      TEXT[]      NOT NULL,
		wrong_answers    TEXT[]      NOT NULL,
		solution         TEXT        NOT NULL,
		difficulty       TEXT        NOT NULL,
		variation_number TEXT        NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (run_id, sr_no)
	)
`

const insertGeneratedQuestion = `
	INSERT INTO generated_questions (
		run_id, sr_no, shape, graphic_variant, question, correct_answer,
		distractors, wrong_answers, solution, difficulty, variation_number
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`

// QuestionRepository stores generated rows in the question bank database.
type QuestionRepository struct {
	db         postgres.DBTX
	transactor *postgres.Transactor
}

// NewQuestionRepository creates a QuestionRepository.
func NewQuestionRepository(db postgres.DBTX, transactor *postgres.Transactor) *QuestionRepository {
	return &QuestionRepository{db: db, transactor: transactor}
}

// EnsureSchema creates the generated_questions table if it does not exist.
func (r *QuestionRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createGeneratedQuestions); err != nil {
		return fmt.Errorf("create generated_questions: %w", err)
	}
	return nil
}

// SaveBatch inserts all rows of a run in a single transaction.
func (r *QuestionRepository) SaveBatch(ctx context.Context, runID string, rows []service.GeneratedRow) error {
	return r.transactor.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return saveRows(ctx, tx, runID, rows)
	})
}

func saveRows(ctx context.Context, db postgres.DBTX, runID string, rows []service.GeneratedRow) error {
	batch := &pgx.Batch{}
	for _, row := range rows {
		rec := row.Record
		batch.Queue(
			insertGeneratedQuestion,
			runID,
			row.SrNo,
			rec.Shape,
			rec.Variant.String(),
			rec.QuestionText(),
			rec.CorrectAnswer,
			rec.Distractors[:],
			rec.WrongAnswers[:],
			rec.Solution,
			rec.Difficulty,
			variationNumber(row.Fields),
		)
	}

	br := db.SendBatch(ctx, batch)
	for _, row := range rows {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert question %d: %w", row.SrNo, err)
		}
	}

	if err := br.Close(); err != nil {
		return fmt.Errorf("close batch: %w", err)
	}

	return nil
}
