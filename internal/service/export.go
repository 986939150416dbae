package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
)

var ErrInvalidCount = errors.New("question count must not be negative")

// GeneratedRow is a record together with the exact fields written for it.
type GeneratedRow struct {
	SrNo   int
	Record entities.ShapeRecord
	Fields []string
}

// Result describes one finished export.
type Result struct {
	RunID string
	Rows  []GeneratedRow
}

// ExportService drives generation: header first, then one row per question.
type ExportService struct {
	generator *QuestionGenerator
	meta      entities.RowMeta
	sink      QuestionSink
	logger    *zap.Logger
}

// NewExportService creates an ExportService. sink may be nil.
func NewExportService(
	generator *QuestionGenerator,
	meta entities.RowMeta,
	sink QuestionSink,
	logger *zap.Logger,
) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ExportService{
		generator: generator,
		meta:      meta,
		sink:      sink,
		logger:    logger,
	}
}

// Export writes the header and count rows to out and flushes it.
// Rows already written stay written when an error occurs.
func (s *ExportService) Export(ctx context.Context, runID string, out RowWriter, count int) (*Result, error) {
	if count < 0 {
		return nil, fmt.Errorf("count %d: %w", count, ErrInvalidCount)
	}

	if err := out.Write(entities.Header[:]); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	res := &Result{
		RunID: runID,
		Rows:  make([]GeneratedRow, 0, count),
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			out.Flush()
			return res, err
		}

		rec := s.generator.Generate(i)
		fields := Row(i, rec, s.meta)

		if err := out.Write(fields); err != nil {
			return res, fmt.Errorf("write row %d: %w", i+1, err)
		}

		res.Rows = append(res.Rows, GeneratedRow{SrNo: i + 1, Record: rec, Fields: fields})

		s.logger.Debug("row generated",
			zap.Int("sr_no", i+1),
			zap.String("shape", rec.Shape),
			zap.Stringer("variant", rec.Variant),
			zap.Strings("distractors", rec.Distractors[:]),
		)
	}

	out.Flush()
	if err := out.Error(); err != nil {
		return res, fmt.Errorf("flush: %w", err)
	}

	s.logger.Info("questions generated",
		zap.String("run_id", runID),
		zap.Int("count", len(res.Rows)),
	)

	return res, nil
}

// Publish hands the generated rows to the configured sink, if any.
func (s *ExportService) Publish(ctx context.Context, res *Result) error {
	if s.sink == nil || res == nil || len(res.Rows) == 0 {
		return nil
	}

	if err := s.sink.SaveBatch(ctx, res.RunID, res.Rows); err != nil {
		return fmt.Errorf("publish questions: %w", err)
	}

	s.logger.Info("questions published",
		zap.String("run_id", res.RunID),
		zap.Int("count", len(res.Rows)),
	)

	return nil
}
