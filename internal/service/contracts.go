package service

import (
	"context"

	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
)

// ShapeCatalogue is the static source of shapes, names and illustrations.
type ShapeCatalogue interface {
	CorrectShapes() []string
	DistractorShapes() []string
	MarathiName(englishName string) string
	Graphic(variant entities.GraphicVariant) (string, error)
	Solution(shape string) (string, error)
}

// RowWriter receives CSV records.
type RowWriter interface {
	Write(record []string) error
	Flush()
	Error() error
}

// QuestionSink stores generated questions somewhere other than the CSV file.
type QuestionSink interface {
	SaveBatch(ctx context.Context, runID string, rows []GeneratedRow) error
}
