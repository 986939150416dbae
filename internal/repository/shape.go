package repository

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
)

var (
	ErrShapeNotFound  = errors.New("shape not found")
	ErrInvalidVariant = errors.New("invalid graphic variant")
)

// ShapeRepository provides the static shape catalogue, Marathi names,
// illustrations and solution texts. All data is compiled in.
type ShapeRepository struct {
	correct     []string
	distractors []string
}

// NewShapeRepository creates a ShapeRepository over the built-in catalogue.
func NewShapeRepository() *ShapeRepository {
	return &ShapeRepository{
		correct:     correctShapes,
		distractors: distractorShapes,
	}
}

// CorrectShapes returns the shapes that may be the answer to a question.
func (r *ShapeRepository) CorrectShapes() []string {
	return append([]string(nil), r.correct...)
}

// DistractorShapes returns a fresh copy of the wrong-answer pool.
// Callers are free to shuffle the result.
func (r *ShapeRepository) DistractorShapes() []string {
	return append([]string(nil), r.distractors...)
}

// MarathiName returns the Marathi display name for an English shape name,
// or the English name itself when no translation is known.
func (r *ShapeRepository) MarathiName(englishName string) string {
	return MarathiName(englishName)
}

// MarathiName looks up the built-in translation table.
func MarathiName(englishName string) string {
	if name, ok := marathiNames[englishName]; ok {
		return name
	}
	return englishName
}

// Graphic returns the inline SVG for the given illustration.
func (r *ShapeRepository) Graphic(variant entities.GraphicVariant) (string, error) {
	if !variant.Valid() {
		return "", fmt.Errorf("variant %d: %w", variant, ErrInvalidVariant)
	}
	return cylinderGraphics[variant], nil
}

// Solution returns the bilingual explanation for a shape.
func (r *ShapeRepository) Solution(shape string) (string, error) {
	s, ok := solutions[shape]
	if !ok {
		return "", fmt.Errorf("solution for %q: %w", shape, ErrShapeNotFound)
	}
	return s, nil
}
