package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/aliskhannn/shape-quiz-generator/internal/domain/entities"
)

const (
	questionEn = "What is the name of the geometric shape shown in the image below?<br>"
	questionMr = "चित्रात दाखविलेल्या भौमितिक आकाराचे नाव काय आहे?<br>"

	lineBreak     = "<br>"
	langSeparator = "<br>#"

	difficultyLevel = "1"

	// shapeSeedBase offsets the row index before picking a shape.
	shapeSeedBase = 100
)

var ErrEmptyCatalogue = errors.New("shape catalogue has no correct shapes")

// QuestionGenerator builds one ShapeRecord per row.
type QuestionGenerator struct {
	catalogue ShapeCatalogue
	options   *OptionGenerator
	rng       *rand.Rand

	shapes    []string
	graphics  [entities.GraphicVariantCount]string
	solutions map[string]string
}

// NewQuestionGenerator resolves every illustration and solution up front so that
// Generate itself cannot fail.
func NewQuestionGenerator(catalogue ShapeCatalogue, rng *rand.Rand) (*QuestionGenerator, error) {
	shapes := catalogue.CorrectShapes()
	if len(shapes) == 0 {
		return nil, ErrEmptyCatalogue
	}

	options, err := NewOptionGenerator(catalogue.DistractorShapes(), rng)
	if err != nil {
		return nil, err
	}

	g := &QuestionGenerator{
		catalogue: catalogue,
		options:   options,
		rng:       rng,
		shapes:    shapes,
		solutions: make(map[string]string, len(shapes)),
	}

	for v := entities.GraphicVariant(0); v < entities.GraphicVariantCount; v++ {
		svg, err := catalogue.Graphic(v)
		if err != nil {
			return nil, fmt.Errorf("load graphic %s: %w", v, err)
		}
		g.graphics[v] = svg
	}

	for _, shape := range shapes {
		solution, err := catalogue.Solution(shape)
		if err != nil {
			return nil, fmt.Errorf("load solution: %w", err)
		}
		g.solutions[shape] = solution
	}

	return g, nil
}

// Generate produces the record for a zero-based row index.
// The shape depends only on the index; the illustration and distractors are random.
func (g *QuestionGenerator) Generate(rowIndex int) entities.ShapeRecord {
	shape := g.shapes[(shapeSeedBase+rowIndex)%len(g.shapes)]

	variant := entities.GraphicVariant(g.rng.Intn(entities.GraphicVariantCount))
	distractors := g.options.WrongAnswers()

	var wrong [WrongAnswerCount]string
	for i, name := range distractors {
		wrong[i] = g.FormatAnswer(name)
	}
	wrong[len(wrong)-1] += lineBreak

	return entities.ShapeRecord{
		Shape:         shape,
		Variant:       variant,
		QuestionEn:    questionEn,
		QuestionMr:    questionMr + g.graphics[variant] + lineBreak,
		CorrectAnswer: g.FormatAnswer(shape),
		Distractors:   distractors,
		WrongAnswers:  wrong,
		Solution:      g.solutions[shape],
		Difficulty:    difficultyLevel,
	}
}

// FormatAnswer renders a shape name as "<English><br>#<Marathi><br>".
func (g *QuestionGenerator) FormatAnswer(shape string) string {
	return shape + langSeparator + g.catalogue.MarathiName(shape) + lineBreak
}

// Row lays a record out in the fixed column order.
func Row(rowIndex int, rec entities.ShapeRecord, meta entities.RowMeta) []string {
	row := make([]string, entities.ColumnCount)

	row[entities.ColSrNo] = strconv.Itoa(rowIndex + 1)
	row[entities.ColQuestionType] = meta.QuestionType
	row[entities.ColAnswerType] = meta.AnswerType
	row[entities.ColTopicNumber] = meta.TopicNumber
	row[entities.ColQuestion] = rec.QuestionText()
	row[entities.ColCorrectAnswer1] = rec.CorrectAnswer
	row[entities.ColWrongAnswer1] = rec.WrongAnswers[0]
	row[entities.ColWrongAnswer2] = rec.WrongAnswers[1]
	row[entities.ColWrongAnswer3] = rec.WrongAnswers[2]
	row[entities.ColTimeSeconds] = strconv.Itoa(meta.TimeSeconds)
	row[entities.ColDifficulty] = rec.Difficulty
	row[entities.ColQuestionMedia] = rec.QuestionImage
	row[entities.ColContributor] = meta.ContributorEmail
	row[entities.ColSolution] = rec.Solution
	row[entities.ColSolutionMedia] = rec.SolutionImage
	row[entities.ColVariationNumber] = strconv.Itoa(meta.VariationNumber)

	return row
}
