// Package entities contains domain entities used across the application.
package entities

// ShapeRecord is one generated quiz question about a geometric shape.
// All answer strings are already bilingual-formatted.
type ShapeRecord struct {
	Shape         string         // English name of the correct shape
	Variant       GraphicVariant // illustration embedded in QuestionMr
	QuestionEn    string         // English prompt
	QuestionMr    string         // Marathi prompt followed by the inline SVG
	CorrectAnswer string         // "<English><br>#<Marathi><br>"
	Distractors   [3]string      // English names of the wrong answers
	WrongAnswers  [3]string      // bilingual-formatted wrong answers, last one ends with an extra <br>
	QuestionImage string         // always empty, the graphic lives in the question text
	Solution      string         // bilingual explanation
	SolutionImage string         // always empty
	Difficulty    string
}

// QuestionText returns the combined bilingual question column.
func (r ShapeRecord) QuestionText() string {
	return r.QuestionEn + "<br>#" + r.QuestionMr
}
