package entities

// Header lists the output columns in their fixed order.
var Header = [ColumnCount]string{
	"Sr. No",
	"Question Type",
	"Answer Type",
	"Topic Number",
	"Question (Text Only)",
	"Correct Answer 1",
	"Correct Answer 2",
	"Correct Answer 3",
	"Correct Answer 4",
	"Wrong Answer 1",
	"Wrong Answer 2",
	"Wrong Answer 3",
	"Time in seconds",
	"Difficulty Level",
	"Question (Image/ Audio/ Video)",
	"Contributor's Registered mailId",
	"Solution (Text Only)",
	"Solution (Image/ Audio/ Video)",
	"Variation Number",
}

// ColumnCount is the number of fields in every row, header included.
const ColumnCount = 19

// Column indexes used by tests and sinks.
const (
	ColSrNo = iota
	ColQuestionType
	ColAnswerType
	ColTopicNumber
	ColQuestion
	ColCorrectAnswer1
	ColCorrectAnswer2
	ColCorrectAnswer3
	ColCorrectAnswer4
	ColWrongAnswer1
	ColWrongAnswer2
	ColWrongAnswer3
	ColTimeSeconds
	ColDifficulty
	ColQuestionMedia
	ColContributor
	ColSolution
	ColSolutionMedia
	ColVariationNumber
)

// RowMeta holds the per-run constants written into every row.
type RowMeta struct {
	QuestionType     string
	AnswerType       string
	TopicNumber      string
	TimeSeconds      int
	ContributorEmail string
	VariationNumber  int
}
