package service

import (
	"errors"
	"fmt"
	"math/rand"
)

// WrongAnswerCount is the number of distractors offered per question.
const WrongAnswerCount = 3

var ErrNotEnoughDistractors = errors.New("not enough distractor shapes")

// OptionGenerator picks wrong answers for quiz questions.
type OptionGenerator struct {
	pool []string
	rng  *rand.Rand
}

// NewOptionGenerator creates an option generator over the given distractor pool.
func NewOptionGenerator(pool []string, rng *rand.Rand) (*OptionGenerator, error) {
	if len(pool) < WrongAnswerCount {
		return nil, fmt.Errorf("pool of %d: %w", len(pool), ErrNotEnoughDistractors)
	}

	return &OptionGenerator{
		pool: append([]string(nil), pool...),
		rng:  rng,
	}, nil
}

// WrongAnswers shuffles the whole pool and takes the first three names.
// Names within one call are distinct; successive calls are independent.
func (g *OptionGenerator) WrongAnswers() [WrongAnswerCount]string {
	candidates := append([]string(nil), g.pool...)

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var out [WrongAnswerCount]string
	copy(out[:], candidates)
	return out
}
