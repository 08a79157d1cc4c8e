package service

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"jeopardy-server/internal/model"
)

// GeneratorService builds a question's answer set from a pool of correct
// candidates and a pool of incorrect candidates. Pure selection logic; the
// only state is the random source, injectable for deterministic tests.
type GeneratorService struct {
	rng *rand.Rand
}

// NewGeneratorService creates a generator. A nil rng falls back to a
// time-seeded source.
func NewGeneratorService(rng *rand.Rand) *GeneratorService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &GeneratorService{rng: rng}
}

// Generate produces 4 to 6 answers: one guaranteed-correct answer first,
// then 3+random(0,2) slots each filled by an unbiased coin flip between the
// two pools. Within one question no candidate index is reused from the same
// pool; a slot whose pool is exhausted is skipped, not retried against the
// other pool, so the result may be shorter than requested.
//
// An empty correct pool cannot guarantee a correct answer and yields
// ErrContentUnavailable.
func (s *GeneratorService) Generate(correct, incorrect model.NameList) ([]model.Answer, error) {
	if correct.Len() == 0 {
		return nil, model.ErrContentUnavailable
	}

	usedCorrect := make(map[int]bool)
	usedIncorrect := make(map[int]bool)

	answers := []model.Answer{
		s.answerAt(correct, s.unusedIndex(usedCorrect, correct.Len()), true),
	}

	extra := 3 + s.rng.Intn(3)
	for i := 0; i < extra; i++ {
		if s.rng.Intn(2) == 1 {
			idx := s.unusedIndex(usedCorrect, correct.Len())
			if idx < 0 {
				continue
			}
			answers = append(answers, s.answerAt(correct, idx, true))
		} else {
			idx := s.unusedIndex(usedIncorrect, incorrect.Len())
			if idx < 0 {
				continue
			}
			answers = append(answers, s.answerAt(incorrect, idx, false))
		}
	}
	return answers, nil
}

func (s *GeneratorService) answerAt(pool model.NameList, idx int, correct bool) model.Answer {
	return model.Answer{
		ID:      "a_" + uuid.New().String()[:8],
		Text:    pool.At(idx),
		Correct: correct,
	}
}

// unusedIndex draws a uniformly random index not yet in used and records it.
// Returns -1 when the pool is exhausted. Drawing from the remaining indices
// keeps the draw bounded regardless of how full the used set is.
func (s *GeneratorService) unusedIndex(used map[int]bool, size int) int {
	if len(used) >= size {
		return -1
	}
	remaining := make([]int, 0, size-len(used))
	for i := 0; i < size; i++ {
		if !used[i] {
			remaining = append(remaining, i)
		}
	}
	idx := remaining[s.rng.Intn(len(remaining))]
	used[idx] = true
	return idx
}
