package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jeopardy-server/internal/model"
)

func nameList(names ...string) model.NameList {
	return model.NameList{English: names}
}

func TestGenerateEmptyCorrectPool(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(1)))

	_, err := gen.Generate(nameList(), nameList("Alien", "Seven"))
	require.ErrorIs(t, err, model.ErrContentUnavailable)
}

func TestGenerateFirstAnswerIsCorrect(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(2)))

	for i := 0; i < 50; i++ {
		answers, err := gen.Generate(
			nameList("Psycho", "Vertigo", "Rope", "The Birds"),
			nameList("Alien", "Seven", "Heat", "Jaws"),
		)
		require.NoError(t, err)
		require.NotEmpty(t, answers)
		assert.True(t, answers[0].Correct)
	}
}

func TestGenerateCountBounds(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(3)))
	correct := nameList("A", "B", "C", "D", "E", "F", "G")
	incorrect := nameList("H", "I", "J", "K", "L", "M", "N")

	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		answers, err := gen.Generate(correct, incorrect)
		require.NoError(t, err)
		// Pools are large enough that no slot is ever skipped.
		assert.GreaterOrEqual(t, len(answers), 4)
		assert.LessOrEqual(t, len(answers), 6)
		seen[len(answers)] = true
	}
	assert.Equal(t, map[int]bool{4: true, 5: true, 6: true}, seen,
		"all three sizes occur over enough runs")
}

func TestGenerateNoDuplicateCandidates(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(4)))
	correct := nameList("A", "B", "C", "D", "E")
	incorrect := nameList("V", "W", "X", "Y", "Z")

	for i := 0; i < 200; i++ {
		answers, err := gen.Generate(correct, incorrect)
		require.NoError(t, err)

		texts := map[string]bool{}
		ids := map[string]bool{}
		for _, a := range answers {
			assert.False(t, texts[a.Text[model.LocaleEN]], "candidate %q reused", a.Text[model.LocaleEN])
			texts[a.Text[model.LocaleEN]] = true
			assert.False(t, ids[a.ID], "answer id %q reused", a.ID)
			ids[a.ID] = true
		}
	}
}

func TestGenerateExhaustedPoolsSkipSlots(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(5)))

	for i := 0; i < 200; i++ {
		answers, err := gen.Generate(nameList("Psycho", "Vertigo"), nameList("Alien"))
		require.NoError(t, err)

		// At most 2 correct + 1 incorrect candidates exist; exhausted
		// slots are skipped rather than refilled from the other pool.
		assert.LessOrEqual(t, len(answers), 3)
		require.NotEmpty(t, answers)
		assert.True(t, answers[0].Correct)
	}
}

func TestGenerateGermanFallsBackToEnglish(t *testing.T) {
	gen := NewGeneratorService(rand.New(rand.NewSource(6)))
	correct := model.NameList{
		English: []string{"The Birds", "Rope"},
		German:  []string{"Die Vögel"},
	}

	answers, err := gen.Generate(correct, nameList())
	require.NoError(t, err)

	for _, a := range answers {
		assert.NotEmpty(t, a.Text[model.LocaleEN])
		assert.NotEmpty(t, a.Text[model.LocaleDE], "missing German label falls back to English")
	}
}
