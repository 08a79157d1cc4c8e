package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHighscorePlayerFromFallbacks(t *testing.T) {
	p := &Player{
		User:  &User{Username: "hans", Gender: GenderMale},
		Role:  RoleHuman,
		Score: 60,
	}

	hp := HighscorePlayerFrom(p)

	assert.Equal(t, "hans", hp.FirstName, "first name falls back to username")
	assert.Equal(t, "hans", hp.LastName, "last name falls back to username")
	assert.Equal(t, time.Unix(0, 0).UTC(), hp.BirthDate, "birth date defaults to epoch")
	assert.Equal(t, 60, hp.Points)
	assert.Equal(t, GenderMale, hp.Gender)
}

func TestHighscorePlayerFromExplicitNames(t *testing.T) {
	birth := time.Date(1990, 1, 12, 0, 0, 0, 0, time.UTC)
	p := &Player{
		User: &User{
			Username:  "gerda81",
			FirstName: "Gerda",
			LastName:  "Haydn",
			Gender:    GenderFemale,
			BirthDate: &birth,
		},
		Score: 12,
	}

	hp := HighscorePlayerFrom(p)

	assert.Equal(t, "Gerda", hp.FirstName)
	assert.Equal(t, "Haydn", hp.LastName)
	assert.Equal(t, birth, hp.BirthDate)
}
