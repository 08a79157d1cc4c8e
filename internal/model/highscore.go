package model

import "time"

// HighscorePlayer is one side of a highscore submission. Names fall back to
// the account's username when no explicit names are on file; the birth date
// defaults to epoch when absent.
type HighscorePlayer struct {
	Gender    Gender    `json:"gender"`
	BirthDate time.Time `json:"birthDate"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Points    int       `json:"points"`
}

// HighscoreRecord is the structured record submitted at game over.
type HighscoreRecord struct {
	Winner HighscorePlayer `json:"winner"`
	Loser  HighscorePlayer `json:"loser"`
}

// HighscorePlayerFrom maps a player to its submission record, applying the
// username and epoch fallbacks.
func HighscorePlayerFrom(p *Player) HighscorePlayer {
	hp := HighscorePlayer{
		Gender:    p.User.Gender,
		BirthDate: time.Unix(0, 0).UTC(),
		FirstName: p.User.Username,
		LastName:  p.User.Username,
		Points:    p.Score,
	}
	if p.User.BirthDate != nil {
		hp.BirthDate = *p.User.BirthDate
	}
	if p.User.FirstName != "" {
		hp.FirstName = p.User.FirstName
	}
	if p.User.LastName != "" {
		hp.LastName = p.User.LastName
	}
	return hp
}

// HighscoreRecordFrom builds the record for a finished game.
func HighscoreRecordFrom(winner, loser *Player) HighscoreRecord {
	return HighscoreRecord{
		Winner: HighscorePlayerFrom(winner),
		Loser:  HighscorePlayerFrom(loser),
	}
}

// SocialMessage is published after a successful highscore submission.
type SocialMessage struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
}
