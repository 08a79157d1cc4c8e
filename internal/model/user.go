package model

import "time"

// Gender as reported to the highscore service.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// User is a registered account. BirthDate is optional.
type User struct {
	ID           string     `json:"id" bson:"_id,omitempty"`
	Username     string     `json:"username" bson:"username"`
	PasswordHash string     `json:"-" bson:"passwordHash"`
	FirstName    string     `json:"firstName" bson:"firstName"`
	LastName     string     `json:"lastName" bson:"lastName"`
	Gender       Gender     `json:"gender" bson:"gender"`
	BirthDate    *time.Time `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
}
