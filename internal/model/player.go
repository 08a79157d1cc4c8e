package model

// Role distinguishes the human player from the computer opponent.
type Role string

const (
	RoleHuman    Role = "human"
	RoleComputer Role = "computer"
)

// Player is one side of a game: a user reference, a role and a running score.
type Player struct {
	User  *User `json:"user"`
	Role  Role  `json:"role"`
	Score int   `json:"score"`
}

// Outcome is the result of evaluating a submitted answer set. The game
// session applies it; the evaluator never touches players directly.
type Outcome struct {
	Correct     bool `json:"correct"`
	Delta       int  `json:"delta"`
	Beneficiary Role `json:"beneficiary"`
}
