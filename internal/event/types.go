// internal/event/types.go
package event

import "go-typeball/internal/types"

const (
	CorrectLetter   EventType = "CorrectLetter"   // typed rune matched the next letter
	IncorrectLetter EventType = "IncorrectLetter" // typed rune did not match
	CompleteWord    EventType = "CompleteWord"    // last letter of the word typed
	TextChanged     EventType = "TextChanged"     // word markup changed

	CompleteCourse EventType = "CompleteCourse" // ball entered the goal gate
	FailCourse     EventType = "FailCourse"     // ball hit an obstacle, or strict mismatch

	RoundStarted      EventType = "RoundStarted"
	RoundCompleted    EventType = "RoundCompleted"
	ControlsSwitched  EventType = "ControlsSwitched"
	GoalChanged       EventType = "GoalChanged"
	DifficultyChanged EventType = "DifficultyChanged"
	GameOver          EventType = "GameOver"
)

// LetterPayload is carried by CorrectLetter and IncorrectLetter
type LetterPayload struct {
	Char  rune
	Index int // position in the word the rune was checked against
}

// WordPayload is carried by CompleteWord
type WordPayload struct {
	Word string
}

// TextPayload is carried by TextChanged
type TextPayload struct {
	Markup string
}

// CoursePayload is carried by CompleteCourse
type CoursePayload struct {
	GateID types.EntityID
}

// FailPayload is carried by FailCourse and GameOver
type FailPayload struct {
	Reason string
	Score  int
}

// RoundPayload is carried by RoundStarted and RoundCompleted
type RoundPayload struct {
	Round      int
	Score      int
	Word       string
	CourseID   string
	Difficulty types.Difficulty
	Controls   types.ControlScheme
}

// ControlsPayload is carried by ControlsSwitched
type ControlsPayload struct {
	Scheme          types.ControlScheme
	KeyboardVisible bool
}

// GoalPayload is carried by GoalChanged, once per gate whose flag changed
type GoalPayload struct {
	GateID types.EntityID
	IsGoal bool
}

// DifficultyPayload is carried by DifficultyChanged
type DifficultyPayload struct {
	From, To types.Difficulty
}
