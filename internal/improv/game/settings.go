package game

import (
	"fmt"
	"strings"
)

const (
	MinActors       = 1
	MaxActors       = 5
	DefaultActors   = 2
	DefaultDuration = 180
)

var (
	ErrValidation = fmt.Errorf("validation errors")

	ActorCounts = []int{1, 2, 3, 4, 5}
	Durations   = []int{60, 120, 180, 300}
)

// ValidationError carries the single message shown to the player.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type Settings struct {
	ActorCount int      `json:"actorCount"`
	Duration   int      `json:"duration"`
	ActorNames []string `json:"actorNames"`
}

func DefaultSettings() Settings {
	return Settings{
		ActorCount: DefaultActors,
		Duration:   DefaultDuration,
		ActorNames: DefaultActorNames(DefaultActors),
	}
}

// DefaultActorNames labels actor slots "Actor A", "Actor B", ...
func DefaultActorNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Actor %c", 'A'+i)
	}

	return names
}

// Validate checks what must hold before any scene is generated.
func (s Settings) Validate() error {
	if s.ActorCount < MinActors || s.ActorCount > MaxActors {
		return &ValidationError{Message: fmt.Sprintf("Choose between %d and %d actors", MinActors, MaxActors)}
	}

	if s.Duration <= 0 {
		return &ValidationError{Message: "Scene duration must be longer than zero seconds"}
	}

	if len(s.ActorNames) < s.ActorCount {
		return &ValidationError{Message: "Please enter a name for every actor"}
	}

	for _, name := range s.ActorNames[:s.ActorCount] {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Message: "Please enter a name for every actor"}
		}
	}

	return nil
}
