package model

import (
	"time"

	"github.com/google/uuid"
)

func NewEntry(userID int64) Entry {
	return Entry{ID: uuid.New(), UserID: userID, CreatedAt: time.Now()}
}

// Entry is one played scene.
type Entry struct {
	ID     uuid.UUID `json:"id"`
	UserID int64     `json:"userID"`

	Location   string   `json:"location"`
	Characters []string `json:"characters"`
	Actors     []string `json:"actors"`
	Conflict   string   `json:"conflict"`
	Twist      string   `json:"twist,omitempty"`

	Duration  time.Duration `json:"duration"`
	Performed time.Duration `json:"performed"`
	Expired   bool          `json:"expired"`
	CreatedAt time.Time     `json:"createdAt"`
}

type ProfileStat struct {
	Scenes       int
	Twists       int
	Completed    int
	Performed    time.Duration
	LongestScene time.Duration
	LastLocation string
	LastPlayedAt time.Time
}
