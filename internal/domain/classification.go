package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationSuggestion is one ranked category guess for a raw
// transaction. Confidence is a percentage in [0,100].
type ClassificationSuggestion struct {
	CategoryID   uuid.UUID
	CategoryName string
	CategoryType CategoryType
	Confidence   float64
}

// LearnSource records how a learned pattern confirmation originated.
type LearnSource string

const (
	LearnSourceUser   LearnSource = "USER"
	LearnSourceImport LearnSource = "IMPORT"
)

// LearnedPattern associates a normalized description signature with a
// category, strengthened by repeated confirmations. It is the only
// durable state the engine owns; HitCount only ever increases.
type LearnedPattern struct {
	Signature  string
	CategoryID uuid.UUID
	HitCount   int
	LastSeenAt time.Time
}
