package database

import (
	"time"
)

// Post is the persisted proof that an item's fingerprint has been processed.
// Created once per fingerprint after a delivery attempt, never updated.
type Post struct {
	Fingerprint string
	Title       string
	URL         string
	PostedAt    time.Time
}

// Chat is a registered delivery destination (private chat, group or channel).
type Chat struct {
	ChatID  int64
	Title   string
	Kind    string // private, group, supergroup, channel
	Active  bool
	AddedAt time.Time
}
