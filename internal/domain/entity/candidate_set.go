package entity

import "time"

// CandidateSet is the ephemeral set of resolved flights held between
// the resolve step and the user's selection. It belongs to exactly one
// browser interaction, identified by Token.
type CandidateSet struct {
	Token     string    `bson:"_id"`
	Flights   []Flight  `bson:"flights"`
	CreatedAt time.Time `bson:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt"`
}
