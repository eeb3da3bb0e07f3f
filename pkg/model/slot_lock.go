package model

import "time"

// SlotLock is an advisory lock held while a reservation for one
// (provider, timestamp) slot is in flight. Its _id encodes the slot, so a
// second concurrent reservation for the same slot fails with a duplicate
// key error instead of racing the conflict check.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
