package domain

import "time"

// Todo is a single task item. The store assigns ID and CreatedAt; Task is set
// once at creation and never updated.
type Todo struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	CreatedAt time.Time `json:"createdAt"`
}
