package entity

import "time"

// Club is a student club owned by exactly one coordinator.
type Club struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Name          string    `bson:"name" json:"name"`
	NameCI        string    `bson:"name_ci" json:"-"`
	Description   string    `bson:"description" json:"description"`
	CoordinatorID string    `bson:"coordinator_id" json:"coordinator_id"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}
