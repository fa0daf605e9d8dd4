package mover

import "time"

type MoverDB struct {
	ID           int64
	Name         string
	Phone        string
	Status       string
	Availability []byte // JSONB
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type MoverModifyDB struct {
	ID           *int64
	Name         *string
	Phone        *string
	Status       *string
	Availability []byte // JSONB, nil - поле не меняется
}
