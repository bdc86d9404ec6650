// Package entities содержит сущности домена проката фильмов.
package entities

import "time"

// User представляет клиента проката.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CPF       string
	BirthDate time.Time
}
