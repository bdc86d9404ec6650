// Package services определяет порты доменных сервисов.
package services

import "time"

// AgePolicy определяет проверку совершеннолетия.
type AgePolicy interface {
	IsAdult(birthDate time.Time) bool
}
