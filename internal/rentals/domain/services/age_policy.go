// Package services содержит доменные политики проката.
package services

import "time"

// AdultAge - возраст совершеннолетия в полных годах.
const AdultAge = 18

// AgePolicy определяет совершеннолетие на текущий момент.
type AgePolicy struct {
	now func() time.Time
}

// NewAgePolicy создает политику; now задает источник текущего времени,
// nil означает time.Now.
func NewAgePolicy(now func() time.Time) *AgePolicy {
	if now == nil {
		now = time.Now
	}
	return &AgePolicy{now: now}
}

// IsAdult возвращает true, если к текущему моменту исполнилось AdultAge лет,
// включая день рождения. Нулевая дата рождения не подтверждает возраст.
func (p *AgePolicy) IsAdult(birthDate time.Time) bool {
	if birthDate.IsZero() {
		return false
	}
	return AgeAt(birthDate, p.now()) >= AdultAge
}

// AgeAt возвращает число полных лет между birthDate и at.
// birthDate - календарная дата без учета зоны, at сравнивается по своему
// локальному дню. Родившиеся 29 февраля в невисокосный год становятся
// старше 1 марта.
func AgeAt(birthDate, at time.Time) int {
	birthYear, birthMonth, birthDay := birthDate.Date()
	year, month, day := at.Date()

	years := year - birthYear
	if month < birthMonth || (month == birthMonth && day < birthDay) {
		years--
	}
	return years
}
