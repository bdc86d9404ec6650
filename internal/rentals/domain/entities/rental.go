package entities

import "time"

// Rental представляет прокат. Пока Closed равен false, прокат открыт
// и блокирует создание нового проката для того же пользователя.
type Rental struct {
	ID      int64     `json:"id"`
	Date    time.Time `json:"date"`
	EndDate time.Time `json:"endDate"`
	UserID  int64     `json:"userId"`
	Closed  bool      `json:"closed"`
	Movies  []*Movie  `json:"movies,omitempty"`
}

// RentalInput - запрос на создание проката. Идентификаторы фильмов
// не дедуплицируются и проверяются в порядке следования.
type RentalInput struct {
	UserID   int64
	MoviesID []int64
}
