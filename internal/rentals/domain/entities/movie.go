package entities

// Movie представляет фильм каталога.
// RentalID равен nil, пока фильм доступен для проката.
type Movie struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	AdultsOnly bool   `json:"adultsOnly"`
	RentalID   *int64 `json:"rentalId"`
}

// IsAvailable сообщает, свободен ли фильм.
func (m *Movie) IsAvailable() bool {
	return m.RentalID == nil
}
