package entities

// ErrorKind - имя вида доменной ошибки, передаваемое клиенту как есть.
type ErrorKind string

// Виды доменных ошибок.
const (
	KindNotFound        ErrorKind = "NotFoundError"
	KindPendentRental   ErrorKind = "PendentRentalError"
	KindMovieInRental   ErrorKind = "MovieInRentalError"
	KindInsufficientAge ErrorKind = "InsufficientAgeError"
	KindRentalClosed    ErrorKind = "RentalClosedError"
)

// DomainError - отказ бизнес-правила в виде пары {name, message}.
type DomainError struct {
	Name    ErrorKind `json:"name"`
	Message string    `json:"message"`
}

func (e *DomainError) Error() string {
	return string(e.Name) + ": " + e.Message
}

// Is сравнивает по имени вида, а также по сообщению, если оно задано в target.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Name == e.Name && (t.Message == "" || t.Message == e.Message)
}

// Ошибки домена проката.
var (
	ErrNotFound = &DomainError{Name: KindNotFound}

	ErrUserNotFound    = &DomainError{Name: KindNotFound, Message: "User not found."}
	ErrMovieNotFound   = &DomainError{Name: KindNotFound, Message: "Movie not found."}
	ErrRentalNotFound  = &DomainError{Name: KindNotFound, Message: "Rental not found."}
	ErrPendentRental   = &DomainError{Name: KindPendentRental, Message: "The user already have a rental!"}
	ErrMovieInRental   = &DomainError{Name: KindMovieInRental, Message: "Movie already in a rental."}
	ErrInsufficientAge = &DomainError{Name: KindInsufficientAge, Message: "Cannot see that movie."}
	ErrRentalClosed    = &DomainError{Name: KindRentalClosed, Message: "Rental already finished."}
)
