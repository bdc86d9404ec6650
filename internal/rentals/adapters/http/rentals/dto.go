package rentals

// CreateRentalRequest - тело запроса на создание проката.
type CreateRentalRequest struct {
	UserID   int64   `json:"userId"`
	MoviesID []int64 `json:"moviesId"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (r *CreateRentalRequest) validate() string {
	if r.UserID <= 0 {
		return ErrMsgInvalidUserID
	}
	if len(r.MoviesID) == 0 {
		return ErrMsgNoMovies
	}
	for _, id := range r.MoviesID {
		if id <= 0 {
			return ErrMsgInvalidMovieID
		}
	}
	return ""
}
