package tmdb

// Page is the envelope returned by list endpoints
type Page struct {
	Results      []Result `json:"results"`
	Page         *int     `json:"page,omitempty"`
	TotalPages   *int     `json:"total_pages,omitempty"`
	TotalResults *int     `json:"total_results,omitempty"`
}

// Result is a single movie or TV record as TMDB returns it.
// A nil ID makes the record unusable.
type Result struct {
	ID           *int     `json:"id"`
	Title        *string  `json:"title,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Overview     *string  `json:"overview,omitempty"`
	PosterPath   *string  `json:"poster_path,omitempty"`
	BackdropPath *string  `json:"backdrop_path,omitempty"`
	ReleaseDate  *string  `json:"release_date,omitempty"`
	FirstAirDate *string  `json:"first_air_date,omitempty"`
	VoteAverage  *float64 `json:"vote_average,omitempty"`
	VoteCount    *int     `json:"vote_count,omitempty"`
	MediaType    *string  `json:"media_type,omitempty"`
}
