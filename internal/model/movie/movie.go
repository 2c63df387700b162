package movie

import "strings"

// Movie is a single record of the movies collection.
type Movie struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Genre    []string `json:"genre" yaml:"genre"`
	Year     int      `json:"year" yaml:"year"`
	Director string   `json:"director" yaml:"director"`
	Duration int      `json:"duration" yaml:"duration"`
	Rate     float64  `json:"rate" yaml:"rate"`
	Poster   string   `json:"poster" yaml:"poster"`
}

// Patch carries the fields of a partial update. Nil fields are left untouched.
type Patch struct {
	Title    *string  `json:"title,omitempty"`
	Genre    []string `json:"genre,omitempty"`
	Year     *int     `json:"year,omitempty"`
	Director *string  `json:"director,omitempty"`
	Duration *int     `json:"duration,omitempty"`
	Rate     *float64 `json:"rate,omitempty"`
	Poster   *string  `json:"poster,omitempty"`
}

// Apply returns a copy of m with the present fields of p merged in.
// The identifier is never changed.
func (m Movie) Apply(p Patch) Movie {
	out := m.clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Genre != nil {
		out.Genre = append([]string(nil), p.Genre...)
	}
	if p.Year != nil {
		out.Year = *p.Year
	}
	if p.Director != nil {
		out.Director = *p.Director
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Rate != nil {
		out.Rate = *p.Rate
	}
	if p.Poster != nil {
		out.Poster = *p.Poster
	}
	return out
}

// HasGenre reports whether genre is one of the movie's genres, ignoring case.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genre {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

func (m Movie) clone() Movie {
	m.Genre = append([]string(nil), m.Genre...)
	return m
}
