package httpserver

import (
	"errors"
	"net/http"

	"github.com/filmshelf/filmshelf/internal/catalog"
	"github.com/filmshelf/filmshelf/internal/domain"
	"github.com/filmshelf/filmshelf/internal/repository"
)

type catalogLoadRequest struct {
	Rows []catalog.SourceRow `json:"rows"`
}

type catalogLoadResponse struct {
	Loaded int `json:"loaded"`
}

type movieSummaryResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       *int     `json:"year,omitempty"`
	IMDBRating *float64 `json:"imdbRating,omitempty"`
}

type movieResponse struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Year        *int     `json:"year,omitempty"`
	Certificate string   `json:"certificate,omitempty"`
	Runtime     string   `json:"runtime,omitempty"`
	Genre       string   `json:"genre,omitempty"`
	IMDBRating  *float64 `json:"imdbRating,omitempty"`
	Overview    string   `json:"overview,omitempty"`
	Director    string   `json:"director,omitempty"`
	Stars       string   `json:"stars,omitempty"`
	Votes       int64    `json:"votes"`
	Gross       string   `json:"gross,omitempty"`
}

func (s *Server) handleLoadCatalog(w http.ResponseWriter, r *http.Request) {
	if !s.verifyBearer(r.Header.Get("Authorization")) {
		s.respondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Missing or invalid authentication information")
		return
	}

	var req catalogLoadRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if len(req.Rows) == 0 {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "rows must not be empty")
		return
	}

	count, err := s.loader.Load(r.Context(), req.Rows)
	if err != nil {
		s.logger.Printf("catalog load error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load catalog")
		return
	}

	s.respondJSON(w, http.StatusOK, catalogLoadResponse{Loaded: count})
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := s.repo.Movies.List(r.Context())
	if err != nil {
		s.logger.Printf("list movies error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list movies")
		return
	}

	items := make([]movieSummaryResponse, 0, len(movies))
	for _, m := range movies {
		items = append(items, movieSummaryResponse{
			ID:         m.ID,
			Title:      m.Title,
			Year:       m.Year,
			IMDBRating: m.IMDBRating,
		})
	}
	s.respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := movieIDParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}

	movie, err := s.repo.Movies.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("get movie error: %v", err)
		s.respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch movie")
		return
	}

	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Year:        movie.Year,
		Certificate: movie.Certificate,
		Runtime:     movie.Runtime,
		Genre:       movie.Genre,
		IMDBRating:  movie.IMDBRating,
		Overview:    movie.Overview,
		Director:    movie.Director,
		Stars:       movie.Stars,
		Votes:       movie.Votes,
		Gross:       movie.Gross,
	}
}
