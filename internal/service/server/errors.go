package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Agurato/cinebusca/internal/model"
)

// httpStatus maps an operation error to the status of the response
func httpStatus(err error) int {
	switch {
	case err == nil, errors.Is(err, model.ErrEmptyQuery):
		return http.StatusOK
	case errors.Is(err, model.ErrPageOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnknownMovie):
		return http.StatusNotFound
	case errors.Is(err, model.ErrSearchFailed), errors.Is(err, model.ErrDetailsFailed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the message shown to users for an operation error
func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrSearchFailed):
		return model.SearchFailedMessage
	case errors.Is(err, model.ErrDetailsFailed):
		return model.DetailsFailedMessage
	case errors.Is(err, model.ErrEmptyQuery), errors.Is(err, model.ErrPageOutOfRange), errors.Is(err, model.ErrUnknownMovie):
		return err.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// parseMovieID parses a TMDB movie id from a path parameter
func parseMovieID(param string) (int64, bool) {
	id, err := strconv.ParseInt(param, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parsePage parses a page number. Anything that is not a number is page 0, which is never valid.
func parsePage(param string) int {
	page, err := strconv.Atoi(param)
	if err != nil {
		return 0
	}
	return page
}

// localPath returns path if it stays on this site, "/" otherwise
func localPath(path string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return "/"
	}
	return path
}
