package model

import "errors"

var (
	ErrSearchFailed  = errors.New("search failed")
	ErrDetailsFailed = errors.New("details failed")

	ErrEmptyQuery     = errors.New("empty search query")
	ErrPageOutOfRange = errors.New("page out of range")
	ErrUnknownMovie   = errors.New("unknown movie")
)

// Messages shown to the user. Every failure of a kind collapses to the same message.
const (
	SearchFailedMessage  = "Erro ao buscar filmes. Verifique sua conexão e tente novamente."
	DetailsFailedMessage = "Erro ao carregar detalhes do filme. Tente novamente."
)
