package business_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/business/mocks"
	"github.com/Agurato/cinebusca/internal/model"
)

func matrixPage(page, totalPages int) *model.SearchPage {
	results := make([]model.SearchResult, 0, 20)
	results = append(results, model.SearchResult{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-30", VoteAverage: 8.2})
	for i := 1; i < 20; i++ {
		results = append(results, model.SearchResult{ID: int64(1000 + i), Title: fmt.Sprintf("Matrix %d", i)})
	}
	return &model.SearchPage{Page: page, Results: results, TotalPages: totalPages}
}

func TestQueryController_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)
	searcher.EXPECT().SearchMovies("Matrix", 1).Return(matrixPage(1, 3), nil)

	state := &model.SearchState{}
	qc := business.NewQueryController(searcher, state)

	require.NoError(t, qc.Search("  Matrix ", 1))
	assert.Equal(t, "Matrix", state.Query)
	assert.LessOrEqual(t, len(state.Results), 20)
	assert.Equal(t, "The Matrix", state.Results[0].Title)
	assert.Equal(t, model.Cursor{Page: 1, TotalPages: 3}, state.Cursor)
}

func TestQueryController_SearchClampsTotalPages(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)
	searcher.EXPECT().SearchMovies("the", 1).Return(matrixPage(1, 2137), nil)

	state := &model.SearchState{}
	qc := business.NewQueryController(searcher, state)

	require.NoError(t, qc.Search("the", 1))
	assert.Equal(t, model.MaxTotalPages, state.Cursor.TotalPages)
}

func TestQueryController_SearchRejectsWithoutRequest(t *testing.T) {
	// No expectation: any call on the searcher fails the test
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)

	state := &model.SearchState{}
	qc := business.NewQueryController(searcher, state)

	assert.ErrorIs(t, qc.Search("", 1), model.ErrEmptyQuery)
	assert.ErrorIs(t, qc.Search(" \t\n", 1), model.ErrEmptyQuery)
	assert.ErrorIs(t, qc.Search("Matrix", 0), model.ErrPageOutOfRange)
	assert.ErrorIs(t, qc.Search("Matrix", -3), model.ErrPageOutOfRange)
	assert.ErrorIs(t, qc.Search("Matrix", model.MaxTotalPages+1), model.ErrPageOutOfRange)
	assert.Equal(t, model.SearchState{}, *state)
}

func TestQueryController_SearchPastLastPage(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		totalPages int
		wantErr    error
		wantCursor model.Cursor
	}{
		{"past the last page", 10, 3, model.ErrPageOutOfRange, model.Cursor{Page: 1, TotalPages: 2}},
		{"last page", 3, 3, nil, model.Cursor{Page: 3, TotalPages: 3}},
		{"past the clamped last page", 500, 2137, nil, model.Cursor{Page: 500, TotalPages: model.MaxTotalPages}},
		{"no results", 1, 0, nil, model.Cursor{Page: 1, TotalPages: 0}},
		{"past the first page without results", 4, 0, model.ErrPageOutOfRange, model.Cursor{Page: 1, TotalPages: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			searcher := mocks.NewMockMovieSearcher(ctrl)
			gomock.InOrder(
				searcher.EXPECT().SearchMovies("Alien", 1).Return(matrixPage(1, 2), nil),
				searcher.EXPECT().SearchMovies("Matrix", tt.page).Return(matrixPage(tt.page, tt.totalPages), nil),
			)

			state := &model.SearchState{}
			qc := business.NewQueryController(searcher, state)
			require.NoError(t, qc.Search("Alien", 1))

			err := qc.Search("Matrix", tt.page)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, "Alien", state.Query)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Matrix", state.Query)
			}
			assert.Equal(t, tt.wantCursor, state.Cursor)
		})
	}
}

func TestQueryController_SearchFailureKeepsResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)
	gomock.InOrder(
		searcher.EXPECT().SearchMovies("Matrix", 1).Return(matrixPage(1, 3), nil),
		searcher.EXPECT().SearchMovies("Alien", 1).Return(nil, errors.New("connection refused")),
	)

	state := &model.SearchState{}
	qc := business.NewQueryController(searcher, state)
	require.NoError(t, qc.Search("Matrix", 1))
	before := qc.State()

	err := qc.Search("Alien", 1)
	assert.ErrorIs(t, err, model.ErrSearchFailed)
	assert.Equal(t, before, qc.State())
}

func TestQueryController_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)
	gomock.InOrder(
		searcher.EXPECT().SearchMovies("Matrix", 1).Return(matrixPage(1, 2), nil),
		searcher.EXPECT().SearchMovies("Matrix", 2).Return(matrixPage(2, 2), nil),
		searcher.EXPECT().SearchMovies("Matrix", 1).Return(matrixPage(1, 2), nil),
	)

	state := &model.SearchState{}
	qc := business.NewQueryController(searcher, state)
	require.NoError(t, qc.Search("Matrix", 1))

	assert.ErrorIs(t, qc.GoToPage(0), model.ErrPageOutOfRange)
	assert.ErrorIs(t, qc.PreviousPage(), model.ErrPageOutOfRange)
	assert.ErrorIs(t, qc.GoToPage(3), model.ErrPageOutOfRange)

	require.NoError(t, qc.NextPage())
	assert.Equal(t, 2, state.Cursor.Page)
	assert.ErrorIs(t, qc.NextPage(), model.ErrPageOutOfRange)

	require.NoError(t, qc.PreviousPage())
	assert.Equal(t, 1, state.Cursor.Page)
}

func TestQueryController_GoToPageWithoutSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	searcher := mocks.NewMockMovieSearcher(ctrl)

	qc := business.NewQueryController(searcher, &model.SearchState{})
	assert.ErrorIs(t, qc.GoToPage(1), model.ErrPageOutOfRange)
}
