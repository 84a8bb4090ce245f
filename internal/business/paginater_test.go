package business_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Agurato/cinebusca/internal/business"
	"github.com/Agurato/cinebusca/internal/model"
)

func TestGetPagination(t *testing.T) {
	p := business.NewPaginater(1)

	assert.Nil(t, p.GetPagination(model.Cursor{}))

	assert.Equal(t, []model.Pagination{
		{Number: 1, Active: true},
	}, p.GetPagination(model.Cursor{Page: 1, TotalPages: 1}))

	assert.Equal(t, []model.Pagination{
		{Number: 1, Active: true},
		{Number: 2},
		{Dots: true},
		{Number: 10},
	}, p.GetPagination(model.Cursor{Page: 1, TotalPages: 10}))

	assert.Equal(t, []model.Pagination{
		{Number: 1},
		{Dots: true},
		{Number: 4},
		{Number: 5, Active: true},
		{Number: 6},
		{Dots: true},
		{Number: 10},
	}, p.GetPagination(model.Cursor{Page: 5, TotalPages: 10}))

	assert.Equal(t, []model.Pagination{
		{Number: 1},
		{Dots: true},
		{Number: 499},
		{Number: 500, Active: true},
	}, p.GetPagination(model.Cursor{Page: 500, TotalPages: 500}))

	assert.Equal(t, []model.Pagination{
		{Number: 1},
		{Number: 2, Active: true},
		{Number: 3},
	}, p.GetPagination(model.Cursor{Page: 2, TotalPages: 3}))
}
