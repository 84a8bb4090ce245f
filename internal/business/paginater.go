package business

import (
	"github.com/Agurato/cinebusca/internal/model"
)

// Paginater implements the GetPagination method
type Paginater struct {
	// number of pages displayed on each side of the current one
	around int
}

// NewPaginater instantiates a new Paginater
func NewPaginater(around int) *Paginater {
	return &Paginater{
		around: max(around, 0),
	}
}

// GetPagination creates the Pagination slice to display for a cursor
func (p *Paginater) GetPagination(cursor model.Cursor) []model.Pagination {
	var pages []model.Pagination
	pageMax := cursor.TotalPages
	currentPage := cursor.Page
	if pageMax < 1 {
		return nil
	}

	pages = append(pages, model.Pagination{
		Number: 1,
		Active: currentPage == 1,
	})
	// Add dots to link between 1 and current-around
	if currentPage-p.around > 2 {
		pages = append(pages, model.Pagination{
			Dots: true,
		})
	}
	for i := currentPage - p.around; i <= currentPage+p.around; i++ {
		if i <= 1 || i >= pageMax {
			continue
		}
		pages = append(pages, model.Pagination{
			Number: i,
			Active: i == currentPage,
		})
	}
	// Add dots to link between current+around and max
	if currentPage+p.around < pageMax-1 {
		pages = append(pages, model.Pagination{
			Dots: true,
		})
	}
	if pageMax > 1 {
		pages = append(pages, model.Pagination{
			Number: pageMax,
			Active: currentPage == pageMax,
		})
	}

	return pages
}
