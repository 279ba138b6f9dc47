package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination holds page/limit query parameters and the derived offset
type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// NewPagination reads page and limit from the request query, defaulting
// to page 1 with 10 items and capping limit at 100.
func NewPagination(c *gin.Context) *Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}
	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Meta returns the pagination block included in list responses
func (p *Pagination) Meta() gin.H {
	totalPages := int64(0)
	if p.Limit > 0 {
		totalPages = (p.Total + int64(p.Limit) - 1) / int64(p.Limit)
	}
	return gin.H{
		"current_page": p.Page,
		"per_page":     p.Limit,
		"total":        p.Total,
		"total_pages":  totalPages,
	}
}
