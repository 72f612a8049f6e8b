// Package pagination provides limit/offset handling shared by list endpoints.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Params holds the clamped limit and offset for a list query.
type Params struct {
	Limit  int
	Offset int
}

// Meta is the pagination block embedded in list responses.
type Meta struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// FromQuery reads limit and offset query params and clamps them.
// Unparseable values fall back to defaults rather than erroring, so
// list endpoints stay lenient about pagination input.
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) Params {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return Params{Limit: limit, Offset: offset}
}

// NewMeta builds the response metadata for a page of total results.
func NewMeta(params Params, total int) Meta {
	return Meta{
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
		HasMore: params.Offset+params.Limit < total,
	}
}
