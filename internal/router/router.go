// Package router binds the portal's REST endpoints onto echo.
package router

import (
	"strconv"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/pkg/pagination"
	"github.com/labstack/echo/v4"
)

const APIPrefix = "/v1"

// Binder registers a group of routes.
type Binder interface {
	Bind()
}

// bindPage reads pageNum/pageSize from the query and normalizes them.
func bindPage(c echo.Context) (pagination.OffsetRequest, error) {
	var page pagination.OffsetRequest
	if err := echo.QueryParamsBinder(c).
		Int("pageNum", &page.Page).
		Int("pageSize", &page.Size).
		BindError(); err != nil {
		return page, apperr.NewValidationWrap("invalid paging parameters", err)
	}
	_ = page.Validate()
	return page, nil
}

func pathID(c echo.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NewValidation("id must be a positive integer, got " + strconv.Quote(raw))
	}
	return id, nil
}
