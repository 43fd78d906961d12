package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-portal/internal/service"
	"github.com/labstack/echo/v4"
)

type SectionRouter struct {
	e   *echo.Echo
	svc *service.SectionService
}

func NewSectionRouter(e *echo.Echo, svc *service.SectionService) *SectionRouter {
	return &SectionRouter{
		e:   e,
		svc: svc,
	}
}

func (r *SectionRouter) Bind() {
	g := r.e.Group(APIPrefix + "/sections")
	g.GET("", r.listSections)
	g.GET("/search", r.listByKeyword)
	g.GET("/prefix/:prefix", r.listByPrefix)
	g.GET("/:id", r.getDetails)
	g.GET("/:id/atlas", r.getRelationGraph)
}

// listSections godoc
// @Summary List sections
// @Tags sections
// @Produce json
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.SectionView]
// @Router /v1/sections [get]
func (r *SectionRouter) listSections(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListSections(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// listByKeyword godoc
// @Summary Search sections
// @Description Matches sections whose name contains the keyword characters in order
// @Tags sections
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.SearchSectionView]
// @Failure 400 {object} map[string]string
// @Router /v1/sections/search [get]
func (r *SectionRouter) listByKeyword(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListByKeyword(c.Request().Context(), c.QueryParam("keyword"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// listByPrefix godoc
// @Summary List sections by alias initial
// @Tags sections
// @Produce json
// @Param prefix path string true "Alias initial"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.SectionView]
// @Router /v1/sections/prefix/{prefix} [get]
func (r *SectionRouter) listByPrefix(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListByPrefix(c.Request().Context(), c.Param("prefix"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// getDetails godoc
// @Summary Get section details
// @Description Counts one view per call
// @Tags sections
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} dto.SectionDetailView
// @Failure 404 {object} map[string]string
// @Router /v1/sections/{id} [get]
func (r *SectionRouter) getDetails(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := r.svc.GetSectionDetails(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// getRelationGraph godoc
// @Summary Get the relation graph of a section
// @Tags sections
// @Produce json
// @Param id path int true "Section ID"
// @Param type query string true "Related entity type" Enums(section, article)
// @Success 200 {object} dto.RelationGraph
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/sections/{id}/atlas [get]
func (r *SectionRouter) getRelationGraph(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	graph, err := r.svc.GetRelationGraph(c.Request().Context(), id, c.QueryParam("type"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, graph)
}
