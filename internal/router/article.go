package router

import (
	"context"
	"net/http"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/service"
	"github.com/labstack/echo/v4"
)

type ArticleRouter struct {
	e   *echo.Echo
	svc *service.ArticleService
}

func NewArticleRouter(e *echo.Echo, svc *service.ArticleService) *ArticleRouter {
	return &ArticleRouter{
		e:   e,
		svc: svc,
	}
}

func (r *ArticleRouter) Bind() {
	g := r.e.Group(APIPrefix)
	g.GET("/channels/:id/articles", r.listByChannel)
	g.GET("/articles", r.listByKeyword)
	g.GET("/articles/:id", r.getDetails)
	g.POST("/articles/:id/likes", r.like)
	g.POST("/articles/:id/dislikes", r.dislike)
	g.GET("/articles/:id/comments", r.listComments)
	g.POST("/articles/:id/comments", r.addComment)
	g.POST("/comments/:id/likes", r.likeComment)
	g.POST("/comments/:id/dislikes", r.dislikeComment)
	g.GET("/users/:id/comments", r.listUserComments)
}

// listByChannel godoc
// @Summary List articles of a channel
// @Description Channel 1 lists the newest articles across all channels
// @Tags articles
// @Produce json
// @Param id path int true "Channel ID"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.ArticleView]
// @Failure 400 {object} map[string]string
// @Router /v1/channels/{id}/articles [get]
func (r *ArticleRouter) listByChannel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListByChannel(c.Request().Context(), id, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// listByKeyword godoc
// @Summary Search articles
// @Description Matches the keyword against article titles and bodies
// @Tags articles
// @Produce json
// @Param keyword query string true "Search keyword"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.SearchArticleView]
// @Failure 400 {object} map[string]string
// @Router /v1/articles [get]
func (r *ArticleRouter) listByKeyword(c echo.Context) error {
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

// getDetails godoc
// @Summary Get article details
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} dto.ArticleDetailView
// @Failure 404 {object} map[string]string
// @Router /v1/articles/{id} [get]
func (r *ArticleRouter) getDetails(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := r.svc.GetDetails(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// like godoc
// @Summary Like an article
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /v1/articles/{id}/likes [post]
func (r *ArticleRouter) like(c echo.Context) error {
	return r.react(c, r.svc.Like)
}

// dislike godoc
// @Summary Dislike an article
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /v1/articles/{id}/dislikes [post]
func (r *ArticleRouter) dislike(c echo.Context) error {
	return r.react(c, r.svc.Dislike)
}

// listComments godoc
// @Summary List comments of an article
// @Tags comments
// @Produce json
// @Param id path int true "Article ID"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.CommentView]
// @Router /v1/articles/{id}/comments [get]
func (r *ArticleRouter) listComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListComments(c.Request().Context(), id, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// listUserComments godoc
// @Summary List comments written by a user
// @Tags comments
// @Produce json
// @Param id path int true "User ID"
// @Param pageNum query int false "Page number (1-based)" default(1)
// @Param pageSize query int false "Page size" default(10) maximum(100)
// @Success 200 {object} pagination.OffsetResult[dto.CommentView]
// @Failure 404 {object} map[string]string
// @Router /v1/users/{id}/comments [get]
func (r *ArticleRouter) listUserComments(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	page, err := bindPage(c)
	if err != nil {
		return err
	}

	res, err := r.svc.ListUserComments(c.Request().Context(), id, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// addComment godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Param comment body dto.AddCommentRequest true "Comment"
// @Success 201 {object} dto.CommentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /v1/articles/{id}/comments [post]
func (r *ArticleRouter) addComment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.AddCommentRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return apperr.NewValidationWrap("invalid comment body", err)
	}

	view, err := r.svc.AddComment(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, view)
}

// likeComment godoc
// @Summary Like a comment
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /v1/comments/{id}/likes [post]
func (r *ArticleRouter) likeComment(c echo.Context) error {
	return r.react(c, r.svc.LikeComment)
}

// dislikeComment godoc
// @Summary Dislike a comment
// @Tags comments
// @Param id path int true "Comment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /v1/comments/{id}/dislikes [post]
func (r *ArticleRouter) dislikeComment(c echo.Context) error {
	return r.react(c, r.svc.DislikeComment)
}

func (r *ArticleRouter) react(c echo.Context, fn func(ctx context.Context, id int64) error) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := fn(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
