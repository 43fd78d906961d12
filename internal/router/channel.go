package router

import (
	"net/http"

	"github.com/DjordjeVuckovic/news-portal/internal/apperr"
	"github.com/DjordjeVuckovic/news-portal/internal/dto"
	"github.com/DjordjeVuckovic/news-portal/internal/service"
	"github.com/labstack/echo/v4"
)

type ChannelRouter struct {
	e        *echo.Echo
	channels *service.ChannelService
	keywords *service.KeywordService
}

func NewChannelRouter(e *echo.Echo, channels *service.ChannelService, keywords *service.KeywordService) *ChannelRouter {
	return &ChannelRouter{
		e:        e,
		channels: channels,
		keywords: keywords,
	}
}

func (r *ChannelRouter) Bind() {
	g := r.e.Group(APIPrefix)
	g.GET("/channels", r.listChannels)
	g.GET("/keywords/hot", r.listHotKeywords)
}

// listChannels godoc
// @Summary List channels
// @Tags channels
// @Produce json
// @Success 200 {array} domain.Channel
// @Router /v1/channels [get]
func (r *ChannelRouter) listChannels(c echo.Context) error {
	channels, err := r.channels.ListChannels(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, channels)
}

// listHotKeywords godoc
// @Summary List the most searched keywords
// @Tags keywords
// @Produce json
// @Param limit query int false "Number of keywords" default(10) maximum(50)
// @Success 200 {object} dto.HotKeywords
// @Router /v1/keywords/hot [get]
func (r *ChannelRouter) listHotKeywords(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return apperr.NewValidationWrap("invalid limit", err)
	}

	hot, err := r.keywords.ListHot(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.HotKeywords{Keywords: hot})
}
