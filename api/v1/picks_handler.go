package v1

import (
	"net/http"

	"github.com/bakeoffleague/fantasy-bakeoff/api/middleware"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"

	"github.com/labstack/echo/v4"
)

// Authenticated pick routes. The caller only ever touches their own picks;
// the user id comes from the token, never the request body.
func RegisterPicksRoutes(g *echo.Group) {
	g.GET("/:week", GetMyPicksHandler)
	g.PUT("/:week", SubmitPicksHandler)
}

func GetMyPicksHandler(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	picks, err := LeagueService.GetUserPicks(claims.Id, week)
	if err != nil {
		return err
	}
	if picks == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no picks submitted for this week")
	}
	return c.JSON(http.StatusOK, echo.Map{"picks": picks})
}

func SubmitPicksHandler(c echo.Context) error {
	claims := middleware.Claims(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	var req league.PicksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	picks, err := LeagueService.SubmitPicks(claims.Id, week, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"picks": picks})
}
