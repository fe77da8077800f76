package v1

import (
	"net/http"
	"strconv"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/scoring"

	"github.com/labstack/echo/v4"
)

var LeagueService *league.LeagueService
var ScoreService *scoring.ScoreService

// Public league reads: bakers, weeks, entered results, standings.
func RegisterLeagueRoutes(g *echo.Group) {
	g.GET("/bakers", ListBakersHandler)
	g.GET("/bakers/active", ActiveBakersHandler)
	g.GET("/weeks", WeekStatusesHandler)
	g.GET("/results", ListResultsHandler)
	g.GET("/results/:week", GetResultsHandler)
	g.GET("/final", GetFinalResultsHandler)
	g.GET("/leaderboard", LeaderboardHandler)
	g.GET("/picks/week/:week", RevealedPicksHandler)
}

func ListBakersHandler(c echo.Context) error {
	bakers, err := LeagueService.ListBakers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"bakers": bakers})
}

func ActiveBakersHandler(c echo.Context) error {
	bakers, err := LeagueService.ActiveBakers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"bakers": bakers})
}

func WeekStatusesHandler(c echo.Context) error {
	weeks, err := LeagueService.WeekStatuses()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"weeks": weeks})
}

func ListResultsHandler(c echo.Context) error {
	results, err := LeagueService.ListWeeklyResults()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

func GetResultsHandler(c echo.Context) error {
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	results, err := LeagueService.GetWeeklyResults(week)
	if err != nil {
		return err
	}
	if results == nil {
		return echo.NewHTTPError(http.StatusNotFound, "no results entered for this week")
	}
	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

func GetFinalResultsHandler(c echo.Context) error {
	final, err := LeagueService.GetFinalResults()
	if err != nil {
		return err
	}
	if final == nil {
		return echo.NewHTTPError(http.StatusNotFound, "final results not entered yet")
	}
	return c.JSON(http.StatusOK, echo.Map{"final": final})
}

// LeaderboardHandler recomputes the standings from scratch on every call;
// the scores are a projection, never stored.
func LeaderboardHandler(c echo.Context) error {
	records, err := ScoreService.Leaderboard()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"leaderboard": records})
}

func RevealedPicksHandler(c echo.Context) error {
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	picks, err := LeagueService.RevealedPicks(week)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"picks": picks})
}

func parseWeek(c echo.Context) (int, error) {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	return week, nil
}
