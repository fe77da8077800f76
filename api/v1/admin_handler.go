package v1

import (
	"log"
	"net/http"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/mail"

	"github.com/labstack/echo/v4"
)

// Commissioner routes, mounted behind the JWT middleware plus the admin
// claim check.
func RegisterAdminRoutes(g *echo.Group) {
	g.POST("/bakers", AddBakerHandler)
	g.DELETE("/bakers/:id", DeleteBakerHandler)
	g.PUT("/results/:week", EnterResultsHandler)
	g.PUT("/final", SetFinalResultsHandler)
	g.PUT("/weeks/:week/override", SetWeekOverrideHandler)
	g.GET("/backup", BackupHandler)
	g.DELETE("/data", ResetDataHandler)
}

type addBakerRequest struct {
	Name string `json:"name"`
}

type weekOverrideRequest struct {
	Enabled bool `json:"enabled"`
}

func AddBakerHandler(c echo.Context) error {
	var req addBakerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	baker, err := LeagueService.AddBaker(req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"baker": baker})
}

func DeleteBakerHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := LeagueService.DeleteBaker(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// EnterResultsHandler records the episode outcome, then mails the
// commissioner the refreshed standings.
func EnterResultsHandler(c echo.Context) error {
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	var req league.ResultsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	results, err := LeagueService.EnterWeeklyResults(week, req)
	if err != nil {
		return err
	}

	records, err := ScoreService.Leaderboard()
	if err != nil {
		log.Println("error computing leaderboard for commissioner update:", err)
	} else {
		standings := make([]mail.ScoreRow, 0, len(records))
		for _, record := range records {
			standings = append(standings, mail.ScoreRow{
				Player:          record.Name,
				WeeklyPoints:    record.WeeklyPoints,
				ForesightPoints: record.ForesightPoints,
				TotalPoints:     record.TotalPoints,
			})
		}
		LeagueService.NotifyCommissioner(results, standings)
	}

	return c.JSON(http.StatusOK, echo.Map{"results": results})
}

func SetFinalResultsHandler(c echo.Context) error {
	var req league.FinalResultsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	final, err := LeagueService.SetFinalResults(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"final": final})
}

func SetWeekOverrideHandler(c echo.Context) error {
	week, err := parseWeek(c)
	if err != nil {
		return err
	}
	var req weekOverrideRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := LeagueService.SetWeekOverride(week, req.Enabled); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"week": week, "enabled": req.Enabled})
}

func BackupHandler(c echo.Context) error {
	backup, err := LeagueService.BackupData()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, backup)
}

func ResetDataHandler(c echo.Context) error {
	if err := LeagueService.ResetAllData(); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
