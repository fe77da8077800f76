package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/bakeoffleague/fantasy-bakeoff/api/middleware"
	v1 "github.com/bakeoffleague/fantasy-bakeoff/api/v1"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/apperrors"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/league"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/mail"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/scoring"
	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"
	"github.com/bakeoffleague/fantasy-bakeoff/pkg/db"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("file .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(
		&user.User{},
		&league.Baker{},
		&league.WeeklyPicks{},
		&league.WeeklyResults{},
		&league.FinalResults{},
	)

	userRepo := user.NewUserRepository()
	leagueRepo := league.NewLeagueRepository()
	overrides := league.NewWeekOverrideStore(db.Rdb)
	mailer := mail.NewFromEnv()

	v1.UserService = user.NewUserService(
		userRepo,
		user.ParseAllowlist(os.Getenv("ALLOWED_EMAILS")),
		os.Getenv("ADMIN_PASSWORD_HASH"),
	)
	v1.LeagueService = league.NewLeagueService(leagueRepo, overrides, userRepo, mailer)
	v1.ScoreService = scoring.NewScoreService(userRepo, leagueRepo)

	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"))
	v1.RegisterLeagueRoutes(api)

	picks := api.Group("/picks")
	picks.Use(api_middleware.SetupJWTMiddleware())
	v1.RegisterPicksRoutes(picks)

	admin := api.Group("/admin")
	admin.Use(api_middleware.SetupJWTMiddleware())
	admin.Use(api_middleware.RequireAdmin)
	v1.RegisterAdminRoutes(admin)
	v1.RegisterUserAdminRoutes(admin.Group("/users"))

	e.Logger.Fatal(e.Start(":8080"))
}

// httpErrorHandler surfaces AppError status codes as JSON instead of echo's
// default 500 for plain errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Println(appErr.Message+":", appErr.Err)
		}
		if jsonErr := c.JSON(appErr.Code, echo.Map{"message": appErr.Message}); jsonErr != nil {
			log.Println("error writing error response:", jsonErr)
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		c.Echo().DefaultHTTPErrorHandler(err, c)
		return
	}

	log.Println("unhandled error:", err)
	c.Echo().DefaultHTTPErrorHandler(
		echo.NewHTTPError(http.StatusInternalServerError, "internal server error"), c)
}
