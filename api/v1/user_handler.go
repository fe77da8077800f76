package v1

import (
	"net/http"
	"strconv"

	"github.com/bakeoffleague/fantasy-bakeoff/internal/user"

	"github.com/labstack/echo/v4"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.POST("/register", RegisterHandler)
	g.POST("/login", LoginHandler)
	g.POST("/admin/login", AdminLoginHandler)
}

func RegisterUserAdminRoutes(g *echo.Group) {
	g.GET("", ListUsersHandler)
	g.PUT("/:id", UpdateUserHandler)
	g.DELETE("/:id", DeleteUserHandler)
}

func RegisterHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, u, err := UserService.Register(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": u})
}

func LoginHandler(c echo.Context) error {
	var req user.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, u, err := UserService.Login(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": u})
}

func AdminLoginHandler(c echo.Context) error {
	var req user.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	token, err := UserService.AdminLogin(req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func ListUsersHandler(c echo.Context) error {
	users, err := UserService.ListUsers()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

func UpdateUserHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req user.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	if err := UserService.UpdateUser(id, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func DeleteUserHandler(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := UserService.DeleteUser(id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}
	return uint(id), nil
}
