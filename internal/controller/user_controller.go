package controller

import (
	"fmt"

	"github.com/adiwijaya/ac-maintenance-service/internal/auth"
	"github.com/adiwijaya/ac-maintenance-service/internal/domain"
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/internal/service"
	"github.com/adiwijaya/ac-maintenance-service/pkg/response"
	"github.com/adiwijaya/ac-maintenance-service/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.POST("/users/register", c.AddUser)
	e.POST("/auth/login", c.Login)
	e.GET("/users", c.GetUsers)
	e.GET("/users/:id", c.GetUserByID)
	e.PUT("/users/:id", c.UpdateUser)
	e.DELETE("/users/:id", c.DeleteUser, isLoggedIn)
	e.GET("/dashboard", c.Dashboard, isLoggedIn)
	e.GET("/adminpanel", c.AdminPanel, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	resp, err := c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUsers(e echo.Context) error {
	resp, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) GetUserByID(e echo.Context) error {
	id := e.Param("id")

	resp, err := c.service.GetUserByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) UpdateUser(e echo.Context) error {
	id := e.Param("id")
	payload := dto.UserUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
	}

	payload.ID = id
	resp, err := c.service.UpdateUser(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *UserController) DeleteUser(e echo.Context) error {
	if err := auth.Require(principalFromContext(e), domain.RoleAdmin); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	id := e.Param("id")
	err := c.service.DeleteUser(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "user deleted successfully", nil)
}

func (c *UserController) Dashboard(e echo.Context) error {
	p := principalFromContext(e)

	return response.WriteSuccessResponse(e, fmt.Sprintf("Welcome to your dashboard, %s", p.Username), map[string]interface{}{
		"userId": p.ID,
	})
}

func (c *UserController) AdminPanel(e echo.Context) error {
	p := principalFromContext(e)
	if err := auth.Require(p, domain.RoleAdmin); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, fmt.Sprintf("Welcome to the admin panel, %s!", p.Username), nil)
}

func principalFromContext(e echo.Context) auth.Principal {
	id, username, role := utils.ExtractTokenUser(e)
	return auth.Principal{ID: id, Username: username, Role: role}
}
