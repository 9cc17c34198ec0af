package controller

import (
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/internal/service"
	"github.com/adiwijaya/ac-maintenance-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type MaintenanceController struct {
	service service.MaintenanceService
}

func CreateMaintenanceController(e *echo.Group, service service.MaintenanceService) {
	c := MaintenanceController{
		service: service,
	}
	e.POST("/maintenance", c.AddMaintenanceEvent)
	e.GET("/maintenance", c.GetMaintenanceEvents)
	e.GET("/maintenance/:id", c.GetMaintenanceEventByID)
	e.PUT("/maintenance/:id", c.UpdateMaintenanceEvent)
	e.DELETE("/maintenance/:id", c.DeleteMaintenanceEvent)
	e.GET("/maintenance/by-ac/:acId", c.GetMaintenanceEventsByAC)
	e.GET("/maintenance/by-employee/:employeeId", c.GetMaintenanceEventsByEmployee)
	e.GET("/employee-statistics", c.GetEmployeeStatistics)
}

func (c *MaintenanceController) AddMaintenanceEvent(e echo.Context) error {
	payload := dto.MaintenanceRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddMaintenanceEvent").Msg("")
	}

	resp, err := c.service.AddMaintenanceEvent(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) GetMaintenanceEvents(e echo.Context) error {
	resp, err := c.service.GetMaintenanceEvents(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) GetMaintenanceEventByID(e echo.Context) error {
	id := e.Param("id")

	resp, err := c.service.GetMaintenanceEventByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) UpdateMaintenanceEvent(e echo.Context) error {
	id := e.Param("id")
	payload := dto.MaintenanceUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateMaintenanceEvent").Msg("")
	}

	payload.ID = id
	resp, err := c.service.UpdateMaintenanceEvent(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) DeleteMaintenanceEvent(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteMaintenanceEvent(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Event deleted successfully", nil)
}

func (c *MaintenanceController) GetMaintenanceEventsByAC(e echo.Context) error {
	acID := e.Param("acId")

	resp, err := c.service.GetMaintenanceEventsByAC(e.Request().Context(), acID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) GetMaintenanceEventsByEmployee(e echo.Context) error {
	employeeID := e.Param("employeeId")

	resp, err := c.service.GetMaintenanceEventsByEmployee(e.Request().Context(), employeeID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *MaintenanceController) GetEmployeeStatistics(e echo.Context) error {
	employeeID := e.QueryParam("userId")

	resp, err := c.service.GetEmployeeStatistics(e.Request().Context(), employeeID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
