package controller

import (
	"github.com/adiwijaya/ac-maintenance-service/internal/dto"
	"github.com/adiwijaya/ac-maintenance-service/internal/service"
	"github.com/adiwijaya/ac-maintenance-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ACController struct {
	service service.ACService
}

func CreateACController(e *echo.Group, service service.ACService) {
	c := ACController{
		service: service,
	}
	e.POST("/ac", c.AddAC)
	e.GET("/ac", c.GetACs)
	e.GET("/ac/:id", c.GetACByID)
	e.PUT("/ac/:id", c.UpdateAC)
	e.DELETE("/ac/:id", c.DeleteAC)
	e.PATCH("/ac/:id", c.AppendMaintenanceHistory)
	e.GET("/ac/:id/history", c.GetMaintenanceHistory)
	e.GET("/ac/maintenance/:eventId", c.GetACByMaintenanceEvent)
}

func (c *ACController) AddAC(e echo.Context) error {
	payload := dto.ACRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddAC").Msg("")
	}

	resp, err := c.service.AddAC(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) GetACs(e echo.Context) error {
	resp, err := c.service.GetACs(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) GetACByID(e echo.Context) error {
	id := e.Param("id")

	resp, err := c.service.GetACByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) UpdateAC(e echo.Context) error {
	id := e.Param("id")
	payload := dto.ACUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateAC").Msg("")
	}

	payload.ID = id
	resp, err := c.service.UpdateAC(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) DeleteAC(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteAC(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "AC unit deleted successfully", nil)
}

// AppendMaintenanceHistory accepts either the document id or the unit's
// external identifier in the path.
func (c *ACController) AppendMaintenanceHistory(e echo.Context) error {
	rawKey := e.Param("id")
	payload := dto.MaintenanceHistoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AppendMaintenanceHistory").Msg("")
	}

	resp, err := c.service.AppendMaintenanceHistory(e.Request().Context(), rawKey, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) GetMaintenanceHistory(e echo.Context) error {
	id := e.Param("id")

	resp, err := c.service.GetMaintenanceHistory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ACController) GetACByMaintenanceEvent(e echo.Context) error {
	eventID := e.Param("eventId")

	resp, err := c.service.GetACByMaintenanceEventID(e.Request().Context(), eventID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}
