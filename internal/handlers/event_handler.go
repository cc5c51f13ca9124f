package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/showpro/showpro-server/internal/middleware"
	"github.com/showpro/showpro-server/internal/models"
	"github.com/showpro/showpro-server/internal/services"
)

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		var event models.Event
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, err.Error()))
			return
		}

		created, err := es.CreateEvent(c.Request.Context(), tenant.ID, &event)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Event created successfully"))
	}
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 || limit > 100 {
			limit = 20
		}
		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			offset = 0
		}
		status := models.EventStatus(c.Query("status"))

		events, total, err := es.ListEvents(c.Request.Context(), tenant.ID, status, offset, limit)
		if err != nil {
			respondError(c, err)
			return
		}

		page := offset/limit + 1
		c.JSON(http.StatusOK, models.PaginatedResponse(events, page, limit, total))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, "invalid event ID"))
			return
		}

		event, err := es.GetEventByID(c.Request.Context(), tenant.ID, id)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(event, ""))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, "invalid event ID"))
			return
		}

		var input services.UpdateEventInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, err.Error()))
			return
		}

		updated, err := es.UpdateEvent(c.Request.Context(), tenant.ID, id, &input)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Event updated successfully"))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := middleware.TenantFromContext(c)
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(models.CodeTenantNotFound, "workspace not resolved"))
			return
		}

		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(models.CodeValidationError, "invalid event ID"))
			return
		}

		if err := es.DeleteEvent(c.Request.Context(), tenant.ID, id); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Event deleted successfully"))
	}
}
