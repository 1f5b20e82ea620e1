package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-event-registration/internal/model"
	"go-event-registration/internal/service"
	apperrors "go-event-registration/pkg/app_errors"
	"go-event-registration/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

func (h *RegistrationHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("registrations", h.Register)
		router.POST("registrations/validate", h.Validate)
		router.GET("registrations", h.List)
		router.GET("registrations/export", h.ExportCSV)
	}
}

// Validate runs the field rules without writing anything, for client-side
// form feedback.
func (h *RegistrationHandler) Validate(c *gin.Context) {
	var req model.RegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	errs := h.service.Validate(c, req)
	if errs.HasFormError() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errs[model.FieldForm]})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

func (h *RegistrationHandler) Register(c *gin.Context) {
	var req model.RegistrationRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	if errs := h.service.Validate(c, req); len(errs) > 0 {
		if errs.HasFormError() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": errs[model.FieldForm]})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
		return
	}

	entry, err := h.service.Submit(c, req)
	if err != nil {
		h.handleRegistrationError(c, err, "Register")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":       "Registration successful.",
		"registration": entry,
	})
}

func (h *RegistrationHandler) List(c *gin.Context) {
	records, err := h.service.List(c)
	if err != nil {
		h.handleRegistrationError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": records})
}

// ExportCSV serves the registration list as a CSV attachment. Rows are
// buffered first so a storage failure still yields a clean error response.
func (h *RegistrationHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c, &buf); err != nil {
		h.handleRegistrationError(c, err, "ExportCSV")
		return
	}

	filename := fmt.Sprintf("event-registrations-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *RegistrationHandler) handleRegistrationError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEventNotAvailable):
		log.Warn("event not available")
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid event selected."})
	case errors.Is(err, apperrors.ErrEventFull):
		log.Warn("event full")
		c.JSON(http.StatusConflict, gin.H{"error": "The selected event is already full."})
	case errors.Is(err, apperrors.ErrDuplicateRegistration):
		log.Warn("duplicate registration")
		c.JSON(http.StatusConflict, gin.H{"errors": gin.H{model.FieldEmail: service.MsgDuplicateEmail}})
	default:
		log.Error("unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to process the registration. Please try again later."})
	}
}
