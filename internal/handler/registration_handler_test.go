package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-event-registration/internal/handler"
	"go-event-registration/internal/model"
	"go-event-registration/internal/service"
	"go-event-registration/internal/service/mocks"
	apperrors "go-event-registration/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRegistrationTestRouter(mockService *mocks.MockRegistrationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	registrationHandler := handler.NewRegistrationHandler(mockService)
	registrationHandler.RegisterRoutes(router)

	return router
}

func validRegistrationRequest() model.RegistrationRequest {
	return model.RegistrationRequest{
		EventID:    1,
		FullName:   "Jordan Smith",
		Email:      "jordan@example.com",
		College:    "Engineering",
		Department: "Computer Science",
	}
}

func TestRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()
		mockService.EXPECT().Submit(mock.Anything, mock.Anything).Return(&model.RegistrationEntry{
			ID:         42,
			EventID:    1,
			FullName:   "Jordan Smith",
			Email:      "jordan@example.com",
			College:    "Engineering",
			Department: "Computer Science",
		}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "Registration successful.")
		mockService.AssertExpectations(t)
	})

	t.Run("Failed - field errors", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{
			model.FieldEmail: service.MsgEmailInvalid,
		}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"errors": {"email": "A valid email address is required."}}`, w.Body.String())
		mockService.AssertNotCalled(t, "Submit")
	})

	t.Run("Failed - validation interrupted by storage error", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{
			model.FieldForm: service.MsgFormError,
		}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		mockService.AssertNotCalled(t, "Submit")
	})

	t.Run("Failed - ErrEventNotAvailable", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()
		mockService.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, apperrors.ErrEventNotAvailable).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Invalid event selected."}`, w.Body.String())
	})

	t.Run("Failed - ErrEventFull", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()
		mockService.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, apperrors.ErrEventFull).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "The selected event is already full."}`, w.Body.String())
	})

	t.Run("Failed - ErrDuplicateRegistration", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()
		mockService.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, apperrors.ErrDuplicateRegistration).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"errors": {"email": "This email address is already registered for the selected event."}}`, w.Body.String())
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()
		mockService.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/registrations", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Validate")
		mockService.AssertNotCalled(t, "Submit")
	})
}

func TestValidateRegistration(t *testing.T) {
	t.Run("Success - valid submission", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations/validate", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"valid": true, "errors": {}}`, w.Body.String())
	})

	t.Run("Success - invalid submission reports errors", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{
			model.FieldFullName: service.MsgFullNameRequired,
			model.FieldEmail:    service.MsgEmailInvalid,
		}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations/validate", model.RegistrationRequest{EventID: 1})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"valid": false,
			"errors": {
				"full_name": "Full name is required.",
				"email": "A valid email address is required."
			}
		}`, w.Body.String())
	})

	t.Run("Failed - storage error during validation", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().Validate(mock.Anything, mock.Anything).Return(model.FieldErrors{
			model.FieldForm: service.MsgFormError,
		}).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/registrations/validate", validRegistrationRequest())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/registrations/validate", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Validate")
	})
}

func TestListRegistrations(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		records := []*model.RegistrationRecord{
			{
				RegistrationEntry: model.RegistrationEntry{ID: 1, EventID: 1, FullName: "Jordan Smith"},
				EventName:         "Tech Symposium",
			},
		}
		mockService.EXPECT().List(mock.Anything).Return(records, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/registrations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Tech Symposium")
	})

	t.Run("Failed - storage error", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().List(mock.Anything).Return(nil, apperrors.ErrInternalServerError).Once()

		req, _ := http.NewRequest("GET", "/api/v1/registrations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestExportRegistrationsCSV(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		csv := "ID,Event Name,Full Name,Email,College,Department,Registration Date\n" +
			"1,Tech Symposium,Jordan Smith,jordan@example.com,Engineering,Computer Science,2026-08-30 09:15:00\n"
		mockService.EXPECT().ExportCSV(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, w io.Writer) error {
				_, err := io.Copy(w, strings.NewReader(csv))
				return err
			}).Once()

		req, _ := http.NewRequest("GET", "/api/v1/registrations/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment; filename=")
		assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
		assert.Equal(t, csv, w.Body.String())
	})

	t.Run("Failed - storage error yields a JSON error, not a partial file", func(t *testing.T) {
		mockService := mocks.NewMockRegistrationService(t)
		router := setupRegistrationTestRouter(mockService)

		mockService.EXPECT().ExportCSV(mock.Anything, mock.Anything).Return(apperrors.ErrInternalServerError).Once()

		req, _ := http.NewRequest("GET", "/api/v1/registrations/export", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, w.Header().Get("Content-Disposition"))
	})
}
