package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sos_dispatch_system/internal/config"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	sosService   service.SOSService
	alertService service.AlertService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(sosService service.SOSService, alertService service.AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		sosService:   sosService,
		alertService: alertService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Create a new SOS request
// @Description Create a new SOS request in the open state. Requires API key and caller identity.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body CreateSOSRequest true "SOS creation request"
// @Success 201 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid type or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) createSOS(c *gin.Context) {
	var input CreateSOSRequest
	log := h.logger.WithField("method", "createSOS")

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sos, err := h.sosService.CreateSOS(c.Request.Context(), userID, input.Type, input.Latitude, input.Longitude)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			log.WithError(err).Warn("SOS request rejected by validation")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency type or location"})
			return
		}
		log.WithError(err).Error("Failed to create sos request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSOSResponse(sos))
}

// @Summary List open SOS requests
// @Description Get the queue of open SOS requests ordered by creation time ascending. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} SOSResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/open [get]
func (h *Handler) listOpenSOS(c *gin.Context) {
	log := h.logger.WithField("method", "listOpenSOS")

	open, err := h.sosService.ListOpenSOS(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list open sos requests from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSOSResponses(open))
}

// @Summary Get SOS request by ID
// @Description Get a single SOS request by its ID. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "SOS not found"
// @Router /sos/{id} [get]
func (h *Handler) getSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid SOS ID"})
		return
	}
	log := h.logger.WithField("method", "getSOS").WithField("id", id)

	sos, err := h.sosService.GetSOS(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get sos request from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "SOS request not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToSOSResponse(sos))
}

// @Summary Claim an open SOS request
// @Description Atomically assign an open SOS request to the caller's helper profile. Exactly one concurrent claimer wins. Requires API key and caller identity.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller has no helper profile"
// @Failure 404 {object} map[string]string "SOS not found"
// @Failure 409 {object} map[string]string "SOS is no longer available"
// @Router /sos/{id}/claim [post]
func (h *Handler) claimSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid SOS ID"})
		return
	}
	log := h.logger.WithField("method", "claimSOS").WithField("id", id)

	userID, ok := callerID(c)
	if !ok {
		return
	}

	sos, err := h.sosService.Claim(c.Request.Context(), id, userID)
	if err != nil {
		h.respondDispatchError(c, log, err, "this SOS is no longer available")
		return
	}
	c.JSON(http.StatusOK, ModelToSOSResponse(sos))
}

// @Summary Reject an open SOS request
// @Description Atomically move an open SOS request to rejected. The request disappears from the open queue for all helpers. Requires API key and caller identity.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller has no helper profile"
// @Failure 404 {object} map[string]string "SOS not found"
// @Failure 409 {object} map[string]string "SOS is not open"
// @Router /sos/{id}/reject [post]
func (h *Handler) rejectSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid SOS ID"})
		return
	}
	log := h.logger.WithField("method", "rejectSOS").WithField("id", id)

	userID, ok := callerID(c)
	if !ok {
		return
	}

	sos, err := h.sosService.Reject(c.Request.Context(), id, userID)
	if err != nil {
		h.respondDispatchError(c, log, err, "this SOS is not open anymore")
		return
	}
	c.JSON(http.StatusOK, ModelToSOSResponse(sos))
}

// @Summary Resolve an assigned SOS request
// @Description Atomically close an SOS request assigned to the caller's helper profile and broadcast the terminal event. Requires API key and caller identity.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Success 200 {object} SOSResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Caller has no helper profile"
// @Failure 404 {object} map[string]string "SOS not found"
// @Failure 409 {object} map[string]string "Not your assignment"
// @Router /sos/{id}/resolve [post]
func (h *Handler) resolveSOS(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid SOS ID"})
		return
	}
	log := h.logger.WithField("method", "resolveSOS").WithField("id", id)

	userID, ok := callerID(c)
	if !ok {
		return
	}

	sos, err := h.sosService.Resolve(c.Request.Context(), id, userID)
	if err != nil {
		h.respondDispatchError(c, log, err, "not your assignment")
		return
	}
	c.JSON(http.StatusOK, ModelToSOSResponse(sos))
}

// @Summary Nearest helpers for an SOS request
// @Description Get available helpers within the search radius ranked by distance to the SOS location. Requires API key.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS ID"
// @Success 200 {object} NearestHelpersResponse
// @Failure 400 {object} map[string]string "Invalid SOS ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "SOS not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{id}/helpers/nearest [get]
func (h *Handler) nearestHelpers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid SOS ID"})
		return
	}
	log := h.logger.WithField("method", "nearestHelpers").WithField("id", id)

	ranked, err := h.sosService.NearestHelpers(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("SOS request not found for nearest helpers")
			c.JSON(http.StatusNotFound, gin.H{"error": "SOS request not found"})
			return
		}
		log.WithError(err).Error("Failed to compute nearest helpers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, NearestHelpersResponse{
		SOSID:   id,
		Helpers: RankedToHelperResponses(ranked),
	})
}

// @Summary Publish a community alert
// @Description Publish a public alert on the community board. An empty title defaults to "Emergency". Requires API key and caller identity.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param alert body CreateAlertRequest true "Alert to publish"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [post]
func (h *Handler) createAlert(c *gin.Context) {
	var input CreateAlertRequest
	log := h.logger.WithField("method", "createAlert")

	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.CreateAlert(c.Request.Context(), userID, input.Title, input.Description, input.Lat, input.Lng)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			log.WithError(err).Warn("Alert rejected by validation")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert location"})
			return
		}
		log.WithError(err).Error("Failed to create alert in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary List community alerts
// @Description Get the community alert board, newest first. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} AlertResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "listAlerts")

	alerts, err := h.alertService.ListAlerts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondDispatchError переводит ошибки переходов в HTTP-статусы.
// Конфликт - штатный исход проигранной гонки, ему соответствует
// понятное пользователю сообщение, а не общая ошибка.
func (h *Handler) respondDispatchError(c *gin.Context, log *logrus.Entry, err error, conflictMessage string) {
	switch {
	case errors.Is(err, models.ErrNoHelperProfile):
		log.WithError(err).Warn("Caller has no helper profile")
		c.JSON(http.StatusForbidden, gin.H{"error": "helper profile required"})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("SOS request not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "SOS request not found"})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Info("Dispatch transition conflict")
		c.JSON(http.StatusConflict, gin.H{"error": conflictMessage})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Dispatch validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Dispatch operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
