package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	List(ctx context.Context) ([]*models.Alert, error)
}

// AlertService определяет контракт доски публичных оповещений
type AlertService interface {
	CreateAlert(ctx context.Context, userID uuid.UUID, title string, description *string, lat, lng float64) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]*models.Alert, error)
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAlert публикует оповещение на доске. Пустой заголовок
// заменяется заголовком по умолчанию, описание необязательно.
func (s *alertService) CreateAlert(ctx context.Context, userID uuid.UUID, title string, description *string, lat, lng float64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"user_id": userID,
	})

	if !models.ValidCoordinates(lat, lng) {
		log.Warn("Rejected alert with malformed coordinates")
		return nil, fmt.Errorf("service: malformed coordinates: %w", models.ErrValidation)
	}
	if title == "" {
		title = models.DefaultAlertTitle
	}

	alert := &models.Alert{
		UserID:      userID,
		Title:       title,
		Description: description,
		Lat:         lat,
		Lng:         lng,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert published")
	return alert, nil
}

// ListAlerts возвращает доску оповещений, новые первыми
func (s *alertService) ListAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListAlerts",
	})

	alerts, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
