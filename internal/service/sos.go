package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/sos_dispatch_system/internal/config"
	"github.com/shenikar/sos_dispatch_system/internal/geo"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/notifier"
	"github.com/sirupsen/logrus"
)

// SOSRepository определяет контракт для работы с бд SOS-запросов.
// Переходы статусов выполняются единственным условным UPDATE: хранилище
// и есть точка синхронизации, сервис блокировок не держит.
type SOSRepository interface {
	Create(ctx context.Context, sos *models.SOS) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SOS, error)
	ListOpen(ctx context.Context) ([]*models.SOS, error)
	ClaimOpen(ctx context.Context, sosID, helperID uuid.UUID) (*models.SOS, error)
	RejectOpen(ctx context.Context, sosID uuid.UUID) (*models.SOS, error)
	ResolveAssigned(ctx context.Context, sosID, helperID uuid.UUID) (*models.SOS, error)
	GetSOSFromCache(ctx context.Context, id uuid.UUID) (*models.SOS, error)
	SetSOSCache(ctx context.Context, sos *models.SOS) error
	InvalidateSOSCache(ctx context.Context, id uuid.UUID) error
}

// HelperRepository определяет контракт для работы с бд профилей помощников
type HelperRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Helper, error)
	ListCandidates(ctx context.Context) ([]*models.Helper, error)
	UpdateLocation(ctx context.Context, helperID uuid.UUID, lat, lng float64) error
}

// Relay - контракт реле для рассылки событий по каналам SOS-запросов.
// Передается сервису при конструировании, глобального состояния нет.
type Relay interface {
	PublishLocation(ctx context.Context, sosID uuid.UUID, lat, lng float64)
	PublishClosed(ctx context.Context, sosID uuid.UUID)
}

// SOSService определяет контракт бизнес-логики диспетчеризации SOS-запросов
type SOSService interface {
	CreateSOS(ctx context.Context, userID uuid.UUID, sosType string, lat, lng float64) (*models.SOS, error)
	GetSOS(ctx context.Context, id uuid.UUID) (*models.SOS, error)
	ListOpenSOS(ctx context.Context) ([]*models.SOS, error)
	Claim(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error)
	Reject(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error)
	Resolve(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error)
	NearestHelpers(ctx context.Context, sosID uuid.UUID) ([]*models.RankedHelper, error)
	IngestHelperLocation(ctx context.Context, sosID, helperUserID uuid.UUID, lat, lng float64)
}

type sosService struct {
	repo     SOSRepository
	helpers  HelperRepository
	relay    Relay
	notifier notifier.NotificationPublisher
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewSOSService(repo SOSRepository, helpers HelperRepository, relay Relay, notificationPublisher notifier.NotificationPublisher, logger *logrus.Logger, cfg *config.Config) SOSService {
	return &sosService{
		repo:     repo,
		helpers:  helpers,
		relay:    relay,
		notifier: notificationPublisher,
		logger:   logger,
		cfg:      cfg,
	}
}

// CreateSOS создает SOS-запрос в статусе open
func (s *sosService) CreateSOS(ctx context.Context, userID uuid.UUID, sosType string, lat, lng float64) (*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "CreateSOS",
		"user_id": userID,
		"type":    sosType,
	})

	if !models.IsValidSOSType(sosType) {
		log.Warn("Rejected SOS with unknown type")
		return nil, fmt.Errorf("service: unknown sos type %q: %w", sosType, models.ErrValidation)
	}
	if !models.ValidCoordinates(lat, lng) {
		log.Warn("Rejected SOS with malformed coordinates")
		return nil, fmt.Errorf("service: malformed coordinates: %w", models.ErrValidation)
	}

	sos := &models.SOS{
		UserID:    userID,
		Type:      sosType,
		Latitude:  lat,
		Longitude: lng,
		Status:    models.StatusOpen,
	}
	if err := s.repo.Create(ctx, sos); err != nil {
		log.WithError(err).Error("Failed to create sos request in repository")
		return nil, fmt.Errorf("service: could not create sos request: %w", err)
	}

	log.WithField("sos_id", sos.ID).Info("SOS request created")
	return sos, nil
}

// GetSOS получает SOS-запрос по ID, сначала из кеша
func (s *sosService) GetSOS(ctx context.Context, id uuid.UUID) (*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "GetSOS",
		"sos_id":  id,
	})

	cached, err := s.repo.GetSOSFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read sos request from cache")
	}
	if cached != nil {
		return cached, nil
	}

	sos, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get sos request from repository")
		return nil, fmt.Errorf("service: could not get sos request: %w", err)
	}

	if err := s.repo.SetSOSCache(ctx, sos); err != nil {
		log.WithError(err).Warn("Failed to cache sos request")
	}
	return sos, nil
}

// ListOpenSOS возвращает очередь открытых SOS-запросов (старые первыми)
func (s *sosService) ListOpenSOS(ctx context.Context) ([]*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "ListOpenSOS",
	})

	open, err := s.repo.ListOpen(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list open sos requests")
		return nil, fmt.Errorf("service: could not list open sos requests: %w", err)
	}
	return open, nil
}

// Claim закрепляет открытый SOS-запрос за помощником вызывающего пользователя.
// Среди конкурентных вызовов побеждает ровно один, остальные получают
// ErrConflict и должны перечитать очередь, а не повторять вслепую.
func (s *sosService) Claim(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "Claim",
		"sos_id":  sosID,
		"user_id": helperUserID,
	})

	helper, err := s.helpers.GetByUserID(ctx, helperUserID)
	if err != nil {
		log.WithError(err).Warn("Claim attempted without helper profile")
		return nil, fmt.Errorf("service: could not resolve helper: %w", err)
	}
	if helper.Blocked {
		log.Warn("Claim attempted by blocked helper")
		return nil, fmt.Errorf("service: helper %s is blocked: %w", helper.ID, models.ErrConflict)
	}

	sos, err := s.repo.ClaimOpen(ctx, sosID, helper.ID)
	if err != nil {
		log.WithError(err).Info("Claim did not succeed")
		return nil, fmt.Errorf("service: could not claim sos request: %w", err)
	}

	if err := s.repo.InvalidateSOSCache(ctx, sosID); err != nil {
		log.WithError(err).Warn("Failed to invalidate sos cache after claim")
	}

	// Ровно одно событие на удавшийся claim; при конфликте сюда не доходим
	event := notifier.ClaimEvent{
		SOSID:       sos.ID,
		RequesterID: sos.UserID,
		HelperID:    helper.ID,
		Type:        sos.Type,
	}
	if sos.AssignedAt != nil {
		event.AssignedAt = *sos.AssignedAt
	}
	if err := s.notifier.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish claim notification")
	}

	log.WithField("helper_id", helper.ID).Info("SOS request assigned")
	return sos, nil
}

// Reject переводит открытый SOS-запрос в rejected. Отклонение глобально:
// запрос пропадает из очереди у всех помощников, не только у отклонившего.
func (s *sosService) Reject(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "Reject",
		"sos_id":  sosID,
		"user_id": helperUserID,
	})

	if _, err := s.helpers.GetByUserID(ctx, helperUserID); err != nil {
		log.WithError(err).Warn("Reject attempted without helper profile")
		return nil, fmt.Errorf("service: could not resolve helper: %w", err)
	}

	sos, err := s.repo.RejectOpen(ctx, sosID)
	if err != nil {
		log.WithError(err).Info("Reject did not succeed")
		return nil, fmt.Errorf("service: could not reject sos request: %w", err)
	}

	if err := s.repo.InvalidateSOSCache(ctx, sosID); err != nil {
		log.WithError(err).Warn("Failed to invalidate sos cache after reject")
	}

	log.Info("SOS request rejected")
	return sos, nil
}

// Resolve закрывает SOS-запрос, закрепленный за помощником вызывающего
// пользователя, и рассылает терминальное событие по каналу запроса.
func (s *sosService) Resolve(ctx context.Context, sosID, helperUserID uuid.UUID) (*models.SOS, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "Resolve",
		"sos_id":  sosID,
		"user_id": helperUserID,
	})

	helper, err := s.helpers.GetByUserID(ctx, helperUserID)
	if err != nil {
		log.WithError(err).Warn("Resolve attempted without helper profile")
		return nil, fmt.Errorf("service: could not resolve helper: %w", err)
	}

	sos, err := s.repo.ResolveAssigned(ctx, sosID, helper.ID)
	if err != nil {
		log.WithError(err).Info("Resolve did not succeed")
		return nil, fmt.Errorf("service: could not resolve sos request: %w", err)
	}

	if err := s.repo.InvalidateSOSCache(ctx, sosID); err != nil {
		log.WithError(err).Warn("Failed to invalidate sos cache after resolve")
	}

	s.relay.PublishClosed(ctx, sosID)

	log.Info("SOS request resolved")
	return sos, nil
}

// NearestHelpers возвращает пригодных помощников в радиусе поиска,
// отсортированных по расстоянию до SOS-запроса. Чистое чтение без мутаций,
// безопасно выполняется параллельно с операциями диспетчеризации.
func (s *sosService) NearestHelpers(ctx context.Context, sosID uuid.UUID) ([]*models.RankedHelper, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "NearestHelpers",
		"sos_id":  sosID,
	})

	sos, err := s.GetSOS(ctx, sosID)
	if err != nil {
		return nil, err
	}

	candidates, err := s.helpers.ListCandidates(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list candidate helpers")
		return nil, fmt.Errorf("service: could not list candidate helpers: %w", err)
	}

	ranked := make([]*models.RankedHelper, 0, len(candidates))
	for _, helper := range candidates {
		if helper.Lat == nil || helper.Lng == nil {
			continue
		}
		distance := geo.HaversineKm(sos.Latitude, sos.Longitude, *helper.Lat, *helper.Lng)
		if distance > s.cfg.SearchRadiusKm {
			continue
		}
		ranked = append(ranked, &models.RankedHelper{
			Helper:     *helper,
			DistanceKm: distance,
		})
	}

	// При равных расстояниях порядок фиксируем по id помощника
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].DistanceKm != ranked[j].DistanceKm {
			return ranked[i].DistanceKm < ranked[j].DistanceKm
		}
		return strings.Compare(ranked[i].ID.String(), ranked[j].ID.String()) < 0
	})

	log.WithField("count", len(ranked)).Info("Nearest helpers computed")
	return ranked, nil
}

// IngestHelperLocation принимает замер позиции от помощника: обновляет
// последнюю известную точку профиля и транслирует замер в канал запроса.
// Доставка best-effort: некорректный или неудавшийся замер молча
// отбрасывается, его перекроет следующий.
func (s *sosService) IngestHelperLocation(ctx context.Context, sosID, helperUserID uuid.UUID, lat, lng float64) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "IngestHelperLocation",
		"sos_id":  sosID,
		"user_id": helperUserID,
	})

	if sosID == uuid.Nil || !models.ValidCoordinates(lat, lng) {
		log.Debug("Dropping malformed location sample")
		return
	}

	helper, err := s.helpers.GetByUserID(ctx, helperUserID)
	if err != nil {
		log.WithError(err).Debug("Dropping location sample from unknown helper")
		return
	}

	if err := s.helpers.UpdateLocation(ctx, helper.ID, lat, lng); err != nil {
		log.WithError(err).Warn("Failed to refresh helper location")
	}

	s.relay.PublishLocation(ctx, sosID, lat, lng)
}
