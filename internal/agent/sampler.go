package agent

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LocationSource возвращает текущую позицию агента (например, GPS-датчик).
type LocationSource func(ctx context.Context) (lat, lng float64, err error)

// LocationPublisher - куда агент отправляет замеры позиции.
// Реализуется клиентским подключением к реле.
type LocationPublisher interface {
	PublishLocation(ctx context.Context, sosID uuid.UUID, lat, lng float64)
}

// Sampler - периодическая отправка позиции помощника, пока за ним
// закреплен SOS-запрос. Живет ровно столько, сколько живет контекст
// назначения: отмена контекста детерминированно останавливает цикл,
// осиротевших таймеров не остается.
type Sampler struct {
	sosID     uuid.UUID
	interval  time.Duration
	source    LocationSource
	publisher LocationPublisher
	logger    *logrus.Logger
}

func NewSampler(sosID uuid.UUID, interval time.Duration, source LocationSource, publisher LocationPublisher, logger *logrus.Logger) *Sampler {
	return &Sampler{
		sosID:     sosID,
		interval:  interval,
		source:    source,
		publisher: publisher,
		logger:    logger,
	}
}

// Run отправляет замер сразу при старте, затем с фиксированным интервалом.
// Неудачный замер не повторяется: его перекроет следующий по расписанию.
// Блокируется до отмены контекста.
func (s *Sampler) Run(ctx context.Context) {
	log := s.logger.WithField("sos_id", s.sosID)
	log.Info("Starting location sampler")

	s.sample(ctx, log)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping location sampler")
			return
		case <-ticker.C:
			s.sample(ctx, log)
		}
	}
}

func (s *Sampler) sample(ctx context.Context, log *logrus.Entry) {
	lat, lng, err := s.source(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read current location")
		return
	}
	s.publisher.PublishLocation(ctx, s.sosID, lat, lng)
}
