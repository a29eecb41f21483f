package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shenikar/sos_dispatch_system/internal/agent"
	"github.com/shenikar/sos_dispatch_system/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Клиентский агент помощника: подключается к WebSocket-эндпоинту,
// входит в канал назначенного SOS-запроса и передает позицию с
// фиксированным интервалом, пока его не остановят сигналом.
func main() {
	// Загрузка переменных окружения из .env файла (если есть)
	_ = godotenv.Load()

	defaultInterval := 5 * time.Second
	if v := os.Getenv("LOCATION_SAMPLE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			defaultInterval = d
		}
	}

	var (
		serverURL = flag.String("server", "ws://localhost:8080/ws", "адрес WebSocket-эндпоинта")
		userIDRaw = flag.String("user", "", "id пользователя-помощника")
		sosIDRaw  = flag.String("sos", "", "id SOS-запроса, за которым закреплен помощник")
		lat       = flag.Float64("lat", 0, "широта текущей позиции")
		lng       = flag.Float64("lng", 0, "долгота текущей позиции")
		interval  = flag.Duration("interval", defaultInterval, "интервал между замерами")
		logLevel  = flag.String("log-level", getEnv("LOG_LEVEL", "info"), "уровень логирования")
	)
	flag.Parse()

	log := logger.New(*logLevel)

	userID, err := uuid.Parse(*userIDRaw)
	if err != nil {
		log.Fatalf("Invalid -user flag: %v", err)
	}
	sosID, err := uuid.Parse(*sosIDRaw)
	if err != nil {
		log.Fatalf("Invalid -sos flag: %v", err)
	}

	// Контекст живет до сигнала остановки
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	publisher, err := agent.DialWSPublisher(ctx, *serverURL, userID, log)
	if err != nil {
		log.Fatalf("Failed to connect to relay endpoint: %v", err)
	}
	defer publisher.Close()

	if err := publisher.Join(sosID); err != nil {
		log.Fatalf("Failed to join sos channel: %v", err)
	}
	log.WithFields(logrus.Fields{
		"sos_id":   sosID,
		"interval": interval.String(),
	}).Info("Agent connected, publishing location")

	source := func(ctx context.Context) (float64, float64, error) {
		return *lat, *lng, nil
	}
	sampler := agent.NewSampler(sosID, *interval, source, publisher, log)
	sampler.Run(ctx)

	log.Info("Agent stopped")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
