package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (AlertService, *mocks.MockAlertRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewAlertService(repoMock, logger), repoMock
}

func TestCreateAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	userID := uuid.New()
	description := "Flooded underpass, avoid the area"

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, alert *models.Alert) error {
			alert.ID = uuid.New()
			alert.CreatedAt = time.Now()
			return nil
		}).Times(1)

	// Действие
	alert, err := service.CreateAlert(ctx, userID, "Flooding", &description, 55.75, 37.61)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "Flooding", alert.Title)
	assert.Equal(t, userID, alert.UserID)
	require.NotNil(t, alert.Description)
	assert.Equal(t, description, *alert.Description)
	assert.NotEqual(t, uuid.Nil, alert.ID)
}

func TestCreateAlert_DefaultTitle(t *testing.T) {
	// Подготовка: заголовок не указан
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, alert *models.Alert) error {
			alert.ID = uuid.New()
			return nil
		}).Times(1)

	// Действие
	alert, err := service.CreateAlert(ctx, uuid.New(), "", nil, 10, 20)

	// Проверки: подставлен заголовок по умолчанию, описание пустое
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlertTitle, alert.Title)
	assert.Nil(t, alert.Description)
}

func TestCreateAlert_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие: долгота за пределами [-180, 180]
	alert, err := service.CreateAlert(ctx, uuid.New(), "Spill", nil, 10, 200)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestListAlerts_Success(t *testing.T) {
	// Подготовка: доска отдается как есть, новые первыми
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()
	board := []*models.Alert{
		{ID: uuid.New(), Title: "Road closed", CreatedAt: time.Now()},
		{ID: uuid.New(), Title: "Power outage", CreatedAt: time.Now().Add(-time.Hour)},
	}

	repoMock.EXPECT().List(ctx).Return(board, nil).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, board[0].ID, alerts[0].ID)
}

func TestListAlerts_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().List(ctx).Return(nil, errors.New("db down")).Times(1)

	// Действие
	alerts, err := service.ListAlerts(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alerts)
}
