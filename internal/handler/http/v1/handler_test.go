package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/sos_dispatch_system/internal/config"
	"github.com/shenikar/sos_dispatch_system/internal/models"
	"github.com/shenikar/sos_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockSOSService, *mocks.MockAlertService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSOSService(ctrl)
	mockAlerts := mocks.NewMockAlertService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:        []string{"test-api-key"},
		SearchRadiusKm: 10,
	}

	handler := NewHandler(mockService, mockAlerts, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockService, mockAlerts, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// authHeaders возвращает заголовки с API-ключом и идентификатором пользователя
func authHeaders(userID uuid.UUID) map[string]string {
	return map[string]string{
		"X-API-Key": "test-api-key",
		"X-User-ID": userID.String(),
	}
}

func TestCreateSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()
	reqBody := CreateSOSRequest{
		Type:      models.SOSTypeMedical,
		Latitude:  55.75,
		Longitude: 37.61,
	}
	expectedSOS := &models.SOS{
		ID:        sosID,
		UserID:    userID,
		Type:      reqBody.Type,
		Latitude:  reqBody.Latitude,
		Longitude: reqBody.Longitude,
		Status:    models.StatusOpen,
		CreatedAt: time.Now(),
	}

	mockService.EXPECT().
		CreateSOS(gomock.Any(), userID, reqBody.Type, reqBody.Latitude, reqBody.Longitude).
		Return(expectedSOS, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), authHeaders(userID))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, sosID, resp.ID)
	assert.Equal(t, models.StatusOpen, resp.Status)
}

func TestCreateSOS_InvalidJSON(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CreateSOS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBufferString(`{"type": "Medical"`), authHeaders(uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateSOS_ValidationError(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	reqBody := CreateSOSRequest{ // Отсутствует Type
		Latitude:  55.75,
		Longitude: 37.61,
	}

	mockService.EXPECT().CreateSOS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), authHeaders(uuid.New()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSOS_UnknownType(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := CreateSOSRequest{
		Type:      "Alien Invasion",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	mockService.EXPECT().
		CreateSOS(gomock.Any(), userID, reqBody.Type, reqBody.Latitude, reqBody.Longitude).
		Return(nil, models.ErrValidation).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), authHeaders(userID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid emergency type or location")
}

func TestCreateSOS_MissingUserID(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CreateSOS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateSOSRequest{Type: models.SOSTypeMedical, Latitude: 1, Longitude: 1}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOpenSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	open := []*models.SOS{
		{ID: uuid.New(), UserID: uuid.New(), Type: models.SOSTypeAccident, Status: models.StatusOpen, CreatedAt: time.Now().Add(-time.Minute)},
		{ID: uuid.New(), UserID: uuid.New(), Type: models.SOSTypePolice, Status: models.StatusOpen, CreatedAt: time.Now()},
	}

	mockService.EXPECT().ListOpenSOS(gomock.Any()).Return(open, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/open", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, open[0].ID, resp[0].ID)
	assert.Equal(t, open[1].ID, resp[1].ID)
}

func TestListOpenSOS_Empty(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListOpenSOS(gomock.Any()).Return([]*models.SOS{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/open", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	sos := &models.SOS{ID: sosID, UserID: uuid.New(), Type: models.SOSTypeVehicle, Status: models.StatusOpen, CreatedAt: time.Now()}

	mockService.EXPECT().GetSOS(gomock.Any(), sosID).Return(sos, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/"+sosID.String(), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, sosID, resp.ID)
}

func TestGetSOS_NotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()

	mockService.EXPECT().GetSOS(gomock.Any(), sosID).Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/"+sosID.String(), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSOS_InvalidID(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetSOS(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/sos/not-a-uuid", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid SOS ID")
}

func TestClaimSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()
	helperID := uuid.New()
	now := time.Now()
	assigned := &models.SOS{
		ID:         sosID,
		UserID:     uuid.New(),
		Type:       models.SOSTypeMedical,
		Status:     models.StatusAssigned,
		HelperID:   &helperID,
		CreatedAt:  now.Add(-time.Minute),
		AssignedAt: &now,
	}

	mockService.EXPECT().Claim(gomock.Any(), sosID, userID).Return(assigned, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/claim", nil, authHeaders(userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, resp.Status)
	require.NotNil(t, resp.HelperID)
	assert.Equal(t, helperID, *resp.HelperID)
	assert.NotNil(t, resp.AssignedAt)
}

func TestClaimSOS_Conflict(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), sosID, userID).Return(nil, models.ErrConflict).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/claim", nil, authHeaders(userID))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no longer available")
}

func TestClaimSOS_NoHelperProfile(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), sosID, userID).Return(nil, models.ErrNoHelperProfile).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/claim", nil, authHeaders(userID))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "helper profile required")
}

func TestClaimSOS_NotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), sosID, userID).Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/claim", nil, authHeaders(userID))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClaimSOS_InternalError(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Claim(gomock.Any(), sosID, userID).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/claim", nil, authHeaders(userID))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRejectSOS_Conflict(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Reject(gomock.Any(), sosID, userID).Return(nil, models.ErrConflict).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/reject", nil, authHeaders(userID))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not open anymore")
}

func TestRejectSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()
	rejected := &models.SOS{ID: sosID, UserID: uuid.New(), Type: models.SOSTypePolice, Status: models.StatusRejected, CreatedAt: time.Now()}

	mockService.EXPECT().Reject(gomock.Any(), sosID, userID).Return(rejected, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/reject", nil, authHeaders(userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, resp.Status)
}

func TestResolveSOS_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()
	helperID := uuid.New()
	now := time.Now()
	closed := &models.SOS{
		ID:         sosID,
		UserID:     uuid.New(),
		Type:       models.SOSTypeVehicle,
		Status:     models.StatusClosed,
		HelperID:   &helperID,
		CreatedAt:  now.Add(-time.Hour),
		AssignedAt: &now,
	}

	mockService.EXPECT().Resolve(gomock.Any(), sosID, userID).Return(closed, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/resolve", nil, authHeaders(userID))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClosed, resp.Status)
}

func TestResolveSOS_NotYourAssignment(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	userID := uuid.New()

	mockService.EXPECT().Resolve(gomock.Any(), sosID, userID).Return(nil, models.ErrConflict).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sos/"+sosID.String()+"/resolve", nil, authHeaders(userID))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not your assignment")
}

func TestNearestHelpers_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()
	lat1, lng1 := 55.76, 37.62
	lat2, lng2 := 55.80, 37.70
	ranked := []*models.RankedHelper{
		{Helper: models.Helper{ID: uuid.New(), UserID: uuid.New(), Role: models.RoleAmbulance, Lat: &lat1, Lng: &lng1}, DistanceKm: 1.2},
		{Helper: models.Helper{ID: uuid.New(), UserID: uuid.New(), Role: models.RoleVolunteer, Lat: &lat2, Lng: &lng2}, DistanceKm: 7.8},
	}

	mockService.EXPECT().NearestHelpers(gomock.Any(), sosID).Return(ranked, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/"+sosID.String()+"/helpers/nearest", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp NearestHelpersResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, sosID, resp.SOSID)
	require.Len(t, resp.Helpers, 2)
	assert.Equal(t, ranked[0].ID, resp.Helpers[0].ID)
	assert.InDelta(t, 1.2, resp.Helpers[0].DistanceKm, 1e-9)
}

func TestNearestHelpers_SOSNotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	sosID := uuid.New()

	mockService.EXPECT().NearestHelpers(gomock.Any(), sosID).Return(nil, models.ErrNotFound).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/"+sosID.String()+"/helpers/nearest", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthMiddleware_MissingAPIKey(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListOpenSOS(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/sos/open", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAuthMiddleware_InvalidAPIKey(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListOpenSOS(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/sos/open", nil, map[string]string{"X-API-Key": "wrong-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListOpenSOS(gomock.Any()).Return([]*models.SOS{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos/open", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestCreateAlert_Success(t *testing.T) {
	_, mockAlerts, router := newTestHandler(t)
	alertID := uuid.New()
	userID := uuid.New()
	description := "Road flooded near the bridge"
	reqBody := CreateAlertRequest{
		Title:       "Flooding",
		Description: &description,
		Lat:         55.75,
		Lng:         37.61,
	}
	expectedAlert := &models.Alert{
		ID:          alertID,
		UserID:      userID,
		Title:       reqBody.Title,
		Description: reqBody.Description,
		Lat:         reqBody.Lat,
		Lng:         reqBody.Lng,
		CreatedAt:   time.Now(),
	}

	mockAlerts.EXPECT().
		CreateAlert(gomock.Any(), userID, reqBody.Title, reqBody.Description, reqBody.Lat, reqBody.Lng).
		Return(expectedAlert, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeaders(userID))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, alertID, resp.ID)
	assert.Equal(t, "Flooding", resp.Title)
}

func TestCreateAlert_InvalidCoordinates(t *testing.T) {
	_, mockAlerts, router := newTestHandler(t)
	userID := uuid.New()
	reqBody := CreateAlertRequest{Title: "Spill", Lat: 95, Lng: 10}

	mockAlerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), authHeaders(userID))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAlert_MissingUserID(t *testing.T) {
	_, mockAlerts, router := newTestHandler(t)

	mockAlerts.EXPECT().CreateAlert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := CreateAlertRequest{Title: "Flooding", Lat: 1, Lng: 1}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAlerts_Success(t *testing.T) {
	_, mockAlerts, router := newTestHandler(t)
	board := []*models.Alert{
		{ID: uuid.New(), UserID: uuid.New(), Title: "Road closed", Lat: 1, Lng: 2, CreatedAt: time.Now()},
		{ID: uuid.New(), UserID: uuid.New(), Title: "Power outage", Lat: 3, Lng: 4, CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockAlerts.EXPECT().ListAlerts(gomock.Any()).Return(board, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/alerts", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []*AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, board[0].ID, resp[0].ID)
	assert.Equal(t, board[1].ID, resp[1].ID)
}
