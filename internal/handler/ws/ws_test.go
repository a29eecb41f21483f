package ws

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/shenikar/sos_dispatch_system/internal/relay"
	"github.com/shenikar/sos_dispatch_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestServer поднимает тестовый HTTP-сервер с WebSocket-эндпоинтом
func newTestServer(t *testing.T) (*httptest.Server, *relay.Hub, *mocks.MockSOSService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSOSService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	hub := relay.NewHub(16, logger)
	handler := NewHandler(hub, mockService, logger)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ws", handler.Serve)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, hub, mockService
}

// dial устанавливает WebSocket-соединение с идентичностью пользователя
func dial(t *testing.T, srv *httptest.Server, userID uuid.UUID) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	header := http.Header{}
	header.Set("X-User-ID", userID.String())

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	if resp != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServe_RejectsMissingIdentity(t *testing.T) {
	srv, _, _ := newTestServer(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)

	assert.Error(t, err)
	assert.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJoin_ReceivesRoomEvents(t *testing.T) {
	srv, hub, _ := newTestServer(t)
	sosID := uuid.New()

	conn := dial(t, srv, uuid.New())
	require.NoError(t, conn.WriteJSON(map[string]string{"event": "sos:join", "sos_id": sosID.String()}))

	// Ждем регистрации подписки перед рассылкой
	require.Eventually(t, func() bool {
		return hub.SubscriberCount(sosID) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(relay.Event{
		Event:     relay.EventLocationUpdate,
		SOSID:     sosID,
		Latitude:  55.75,
		Longitude: 37.61,
		At:        time.Now().UTC(),
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var got relay.Event
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, relay.EventLocationUpdate, got.Event)
	assert.Equal(t, sosID, got.SOSID)
	assert.InDelta(t, 55.75, got.Latitude, 1e-9)
}

func TestJoin_DoesNotReceiveOtherRooms(t *testing.T) {
	srv, hub, _ := newTestServer(t)
	joined := uuid.New()
	other := uuid.New()

	conn := dial(t, srv, uuid.New())
	require.NoError(t, conn.WriteJSON(map[string]string{"event": "sos:join", "sos_id": joined.String()}))

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(joined) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(relay.Event{Event: relay.EventLocationUpdate, SOSID: other, Latitude: 1, Longitude: 2, At: time.Now().UTC()})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	var got relay.Event
	err := conn.ReadJSON(&got)
	assert.Error(t, err) // Событие чужой комнаты не должно прийти
}

func TestLeave_StopsDelivery(t *testing.T) {
	srv, hub, _ := newTestServer(t)
	sosID := uuid.New()

	conn := dial(t, srv, uuid.New())
	require.NoError(t, conn.WriteJSON(map[string]string{"event": "sos:join", "sos_id": sosID.String()}))

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(sosID) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteJSON(map[string]string{"event": "sos:leave", "sos_id": sosID.String()}))

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(sosID) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHelperLocation_ForwardedToService(t *testing.T) {
	srv, _, mockService := newTestServer(t)
	sosID := uuid.New()
	userID := uuid.New()

	ingested := make(chan struct{})
	mockService.EXPECT().
		IngestHelperLocation(gomock.Any(), sosID, userID, 55.75, 37.61).
		Do(func(_ context.Context, _ uuid.UUID, _ uuid.UUID, _ float64, _ float64) {
			close(ingested)
		}).Times(1)

	conn := dial(t, srv, userID)
	require.NoError(t, conn.WriteJSON(map[string]any{
		"event":     "helper:location",
		"sos_id":    sosID.String(),
		"latitude":  55.75,
		"longitude": 37.61,
	}))

	select {
	case <-ingested:
	case <-time.After(time.Second):
		t.Fatal("location was not forwarded to the service")
	}
}

func TestDisconnect_RemovesSubscriptions(t *testing.T) {
	srv, hub, _ := newTestServer(t)
	sosID := uuid.New()

	conn := dial(t, srv, uuid.New())
	require.NoError(t, conn.WriteJSON(map[string]string{"event": "sos:join", "sos_id": sosID.String()}))

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(sosID) == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.SubscriberCount(sosID) == 0
	}, time.Second, 10*time.Millisecond)
}
