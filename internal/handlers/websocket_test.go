package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cricket-live-backend/internal/config"
	"cricket-live-backend/internal/handlers"
	"cricket-live-backend/internal/services"
)

type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		FrontendURL:  "http://localhost:5173",
		InitialCoins: 1000,
		CostPerPlay:  20,
	}

	wallet := services.NewWalletStore(cfg.InitialCoins)
	registry := services.NewTokenRegistry()
	matches := services.NewMatchIndex()
	ledger := services.NewWithdrawLedger(wallet)

	hub := handlers.NewHub(registry, matches)
	wsHandler := handlers.NewWebSocketHandler(hub)
	tokenHandler := handlers.NewTokenHandler(registry, matches, cfg)
	eventHandler := handlers.NewEventHandler(matches, hub)
	userHandler := handlers.NewUserHandler(wallet, registry, ledger, hub, cfg)

	router := gin.New()
	router.POST("/create", tokenHandler.Create)
	router.POST("/simulate", eventHandler.Simulate)
	router.POST("/user/create", userHandler.CreateUser)
	router.POST("/player-action", userHandler.PlayerAction)
	router.POST("/withdraw", userHandler.Withdraw)
	router.GET("/ws", wsHandler.HandleWebSocket)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func dialWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readWS(t *testing.T, conn *websocket.Conn) wsMessage {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg wsMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func postJSON(t *testing.T, server *httptest.Server, path, body string) {
	t.Helper()

	resp, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func createToken(t *testing.T, server *httptest.Server, body string) string {
	t.Helper()

	resp, err := http.Post(server.URL+"/create", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var created struct {
		Token string `json:"token"`
	}
	require.NoError(t, jsonDecode(resp, &created))
	return created.Token
}

func jsonDecode(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestWebSocket_JoinAndReceiveGameEvent(t *testing.T) {
	server := setupServer(t)

	tokenA := createToken(t, server, `{"matchId":"M1"}`)
	tokenB := createToken(t, server, `{"matchId":"M1"}`)

	connA := dialWS(t, server)
	connB := dialWS(t, server)

	require.NoError(t, connA.WriteJSON(wsMessage{Type: "join", Data: tokenA}))
	require.NoError(t, connB.WriteJSON(wsMessage{Type: "join", Data: tokenB}))

	joinedA := readWS(t, connA)
	assert.Equal(t, "joined", joinedA.Type)
	assert.Equal(t, map[string]any{"room": "room_" + tokenA}, joinedA.Data)

	joinedB := readWS(t, connB)
	assert.Equal(t, "joined", joinedB.Type)

	// Both rooms of the match receive the simulated event.
	postJSON(t, server, "/simulate", `{"matchId":"M1","runs":4,"message":"FOUR!"}`)

	for _, conn := range []*websocket.Conn{connA, connB} {
		msg := readWS(t, conn)
		assert.Equal(t, "gameEvent", msg.Type)
		event := msg.Data.(map[string]any)
		assert.Equal(t, "M1", event["matchId"])
		assert.Equal(t, float64(4), event["runs"])
		assert.Equal(t, "FOUR!", event["message"])
		assert.Equal(t, false, event["wicket"])
	}
}

func TestWebSocket_JoinInvalidToken(t *testing.T) {
	server := setupServer(t)

	conn := dialWS(t, server)
	require.NoError(t, conn.WriteJSON(wsMessage{Type: "join", Data: "bogus"}))

	msg := readWS(t, conn)
	assert.Equal(t, "error", msg.Type)
	assert.Equal(t, "Invalid token", msg.Data)
}

func TestWebSocket_BalanceUpdateInRoom(t *testing.T) {
	server := setupServer(t)

	token := createToken(t, server, `{"matchId":"M1"}`)

	conn := dialWS(t, server)
	require.NoError(t, conn.WriteJSON(wsMessage{Type: "join", Data: token}))
	readWS(t, conn) // joined

	resp, err := http.Post(server.URL+"/user/create", "application/json", strings.NewReader(`{"name":"Amit"}`))
	require.NoError(t, err)
	var created struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, jsonDecode(resp, &created))

	postJSON(t, server, "/player-action", `{"token":"`+token+`","userId":"`+created.User.ID+`","action":"play"}`)

	msg := readWS(t, conn)
	assert.Equal(t, "balanceUpdate", msg.Type)
	update := msg.Data.(map[string]any)
	assert.Equal(t, created.User.ID, update["userId"])
	assert.Equal(t, float64(980), update["coins"])
}

func TestWebSocket_WithdrawBroadcastIsGlobal(t *testing.T) {
	server := setupServer(t)

	// This client never joins a room; withdraw notifications still reach
	// it.
	conn := dialWS(t, server)

	resp, err := http.Post(server.URL+"/user/create", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	var created struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, jsonDecode(resp, &created))

	postJSON(t, server, "/withdraw", `{"userId":"`+created.User.ID+`","amount":100}`)

	msg := readWS(t, conn)
	assert.Equal(t, "withdrawRequest", msg.Type)
	request := msg.Data.(map[string]any)
	assert.Equal(t, float64(1), request["id"])
	assert.Equal(t, "PENDING", request["status"])
	assert.Equal(t, float64(100), request["amount"])
}
