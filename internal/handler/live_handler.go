package handler

import (
	"log"
	"net/http"
	"sync"

	"UserRatingApp/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	liveMu      sync.Mutex
	liveClients = make(map[string]*websocket.Conn)
)

// HandleLiveFeed godoc
// @Summary      평가 실시간 피드 WebSocket 연결
// @Description  새 평가가 제출될 때마다 해당 Rating을 JSON으로 푸시합니다.
// @Description  <br> **참고: 이것은 표준 HTTP API가 아닙니다.** 클라이언트는 `ws://` 스킴으로 연결해야 합니다.
// @Tags         WebSocket
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      500 {object} handler.ErrorResponse "WebSocket 업그레이드 실패"
// @Router       /ws/ratings [get]
func HandleLiveFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleLiveFeed(): failed to upgrade to WebSocket: %v", err)
		return
	}

	clientID := uuid.New().String()
	liveMu.Lock()
	liveClients[clientID] = conn
	liveMu.Unlock()
	log.Printf("HandleLiveFeed(): dashboard client connected: %s", clientID)

	// 클라이언트가 보내는 메시지는 사용하지 않음, 연결 종료 감지용 읽기 루프
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	liveMu.Lock()
	delete(liveClients, clientID)
	liveMu.Unlock()
	conn.Close()
	log.Printf("HandleLiveFeed(): dashboard client disconnected: %s", clientID)
}

// 새로 저장된 평가를 연결된 모든 대시보드에 전송
func BroadcastRating(r models.Rating) {
	liveMu.Lock()
	defer liveMu.Unlock()

	for clientID, conn := range liveClients {
		if err := conn.WriteJSON(r); err != nil {
			log.Printf("BroadcastRating(): dropping client %s: %v", clientID, err)
			conn.Close()
			delete(liveClients, clientID)
		}
	}
}
