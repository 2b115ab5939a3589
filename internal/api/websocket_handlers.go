package api

import (
	"log"
	"net/http"

	"serwer-pulpitu/internal/auth"
	"serwer-pulpitu/internal/websocket"
)

// @Summary      Subscribe to desktop events
// @Description  Upgrades to a websocket that receives {"event_type": ..., "payload": ...} messages for the token's desktop.
// @Tags         events
// @Param        token  query     string  true  "Access token"
// @Success      101    {null}    nil "Switching Protocols"
// @Failure      401    {string}  string "Unauthorized"
// @Router       /ws [get]
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		log.Println("WS connection attempt without token")
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}

	claims, err := auth.VerifyJWT(tokenString, s.config.JWT.Secret)
	if err != nil {
		log.Printf("WS connection attempt with invalid token: %v", err)
		http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
		return
	}

	active, err := s.sessionActive(r.Context(), claims)
	if err != nil || !active {
		http.Error(w, "Session has been terminated", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	client := websocket.NewClient(s.wsHub, conn, claims.DesktopID)
	s.wsHub.Register <- client

	go client.ReadPump()
	go client.WritePump()
}
