package chat

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// WebSocketUpgrade authenticates the connection from the token query
// parameter before allowing the upgrade.
func (h *Handler) WebSocketUpgrade(c *fiber.Ctx) error {
	userID, err := h.userIDFromToken(c.Query("token"))
	if err != nil {
		log.Println("WebSocket auth failed:", err)
		return c.Status(fiber.StatusUnauthorized).SendString("Invalid or missing token")
	}
	c.Locals("user_id", userID)

	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebSocketChat answers each received text frame with the assistant's reply
// on the same socket. No transcript is kept server-side.
func (h *Handler) WebSocketChat(conn *websocket.Conn) {
	defer conn.Close()

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := h.reply(string(msg))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("Error sending chat reply to %v: %v", conn.RemoteAddr(), err)
			break
		}
	}
}

func (h *Handler) userIDFromToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", fmt.Errorf("token query parameter missing")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(h.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid token: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID missing in token")
	}

	return userID, nil
}
