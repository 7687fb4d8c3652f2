package handler

import (
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/middleware"
	ws "tutorhub/internal/infrastructure/websocket"
	"tutorhub/internal/usecase"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	notifier       *ws.Notifier
	authMiddleware *middleware.AuthMiddleware
	authUseCase    *usecase.AuthUseCase
	chatUseCase    *usecase.ChatUseCase
	inboxUseCase   *usecase.InboxUseCase
	sessions       *usecase.SessionRegistry
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	notifier *ws.Notifier,
	authMiddleware *middleware.AuthMiddleware,
	authUseCase *usecase.AuthUseCase,
	chatUseCase *usecase.ChatUseCase,
	inboxUseCase *usecase.InboxUseCase,
	sessions *usecase.SessionRegistry,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		notifier:       notifier,
		authMiddleware: authMiddleware,
		authUseCase:    authUseCase,
		chatUseCase:    chatUseCase,
		inboxUseCase:   inboxUseCase,
		sessions:       sessions,
	}
}

// portalCommand is what portal clients send over the socket.
type portalCommand struct {
	Action   string `json:"action"`
	ClientID string `json:"client_id,omitempty"`
	Text     string `json:"text,omitempty"`
}

const (
	actionOpenConversation  = "open_conversation"
	actionCloseConversation = "close_conversation"
	actionSendMessage       = "send_message"
)

// HandlePortal upgrades the connection, binds a chat session and inbox watch
// to it, and serves commands until the viewer disconnects. The token travels
// as a query parameter because browsers cannot set headers on WebSocket
// handshakes.
func (h *WebSocketHandler) HandlePortal(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication required", nil)
	}

	ctx := c.Request().Context()

	uid, err := h.authMiddleware.GetUIDFromToken(ctx, token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	viewer, err := h.authUseCase.GetUserByID(ctx, uid)
	if err != nil {
		return errors.Unauthorized("User profile not found. Please contact support.", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: viewer.ID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client
	go client.WritePump()

	session := h.chatUseCase.NewSession(viewer)
	h.sessions.Put(viewer.ID, session)

	inboxCancel, err := h.inboxUseCase.Watch(ctx, viewer)
	if err != nil {
		logger.Error("Failed to start inbox watch for %s: %v", viewer.ID, err)
		h.notifier.ErrorNotice(viewer.ID, "Failed to load conversations")
	}

	defer func() {
		if inboxCancel != nil {
			inboxCancel()
		}
		h.sessions.Remove(viewer.ID, session)
		h.wsManager.Unregister <- client
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseNormalClosure) {
				logger.Warn("Portal connection error for %s: %v", viewer.ID, err)
			}
			return nil
		}

		var cmd portalCommand
		if err := json.Unmarshal(payload, &cmd); err != nil {
			h.notifier.ErrorNotice(viewer.ID, "Invalid command")
			continue
		}

		h.dispatch(c, session, viewer.ID, cmd)
	}
}

func (h *WebSocketHandler) dispatch(c echo.Context, session *usecase.ChatSession, viewerID string, cmd portalCommand) {
	ctx := c.Request().Context()

	switch cmd.Action {
	case actionOpenConversation:
		if err := session.OpenConversation(ctx, cmd.ClientID); err != nil {
			h.notifier.ErrorNotice(viewerID, errorMessage(err))
		}

	case actionCloseConversation:
		session.CloseConversation()

	case actionSendMessage:
		if err := session.SendMessage(ctx, usecase.SendMessageInput{Text: cmd.Text}); err != nil {
			h.notifier.ErrorNotice(viewerID, errorMessage(err))
		}

	default:
		h.notifier.ErrorNotice(viewerID, "Unknown action")
	}
}

func errorMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return "An error occurred. Please try again."
}
