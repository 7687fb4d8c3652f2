package handler

import (
	"github.com/labstack/echo/v4"

	ws "tutorhub/internal/infrastructure/websocket"
	"tutorhub/internal/usecase"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/response"
)

type ChatHandler struct {
	chatUseCase  *usecase.ChatUseCase
	inboxUseCase *usecase.InboxUseCase
	authUseCase  *usecase.AuthUseCase
	sessions     *usecase.SessionRegistry
	notifier     *ws.Notifier
}

func NewChatHandler(
	chatUseCase *usecase.ChatUseCase,
	inboxUseCase *usecase.InboxUseCase,
	authUseCase *usecase.AuthUseCase,
	sessions *usecase.SessionRegistry,
	notifier *ws.Notifier,
) *ChatHandler {
	return &ChatHandler{
		chatUseCase:  chatUseCase,
		inboxUseCase: inboxUseCase,
		authUseCase:  authUseCase,
		sessions:     sessions,
		notifier:     notifier,
	}
}

// ListConversations folds the viewer's inbox once, without a live stream.
func (h *ChatHandler) ListConversations(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	conversations := h.inboxUseCase.List(c.Request().Context(), viewer)

	return response.Success(c, map[string]interface{}{
		"conversations": conversations,
		"unread_count":  usecase.UnreadCount(conversations),
	})
}

// ListMessages reads one conversation's history. Admins pass client_id;
// clients always get their own thread.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	key := viewer.ID
	if viewer.IsAdmin() {
		key = c.QueryParam("client_id")
		if key == "" {
			return response.Error(c, errors.BadRequest("Please select a client first", nil))
		}
	}

	messages, err := h.chatUseCase.ListMessages(c.Request().Context(), key)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

// SendAttachments uploads the posted files into the viewer's open
// conversation, one at a time. Requires a live session with a conversation
// selected.
func (h *ChatHandler) SendAttachments(c echo.Context) error {
	uid := c.Get("uid").(string)

	session, ok := h.sessions.Get(uid)
	if !ok {
		return response.Error(c, errors.BadRequest("Please select a client first", nil))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("No files provided", err))
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return response.Error(c, errors.BadRequest("No files provided", nil))
	}

	var files []usecase.AttachmentInput
	var opened []interface{ Close() error }
	for _, fh := range fileHeaders {
		src, err := fh.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Failed to read "+fh.Filename, err))
		}
		opened = append(opened, src)
		files = append(files, usecase.AttachmentInput{
			FileName: fh.Filename,
			Content:  src,
			Size:     fh.Size,
		})
	}
	defer func() {
		for _, src := range opened {
			src.Close()
		}
	}()

	errs := session.SendAttachments(c.Request().Context(), files, func(fileName string, fraction float64) {
		h.notifier.UploadProgress(uid, fileName, fraction)
	})

	sent := len(files) - len(errs)
	result := map[string]interface{}{
		"sent":   sent,
		"failed": len(errs),
	}
	if len(errs) > 0 {
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			messages = append(messages, e.Error())
		}
		result["errors"] = messages
	}

	if sent == 0 && len(errs) > 0 {
		return response.Error(c, errs[0])
	}

	return response.Success(c, result)
}

// MarkRead re-runs the read tracker for the viewer's open conversation.
func (h *ChatHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	viewer, err := h.authUseCase.GetUserByID(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	key := viewer.ID
	if viewer.IsAdmin() {
		key = c.QueryParam("client_id")
		if key == "" {
			return response.Error(c, errors.BadRequest("Please select a client first", nil))
		}
	}

	if err := h.chatUseCase.MarkConversationRead(c.Request().Context(), key, viewer); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Conversation marked as read",
	})
}
