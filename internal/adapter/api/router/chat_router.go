package router

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/adapter/api/handler"
	"tutorhub/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, chatHandler *handler.ChatHandler, authMiddleware *middleware.AuthMiddleware) {
	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.GET("/conversations", chatHandler.ListConversations)
	chat.GET("/messages", chatHandler.ListMessages)
	chat.POST("/attachments", chatHandler.SendAttachments)
	chat.POST("/read", chatHandler.MarkRead)
}
