package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
	"tutorhub/pkg/response"
)

type DocumentHandler struct {
	documentUseCase *usecase.DocumentUseCase
}

func NewDocumentHandler(documentUseCase *usecase.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: documentUseCase,
	}
}

func (h *DocumentHandler) Upload(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read file", err))
	}
	defer src.Close()

	url, err := h.documentUseCase.Upload(c.Request().Context(), uid, fileHeader.Filename, src, fileHeader.Size, func(fraction float64) {
		logger.Debug("Uploading %s: %.0f%%", fileHeader.Filename, fraction*100)
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"name": fileHeader.Filename,
		"url":  url,
	})
}

func (h *DocumentHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)

	files, err := h.documentUseCase.List(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}

type deleteDocumentRequest struct {
	Path string `json:"path" validate:"required"`
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req deleteDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.documentUseCase.Delete(c.Request().Context(), uid, req.Path); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Document deleted",
	})
}
