package handler

import (
	"github.com/labstack/echo/v4"

	"tutorhub/internal/usecase"
	"tutorhub/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type processPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required"`
}

func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	payment, err := h.paymentUseCase.ProcessPayment(c.Request().Context(), uid, usecase.ProcessPaymentInput{
		Amount: req.Amount,
		Method: req.Method,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, payment)
}

func (h *PaymentHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	payments, err := h.paymentUseCase.History(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payments)
}

func (h *PaymentHandler) ClientHistory(c echo.Context) error {
	payments, err := h.paymentUseCase.History(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payments)
}
