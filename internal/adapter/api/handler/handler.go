package handler

import (
	"tutorhub/internal/usecase"
)

var (
	authHandler      *AuthHandler
	userHandler      *UserHandler
	clientHandler    *ClientHandler
	projectHandler   *ProjectHandler
	eventHandler     *EventHandler
	paymentHandler   *PaymentHandler
	documentHandler  *DocumentHandler
	dashboardHandler *DashboardHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	projectUseCase *usecase.ProjectUseCase,
	eventUseCase *usecase.EventUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	documentUseCase *usecase.DocumentUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(authUseCase, userUseCase)
	clientHandler = NewClientHandler(userUseCase, projectUseCase)
	projectHandler = NewProjectHandler(projectUseCase)
	eventHandler = NewEventHandler(eventUseCase, authUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	documentHandler = NewDocumentHandler(documentUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetClientHandler() *ClientHandler {
	return clientHandler
}

func GetProjectHandler() *ProjectHandler {
	return projectHandler
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetDocumentHandler() *DocumentHandler {
	return documentHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}
