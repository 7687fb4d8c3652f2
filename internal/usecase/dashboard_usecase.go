package usecase

import (
	"context"

	"tutorhub/internal/domain/entity"
	"tutorhub/internal/domain/repository"
	"tutorhub/pkg/errors"
	"tutorhub/pkg/logger"
)

const recentActivityLimit = 10

type DashboardUseCase struct {
	userRepo     repository.UserRepository
	projectRepo  repository.ProjectRepository
	activityRepo repository.ActivityRepository
	paymentUC    *PaymentUseCase
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	activityRepo repository.ActivityRepository,
	paymentUC *PaymentUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:     userRepo,
		projectRepo:  projectRepo,
		activityRepo: activityRepo,
		paymentUC:    paymentUC,
	}
}

type AdminSummary struct {
	ActiveClients     int     `json:"active_clients"`
	PendingReviews    int     `json:"pending_reviews"`
	CompletedProjects int     `json:"completed_projects"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// AdminSummary builds the admin dashboard counters. Each stat degrades to
// zero on its own read failure so one bad query does not blank the page.
func (uc *DashboardUseCase) AdminSummary(ctx context.Context) *AdminSummary {
	summary := &AdminSummary{}

	clients, err := uc.userRepo.ListClients(ctx)
	if err != nil {
		logger.Warn("Failed to count clients: %v", err)
	} else {
		summary.ActiveClients = len(clients)
	}

	projects, err := uc.projectRepo.ListAll(ctx)
	if err != nil {
		logger.Warn("Failed to load projects: %v", err)
	} else {
		for _, p := range projects {
			switch p.Status {
			case entity.ProjectStatusUnderReview:
				summary.PendingReviews++
			case entity.ProjectStatusCompleted:
				summary.CompletedProjects++
			}
		}
	}

	revenue, err := uc.paymentUC.MonthlyRevenue(ctx)
	if err != nil {
		logger.Warn("Failed to compute monthly revenue: %v", err)
	} else {
		summary.MonthlyRevenue = revenue
	}

	return summary
}

type ClientSummary struct {
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	Balance           float64 `json:"balance"`
	PendingCharges    float64 `json:"pending_charges"`
	TotalSpent        float64 `json:"total_spent"`
	NotificationCount int     `json:"notification_count"`
}

func (uc *DashboardUseCase) ClientSummary(ctx context.Context, uid string) (*ClientSummary, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &ClientSummary{
		ActiveProjects:    len(user.ActiveProjects),
		CompletedProjects: len(user.CompletedProjects),
		Balance:           user.Balance,
		PendingCharges:    user.PendingCharges,
		TotalSpent:        user.TotalSpent,
		NotificationCount: user.NotificationCount,
	}, nil
}

func (uc *DashboardUseCase) RecentActivity(ctx context.Context) ([]*entity.Activity, error) {
	return uc.activityRepo.ListRecent(ctx, recentActivityLimit)
}

func (uc *DashboardUseCase) UserActivity(ctx context.Context, uid string) ([]*entity.Activity, error) {
	return uc.activityRepo.ListByUser(ctx, uid)
}
