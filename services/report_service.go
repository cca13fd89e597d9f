package services

import (
	"github.com/haiki1233/food-delivery-backend/repository"
)

type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// Revenue reports Completed orders grouped per restaurant: order count,
// summed revenue and average order value, highest revenue first.
func (s *ReportService) Revenue() ([]repository.RestaurantRevenue, error) {
	return s.Repo.RevenueByRestaurant()
}
