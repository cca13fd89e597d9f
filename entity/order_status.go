package entity

// Order status values. Pending is the initial state.
const (
	StatusPending    = "Pending"
	StatusConfirmed  = "Confirmed"
	StatusCooking    = "Cooking"
	StatusDelivering = "Delivering"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

var OrderStatuses = []string{
	StatusPending, StatusConfirmed, StatusCooking,
	StatusDelivering, StatusCompleted, StatusCancelled,
}

func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}
