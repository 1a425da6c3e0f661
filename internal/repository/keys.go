package repository

// Storage keys of the four persisted records.
const (
	KeyOrders       = "orders"
	KeyAdmin        = "isAdmin"
	KeyUserEmail    = "userEmail"
	KeyUserProfiles = "userProfiles"
)
