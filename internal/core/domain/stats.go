package domain

// Stats is a point-in-time snapshot over the user and order collections.
// TotalRevenue sums the price of orders that were completed at read time.
type Stats struct {
	TotalUsers      int64 `json:"totalUsers"`
	TotalOrders     int64 `json:"totalOrders"`
	PendingOrders   int64 `json:"pendingOrders"`
	CompletedOrders int64 `json:"completedOrders"`
	TotalRevenue    int64 `json:"totalRevenue"`
}
