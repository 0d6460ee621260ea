package admin

// ChangeStatusRequest moves a place between moderation states
type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeRoleRequest promotes or demotes a user (super_admin only)
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin super_admin"`
}

type UserListFilter struct {
	Role  string
	Query string
}

type StatisticsResponse struct {
	TotalUsers       int `json:"total_users"`
	TotalPlaces      int `json:"total_places"`
	ActivePlaces     int `json:"active_places"`
	PendingPlaces    int `json:"pending_places"`
	TodaySubmissions int `json:"today_submissions"`
	OpenTickets      int `json:"open_tickets"`
}
