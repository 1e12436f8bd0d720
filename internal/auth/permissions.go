package auth

// Role predicates for the API surface. Reads on the catalog are open to
// storefront clients; dashboard reporting is open to admins and demo guests;
// mutations require a real account. The route groups themselves live in the
// router.

// CanViewDashboard gates /api/home and /api/analytics.
func CanViewDashboard(role UserRole) bool {
	return role == RoleAdmin || role == RoleGuest
}

// CanWrite gates POST/PATCH/PUT/DELETE outside the auth and profile routes.
func CanWrite(role UserRole) bool {
	return role == RoleAdmin || role == RoleUser
}

// CanManageUsers gates /api/users and /api/query.
func CanManageUsers(role UserRole) bool {
	return role == RoleAdmin
}
