package auth

// Staff is a dashboard account: the owner plus any coordinators who
// manage bookings and the dish catalog.
type Staff struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string // ADMIN | COORDINATOR
}
