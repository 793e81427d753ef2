package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// User usuario del sistema (cajero o administrador).
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
