package domain

import "time"

// Role tags the kind of actor a credential belongs to.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleZone  Role = "zone"
	RoleUser  Role = "user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleZone, RoleUser:
		return true
	}
	return false
}

// ZoneStatus is the lifecycle state of a zone account.
type ZoneStatus string

const (
	ZoneStatusPending  ZoneStatus = "pending"
	ZoneStatusAccepted ZoneStatus = "accepted"
	ZoneStatusRejected ZoneStatus = "rejected"
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusInactive ZoneStatus = "inactive"
)

// CanSignIn reports whether a zone in this state may authenticate.
func (s ZoneStatus) CanSignIn() bool {
	return s == ZoneStatusActive || s == ZoneStatusAccepted
}

// Actor models an authenticated identity in the system.
//
// Login is the identifier the actor signs in with: the email address for
// admins and users, the zoneId for zones.
type Actor struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Login      string     `json:"-"`
	SecretHash string     `json:"-"`
	Role       Role       `json:"role"`
	Status     ZoneStatus `json:"status,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// User is an end-user actor as listed to admins.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Claims is the identity carried by a verified token.
type Claims struct {
	ActorID   string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
