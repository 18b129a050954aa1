package domain

import "time"

// Zone is an organisational unit that issues receipts. It is managed by
// admins as a record and signs in as an actor with its ZoneID.
type Zone struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	ZoneName   string     `json:"zonename"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Note       string     `json:"note,omitempty"`
	ZoneID     string     `json:"zoneId"`
	Password   string     `json:"-"`
	SecretHash string     `json:"-"`
	Status     ZoneStatus `json:"status"`
	Role       Role       `json:"role"`
	Image      string     `json:"image,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ZoneSummary is the subset of zone fields joined into admin receipt views.
type ZoneSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ZoneName string `json:"zonename"`
	Phone    string `json:"phone"`
}
