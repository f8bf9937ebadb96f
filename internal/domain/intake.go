package domain

import "time"

// RequestStatus is the lifecycle status of an intake request row
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestResolved RequestStatus = "resolved"
)

// ContactMessage represents a message sent through the contact form
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Service   string // service the visitor is interested in, free text
	Message   string
	CreatedAt time.Time
}

// PasswordResetRequest represents a client's request for a manual password
// reset, handled by the studio out of band
type PasswordResetRequest struct {
	ID          int64
	Email       string
	Status      RequestStatus
	RequestedAt time.Time
}

// AdminAccessRequest represents a signup that asked for the admin role.
// The account stays a client until the request is granted out of band.
type AdminAccessRequest struct {
	ID        int64
	UserID    string
	Email     string
	Status    RequestStatus
	CreatedAt time.Time
}
