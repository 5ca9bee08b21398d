package domain

import "time"

// TicketStatus enumerates lifecycle states for maintenance tickets.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusAssigned   TicketStatus = "assigned"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
	TicketStatusCancelled  TicketStatus = "cancelled"
)

// Terminal reports whether the status exempts a ticket from SLA tracking.
func (s TicketStatus) Terminal() bool {
	return s == TicketStatusClosed || s == TicketStatusCancelled
}

// TicketType enumerates work categories relevant to guarantee selection.
// Other values may exist upstream; the classifier treats them as unknown.
type TicketType string

const (
	TicketTypeInstallation TicketType = "installation"
	TicketTypeMaterial     TicketType = "material"
)

// Ticket is the classification engine's view of a maintenance ticket.
// The engine reads the attribution fields and writes back the guarantee
// fields; everything else is owned by the upstream ticket CRUD service.
type Ticket struct {
	ID         string
	ProjectID  *string
	TicketType *TicketType
	FaultCause *FaultCause
	Status     TicketStatus
	CreatedAt  *time.Time
	SLADueAt   *time.Time
	ClosedAt   *time.Time

	GuaranteeStatus       *GuaranteeStatus
	GuaranteeExpiresAt    *time.Time
	IsBillable            *bool
	BillingClassification *BillingClassification

	UpdatedAt time.Time
}
