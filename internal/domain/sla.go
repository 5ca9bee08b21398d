package domain

// SLAHealth describes how much SLA headroom a ticket has left.
type SLAHealth string

const (
	SLAHealthOK       SLAHealth = "ok"
	SLAHealthWarning  SLAHealth = "warning"
	SLAHealthBreached SLAHealth = "breached"
	SLAHealthNoSLA    SLAHealth = "no_sla"
)

// SLACompliance aggregates met/breached counts into a compliance rate.
type SLACompliance struct {
	Total      int
	Met        int
	Breached   int
	Rate       float64
	Percentage string
}

// OverdueCheck is the result of an overdue evaluation for one ticket.
type OverdueCheck struct {
	IsOverdue    bool
	HoursOverdue float64
}

// SLATimeRemaining reports time left before the SLA deadline.
type SLATimeRemaining struct {
	HoursRemaining float64
	IsBreached     bool
	Status         SLAHealth
}

// ResolutionTime reports how long a ticket took to resolve. Hours and
// Days are nil while the ticket is still open.
type ResolutionTime struct {
	Hours      *float64
	Days       *float64
	IsResolved bool
}
