package models

import (
	"time"
)

// DraftStatus tracks where a draft is in its lifecycle. The terminal
// statuses imply removal from the session store.
type DraftStatus string

// Draft lifecycle statuses.
const (
	StatusOpen                 DraftStatus = "open"
	StatusAwaitingConfirmation DraftStatus = "awaiting_confirmation"
	StatusCommitted            DraftStatus = "committed"
	StatusCanceled             DraftStatus = "canceled"
	StatusExpired              DraftStatus = "expired"
)

// MessageRef points at a posted preview message so it can be edited in
// place later.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// CaseFields is the field set shared by both report types.
type CaseFields struct {
	Officer    string
	Suspect    string
	Charges    string
	Location   string
	Evidence   string
	Summary    string
	Attachment string
}

// IncidentFields carries the incident-only fields in their own struct
// so they can never leak into an arrest row.
type IncidentFields struct {
	EventType string
	Victim    string
	Witness   string
}

// Draft is an open, not-yet-committed report tied to one owner and one
// guild. Incident is nil for arrest drafts.
type Draft struct {
	TraceID    string
	OwnerID    string
	GuildID    string
	Type       ReportType
	CaseNumber string
	Sequence   int
	Date       time.Time
	Fields     CaseFields
	Incident   *IncidentFields
	Preview    MessageRef
	ThreadID   string
	Status     DraftStatus
	ExpiresAt  time.Time
}

// Row returns the persisted row in the fixed column order for the
// draft's report type. Optional values fall back to their placeholder
// strings.
func (d *Draft) Row() []interface{} {
	summary := d.Fields.Summary
	if summary == "" {
		summary = NoSummaryPlaceholder
	}
	attachment := d.Fields.Attachment
	if attachment == "" {
		attachment = NoImagePlaceholder
	}
	date := d.Date.Format("01/02/2006")

	if d.Type == IncidentReport {
		inc := d.Incident
		if inc == nil {
			inc = &IncidentFields{}
		}
		return []interface{}{
			d.CaseNumber,
			date,
			inc.EventType,
			d.Fields.Officer,
			inc.Victim,
			inc.Witness,
			d.Fields.Suspect,
			d.Fields.Location,
			d.Fields.Evidence,
			summary,
			attachment,
		}
	}

	return []interface{}{
		d.CaseNumber,
		date,
		d.Fields.Officer,
		d.Fields.Suspect,
		d.Fields.Charges,
		d.Fields.Location,
		d.Fields.Evidence,
		summary,
		attachment,
	}
}
