package mdt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/models"
	"github.com/blueline-rp/mdt-bot/sessions"
	"github.com/blueline-rp/mdt-bot/sheets"
)

// Rejection reasons surfaced to the user. None of them mutate a draft.
var (
	ErrNotOwner     = errors.New("only the report owner can do that")
	ErrNoDraft      = errors.New("no open report draft, start one with /mdt")
	ErrDraftExpired = errors.New("report draft expired, start over with /mdt")
	ErrUnknownType  = errors.New("unknown report type")
)

// Presenter posts and updates report previews. Every call may block on
// network I/O.
type Presenter interface {
	// PostPreview posts the initial preview to d.Preview.ChannelID and
	// returns the full message reference plus the ID of the discussion
	// thread opened on it (empty when threads are unavailable).
	PostPreview(ctx context.Context, d *models.Draft, totals models.PenaltyTotals) (models.MessageRef, string, error)
	// UpdatePreview edits the posted preview in place.
	UpdatePreview(ctx context.Context, d *models.Draft, totals models.PenaltyTotals) error
	// FinalizePreview strips the interactive controls and stamps the
	// preview with a closing note.
	FinalizePreview(ctx context.Context, d *models.Draft, note string) error
}

// Notifier records lifecycle events on a side channel. Best effort:
// implementations swallow and log their own failures and must not
// block the interaction flow.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// Uploader re-hosts an attachment and returns a durable URL.
type Uploader interface {
	Rehost(ctx context.Context, srcURL, name string) (string, error)
}

// PenaltySource yields the current penalty reference snapshot.
type PenaltySource interface {
	Index() *models.PenaltyIndex
}

// Action identifies who is acting on whose draft. ActorID comes from
// the live interaction; OwnerID from the control being used.
type Action struct {
	ActorID string
	OwnerID string
	GuildID string
}

// CreateInput carries everything needed to open a draft.
type CreateInput struct {
	OwnerID   string
	GuildID   string
	ChannelID string
	Type      models.ReportType
	Fields    models.CaseFields
	Incident  *models.IncidentFields
}

// FieldEdits carries replacement values from the edit form. Nil
// pointers leave the current value unchanged.
type FieldEdits struct {
	Officer  *string
	Suspect  *string
	Charges  *string
	Location *string
	Evidence *string
	Summary  *string

	// Incident drafts only.
	EventType *string
	Victim    *string
	Witness   *string
}

// Selection is a quick-pick payload from a select menu.
type Selection struct {
	Charges   []string
	Location  string
	EventType string
}

// CommitResult reports a successful commit.
type CommitResult struct {
	Draft    *models.Draft
	RowIndex int64
	Link     string
}

// Lifecycle orchestrates draft state transitions, invoking the
// allocator and aggregator and handing off to the persistence,
// presentation and audit collaborators.
type Lifecycle struct {
	Store     sessions.Store
	CaseDB    sheets.CaseLogDatabase
	Alloc     Allocator
	Penalties PenaltySource
	Presenter Presenter
	Audit     Notifier
	Uploader  Uploader
	TTL       time.Duration

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// Create opens a new draft for the owner, implicitly discarding any
// stale prior one for the same key, allocates a provisional case
// number, and posts the preview.
func (l *Lifecycle) Create(ctx context.Context, in CreateInput) (*models.Draft, models.PenaltyTotals, error) {
	if !in.Type.Valid() {
		return nil, models.PenaltyTotals{}, ErrUnknownType
	}
	now := l.clock()

	seq, err := l.Alloc.NextSequence(ctx, in.Type, now)
	if err != nil {
		return nil, models.PenaltyTotals{}, fmt.Errorf("allocate case number: %w", err)
	}

	d := &models.Draft{
		TraceID:    uuid.NewString(),
		OwnerID:    in.OwnerID,
		GuildID:    in.GuildID,
		Type:       in.Type,
		Sequence:   seq,
		CaseNumber: CaseNumber(in.Type, now, seq),
		Date:       now,
		Fields:     in.Fields,
		Preview:    models.MessageRef{ChannelID: in.ChannelID},
		Status:     models.StatusOpen,
		ExpiresAt:  now.Add(l.ttl()),
	}
	if in.Type == models.IncidentReport {
		d.Incident = in.Incident
		if d.Incident == nil {
			d.Incident = &models.IncidentFields{}
		}
	}

	totals := l.totalsFor(d)
	ref, threadID, err := l.Presenter.PostPreview(ctx, d, totals)
	if err != nil {
		zap.S().Errorw("failed to post report preview",
			"trace", d.TraceID,
			"case", d.CaseNumber,
			"error", err,
		)
		return nil, totals, fmt.Errorf("post preview: %w", err)
	}
	d.Preview = ref
	d.ThreadID = threadID

	l.Store.Put(sessions.Key{OwnerID: in.OwnerID, GuildID: in.GuildID}, d)
	zap.S().Infow("report draft created",
		"trace", d.TraceID,
		"case", d.CaseNumber,
		"type", d.Type,
		"owner", d.OwnerID,
	)
	return d, totals, nil
}

// Peek returns the actor's draft without mutating it, applying the
// same authorization and expiry rules as the mutating operations.
func (l *Lifecycle) Peek(a Action) (*models.Draft, error) {
	return l.fetch(a)
}

// SubmitFieldEdits replaces the edited fields, recomputes totals, and
// refreshes the preview in place.
func (l *Lifecycle) SubmitFieldEdits(ctx context.Context, a Action, edits FieldEdits) (*models.Draft, models.PenaltyTotals, error) {
	d, err := l.fetch(a)
	if err != nil {
		return nil, models.PenaltyTotals{}, err
	}

	applyEdit(&d.Fields.Officer, edits.Officer)
	applyEdit(&d.Fields.Suspect, edits.Suspect)
	applyEdit(&d.Fields.Charges, edits.Charges)
	applyEdit(&d.Fields.Location, edits.Location)
	applyEdit(&d.Fields.Evidence, edits.Evidence)
	applyEdit(&d.Fields.Summary, edits.Summary)
	if d.Incident != nil {
		applyEdit(&d.Incident.EventType, edits.EventType)
		applyEdit(&d.Incident.Victim, edits.Victim)
		applyEdit(&d.Incident.Witness, edits.Witness)
	}

	totals := l.totalsFor(d)
	l.refreshPreview(ctx, d, totals)
	return d, totals, nil
}

// ApplySelection merges a quick-pick selection into the draft:
// selected charges join the charge list, location and event type
// replace their fields outright.
func (l *Lifecycle) ApplySelection(ctx context.Context, a Action, sel Selection) (*models.Draft, models.PenaltyTotals, error) {
	d, err := l.fetch(a)
	if err != nil {
		return nil, models.PenaltyTotals{}, err
	}

	if len(sel.Charges) > 0 {
		d.Fields.Charges = mergeCharges(d.Fields.Charges, sel.Charges)
	}
	if sel.Location != "" {
		d.Fields.Location = sel.Location
	}
	if sel.EventType != "" && d.Incident != nil {
		d.Incident.EventType = sel.EventType
	}

	totals := l.totalsFor(d)
	l.refreshPreview(ctx, d, totals)
	return d, totals, nil
}

// Refresh recomputes totals and pushes a fresh preview without
// changing any field.
func (l *Lifecycle) Refresh(ctx context.Context, a Action) (*models.Draft, models.PenaltyTotals, error) {
	d, err := l.fetch(a)
	if err != nil {
		return nil, models.PenaltyTotals{}, err
	}
	totals := l.totalsFor(d)
	l.refreshPreview(ctx, d, totals)
	return d, totals, nil
}

// Confirm commits the draft: the case number is recomputed so a report
// committed since creation cannot collide, the row is appended in the
// fixed column order for the report type, and the draft is removed. On
// persistence failure the draft is retained with status Open so the
// owner can retry.
func (l *Lifecycle) Confirm(ctx context.Context, a Action) (*CommitResult, error) {
	d, err := l.fetch(a)
	if err != nil {
		return nil, err
	}
	key := sessions.Key{OwnerID: a.OwnerID, GuildID: a.GuildID}
	d.Status = models.StatusAwaitingConfirmation

	seq, err := l.Alloc.NextSequence(ctx, d.Type, d.Date)
	if err != nil {
		d.Status = models.StatusOpen
		zap.S().Errorw("failed to reallocate case number",
			"trace", d.TraceID,
			"case", d.CaseNumber,
			"error", err,
		)
		l.audit(ctx, fmt.Sprintf("Failed to allocate a case number for %s by <@%s>: %v", d.Type, d.OwnerID, err))
		return nil, fmt.Errorf("allocate case number: %w", err)
	}
	d.Sequence = seq
	d.CaseNumber = CaseNumber(d.Type, d.Date, seq)

	if l.Uploader != nil && d.Fields.Attachment != "" {
		hosted, err := l.Uploader.Rehost(ctx, d.Fields.Attachment, d.CaseNumber)
		if err != nil {
			zap.S().Warnw("failed to re-host attachment, keeping original link",
				"trace", d.TraceID,
				"case", d.CaseNumber,
				"error", err,
			)
		} else {
			d.Fields.Attachment = hosted
		}
	}

	res, err := l.CaseDB.AppendReport(ctx, d.Type, d.Row())
	if err != nil {
		// Keep the draft so the owner can press Confirm again; the
		// allocator re-runs on retry.
		d.Status = models.StatusOpen
		zap.S().Errorw("failed to persist report",
			"trace", d.TraceID,
			"case", d.CaseNumber,
			"error", err,
		)
		l.audit(ctx, fmt.Sprintf("Report %s by <@%s> was NOT logged: %v", d.CaseNumber, d.OwnerID, err))
		return nil, fmt.Errorf("append report row: %w", err)
	}

	d.Status = models.StatusCommitted
	l.Store.Delete(key)
	l.finalize(ctx, d, "Report logged successfully.")
	l.audit(ctx, fmt.Sprintf("%s %s committed by <@%s> (row %d)", d.Type, d.CaseNumber, d.OwnerID, res.RowIndex))
	zap.S().Infow("report committed",
		"trace", d.TraceID,
		"case", d.CaseNumber,
		"row", res.RowIndex,
	)
	return &CommitResult{Draft: d, RowIndex: res.RowIndex, Link: res.Link}, nil
}

// Cancel discards the draft without persisting anything.
func (l *Lifecycle) Cancel(ctx context.Context, a Action) (*models.Draft, error) {
	d, err := l.fetch(a)
	if err != nil {
		return nil, err
	}
	d.Status = models.StatusCanceled
	l.Store.Delete(sessions.Key{OwnerID: a.OwnerID, GuildID: a.GuildID})
	l.finalize(ctx, d, "Report entry canceled.")
	l.audit(ctx, fmt.Sprintf("%s %s canceled by <@%s>", d.Type, d.CaseNumber, d.OwnerID))
	zap.S().Infow("report draft canceled",
		"trace", d.TraceID,
		"case", d.CaseNumber,
	)
	return d, nil
}

// fetch applies the authorization check first, so a foreign actor can
// never observe or mutate another owner's draft, then the lazy expiry
// check.
func (l *Lifecycle) fetch(a Action) (*models.Draft, error) {
	if a.ActorID != a.OwnerID {
		return nil, ErrNotOwner
	}
	d, expired := l.Store.Get(sessions.Key{OwnerID: a.OwnerID, GuildID: a.GuildID})
	if expired {
		return nil, ErrDraftExpired
	}
	if d == nil {
		return nil, ErrNoDraft
	}
	return d, nil
}

// totalsFor aggregates penalties for arrest drafts; incident drafts
// carry no charge pricing.
func (l *Lifecycle) totalsFor(d *models.Draft) models.PenaltyTotals {
	if d.Type != models.ArrestLog {
		return models.PenaltyTotals{}
	}
	return Aggregate(l.Penalties.Index(), d.Fields.Charges)
}

// refreshPreview pushes an in-place preview update. Failures are
// logged and do not roll back the mutation already applied.
func (l *Lifecycle) refreshPreview(ctx context.Context, d *models.Draft, totals models.PenaltyTotals) {
	if err := l.Presenter.UpdatePreview(ctx, d, totals); err != nil {
		zap.S().Warnw("failed to refresh report preview",
			"trace", d.TraceID,
			"case", d.CaseNumber,
			"error", err,
		)
	}
}

func (l *Lifecycle) finalize(ctx context.Context, d *models.Draft, note string) {
	if err := l.Presenter.FinalizePreview(ctx, d, note); err != nil {
		zap.S().Warnw("failed to finalize report preview",
			"trace", d.TraceID,
			"case", d.CaseNumber,
			"error", err,
		)
	}
}

func (l *Lifecycle) audit(ctx context.Context, text string) {
	if l.Audit != nil {
		l.Audit.Notify(ctx, text)
	}
}

func (l *Lifecycle) clock() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Lifecycle) ttl() time.Duration {
	if l.TTL > 0 {
		return l.TTL
	}
	return 15 * time.Minute
}

func applyEdit(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// mergeCharges appends the picked tokens that are not already present
// in the charge list, comparing case-insensitively.
func mergeCharges(existing string, picked []string) string {
	tokens := make([]string, 0, 8)
	seen := make(map[string]bool)
	for _, raw := range strings.Split(existing, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		tokens = append(tokens, token)
	}
	for _, raw := range picked {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, ", ")
}
