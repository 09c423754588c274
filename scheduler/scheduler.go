package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/models"
	"github.com/blueline-rp/mdt-bot/sheets"
)

// Scheduler handles periodic background jobs: keeping the penalty
// reference fresh and posting the daily activity digest.
type Scheduler struct {
	cron   *cron.Cron
	Ref    *mdt.Reference
	CaseDB sheets.CaseLogDatabase
	Audit  mdt.Notifier
}

// NewScheduler creates a new scheduler instance
func NewScheduler(ref *mdt.Reference, caseDB sheets.CaseLogDatabase, audit mdt.Notifier) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		Ref:    ref,
		CaseDB: caseDB,
		Audit:  audit,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Reload the penalty reference hourly so edits to the sheet show up
	// without a restart
	_, err := s.cron.AddFunc("0 * * * *", s.refreshPenaltyReference)
	if err != nil {
		zap.S().Errorw("failed to register penalty refresh job", "error", err)
	}

	// Post yesterday's report counts daily at 3 AM UTC
	_, err = s.cron.AddFunc("0 3 * * *", s.postDailyDigest)
	if err != nil {
		zap.S().Errorw("failed to register daily digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("MDT scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("MDT scheduler stopped")
}

func (s *Scheduler) refreshPenaltyReference() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.Ref.Refresh(ctx); err != nil {
		zap.S().Errorw("failed to refresh penalty reference", "error", err)
	}
}

// postDailyDigest counts the case numbers dated yesterday for each
// report type and posts the totals to the audit channel.
func (s *Scheduler) postDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	day := yesterday.Format("20060102")

	var parts []string
	for _, t := range []models.ReportType{models.ArrestLog, models.IncidentReport} {
		numbers, err := s.CaseDB.CaseNumbers(ctx, t)
		if err != nil {
			zap.S().Errorw("failed to read case numbers for digest",
				"type", t,
				"error", err,
			)
			return
		}
		prefix := fmt.Sprintf("%s-%s-", t.Prefix(), day)
		count := 0
		for _, n := range numbers {
			if strings.HasPrefix(n, prefix) {
				count++
			}
		}
		parts = append(parts, fmt.Sprintf("%s: %d", t, count))
	}

	s.Audit.Notify(ctx, fmt.Sprintf("Daily digest for %s - %s", yesterday.Format("01/02/2006"), strings.Join(parts, ", ")))
	zap.S().Infow("daily digest posted", "day", day)
}
