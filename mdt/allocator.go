package mdt

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/blueline-rp/mdt-bot/models"
	"github.com/blueline-rp/mdt-bot/sheets"
)

// firstSequence is where a fresh day bucket starts.
const firstSequence = 1000

// Allocator computes the next case sequence number for a report type
// on a given date.
type Allocator interface {
	NextSequence(ctx context.Context, t models.ReportType, date time.Time) (int, error)
}

// scanAllocator derives the next sequence by scanning the persisted
// case-number column. Two confirmations racing between the scan and
// the append can compute the same sequence; that window is accepted.
type scanAllocator struct {
	db sheets.CaseLogDatabase
}

// NewAllocator returns the scan-then-append allocator.
func NewAllocator(db sheets.CaseLogDatabase) Allocator {
	return &scanAllocator{db: db}
}

func (a *scanAllocator) NextSequence(ctx context.Context, t models.ReportType, date time.Time) (int, error) {
	numbers, err := a.db.CaseNumbers(ctx, t)
	if err != nil {
		return 0, err
	}
	prefix := casePrefix(t, date)
	max := firstSequence - 1
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(n, prefix))
		if err != nil {
			// Hand-entered rows can carry junk suffixes.
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return max + 1, nil
}

// CaseNumber formats a case number as <PREFIX>-<YYYYMMDD>-<SEQ>.
func CaseNumber(t models.ReportType, date time.Time, seq int) string {
	return fmt.Sprintf("%s%d", casePrefix(t, date), seq)
}

func casePrefix(t models.ReportType, date time.Time) string {
	return fmt.Sprintf("%s-%s-", t.Prefix(), date.Format("20060102"))
}
