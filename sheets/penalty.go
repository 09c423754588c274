package sheets

import (
	"context"
	"strconv"
	"strings"

	"github.com/blueline-rp/mdt-bot/models"
)

const penaltyRange = "Penalty Codes!A2:E"

// PenaltyDatabase loads the penalty reference table.
type PenaltyDatabase interface {
	Load(ctx context.Context) (*models.PenaltyIndex, error)
}

type penaltyDatabase struct {
	values ValuesHelper
}

// NewPenaltyDatabase initializes a new instance of the penalty
// database with the provided values helper.
func NewPenaltyDatabase(values ValuesHelper) PenaltyDatabase {
	return &penaltyDatabase{
		values: values,
	}
}

// Load reads the reference tab and builds a fresh index. Rows missing
// a code or name are skipped; malformed numeric cells parse as zero.
func (p *penaltyDatabase) Load(ctx context.Context) (*models.PenaltyIndex, error) {
	rows, err := p.values.ReadRows(ctx, penaltyRange)
	if err != nil {
		return nil, err
	}
	records := make([]models.PenaltyRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		rec := models.PenaltyRecord{
			Code: strings.TrimSpace(row[0]),
			Name: strings.TrimSpace(row[1]),
		}
		if rec.Code == "" || rec.Name == "" {
			continue
		}
		if len(row) > 2 {
			rec.Description = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			rec.JailMinutes = parseCell(row[3])
		}
		if len(row) > 4 {
			rec.Fine = parseCell(row[4])
		}
		records = append(records, rec)
	}
	return models.NewPenaltyIndex(records), nil
}

func parseCell(cell string) int {
	n, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0
	}
	return n
}
