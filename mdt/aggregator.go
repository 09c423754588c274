package mdt

import (
	"fmt"
	"strings"

	"github.com/blueline-rp/mdt-bot/models"
)

// Aggregate resolves a comma-separated charge list against the penalty
// reference and sums the monetary and jail-time penalties. Tokens are
// deduplicated case-insensitively in first-seen order. Matching is
// exact: numeric tokens resolve by code, everything else by offense
// name. Unresolved tokens are reported, never dropped.
func Aggregate(index *models.PenaltyIndex, chargeText string) models.PenaltyTotals {
	var totals models.PenaltyTotals
	if strings.TrimSpace(chargeText) == "" {
		return totals
	}

	seenTokens := make(map[string]bool)
	seenRecords := make(map[string]bool)
	for _, raw := range strings.Split(chargeText, ",") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if seenTokens[key] {
			continue
		}
		seenTokens[key] = true

		rec, ok := resolve(index, token)
		if !ok {
			totals.Unknown = append(totals.Unknown, token)
			continue
		}
		// A code and its offense name are the same charge; count the
		// record once no matter how it was spelled.
		recKey := strings.ToLower(rec.Code + "|" + rec.Name)
		if seenRecords[recKey] {
			continue
		}
		seenRecords[recKey] = true
		totals.Fine += rec.Fine
		totals.JailMinutes += rec.JailMinutes
		totals.Found = append(totals.Found, fmt.Sprintf("%s %s (fine $%d, jail %dm)", rec.Code, rec.Name, rec.Fine, rec.JailMinutes))
	}
	return totals
}

func resolve(index *models.PenaltyIndex, token string) (models.PenaltyRecord, bool) {
	if index == nil {
		return models.PenaltyRecord{}, false
	}
	if isNumeric(token) {
		return index.ByCode(token)
	}
	return index.ByName(token)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
