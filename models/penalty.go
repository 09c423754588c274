package models

import (
	"sort"
	"strings"
)

// PenaltyRecord is one row of the penalty reference table.
type PenaltyRecord struct {
	Code        string
	Name        string
	Description string
	JailMinutes int
	Fine        int
}

// PenaltyIndex is an immutable-per-fetch view of the penalty reference,
// indexed for O(1) lookup by name and code and grouped by code prefix
// for paged selection UIs.
type PenaltyIndex struct {
	byName map[string]PenaltyRecord
	byCode map[string]PenaltyRecord
	groups map[string][]PenaltyRecord
}

// NewPenaltyIndex builds the lookup indexes over records. Later records
// with a duplicate code or name win, matching a top-down sheet read.
func NewPenaltyIndex(records []PenaltyRecord) *PenaltyIndex {
	idx := &PenaltyIndex{
		byName: make(map[string]PenaltyRecord, len(records)),
		byCode: make(map[string]PenaltyRecord, len(records)),
		groups: make(map[string][]PenaltyRecord),
	}
	for _, rec := range records {
		if rec.Name != "" {
			idx.byName[strings.ToLower(rec.Name)] = rec
		}
		if rec.Code != "" {
			idx.byCode[strings.ToLower(rec.Code)] = rec
			if g := codeGroup(rec.Code); g != "" {
				idx.groups[g] = append(idx.groups[g], rec)
			}
		}
	}
	return idx
}

// ByName resolves an offense name case-insensitively.
func (i *PenaltyIndex) ByName(name string) (PenaltyRecord, bool) {
	rec, ok := i.byName[strings.ToLower(strings.TrimSpace(name))]
	return rec, ok
}

// ByCode resolves a charge code case-insensitively.
func (i *PenaltyIndex) ByCode(code string) (PenaltyRecord, bool) {
	rec, ok := i.byCode[strings.ToLower(strings.TrimSpace(code))]
	return rec, ok
}

// Group returns the records whose codes share the given group key, in
// code order.
func (i *PenaltyIndex) Group(key string) []PenaltyRecord {
	recs := append([]PenaltyRecord(nil), i.groups[key]...)
	sort.Slice(recs, func(a, b int) bool { return recs[a].Code < recs[b].Code })
	return recs
}

// Groups returns the sorted group keys, e.g. "100", "200".
func (i *PenaltyIndex) Groups() []string {
	keys := make([]string, 0, len(i.groups))
	for k := range i.groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of records indexed by code.
func (i *PenaltyIndex) Len() int {
	return len(i.byCode)
}

// codeGroup maps a charge code to its browse group: the first digit
// followed by "00". Codes not starting with a digit are not grouped.
func codeGroup(code string) string {
	if code == "" || code[0] < '0' || code[0] > '9' {
		return ""
	}
	return string(code[0]) + "00"
}

// PenaltyTotals is the ephemeral result of aggregating a charge list.
// It is recomputed on every charge-affecting mutation and never
// persisted.
type PenaltyTotals struct {
	Fine        int
	JailMinutes int
	Found       []string
	Unknown     []string
}
