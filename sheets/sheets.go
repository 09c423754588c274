package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/blueline-rp/mdt-bot/config"
)

// ValuesHelper contains the spreadsheet value operations used in this
// project. Every call may block on network I/O.
type ValuesHelper interface {
	ReadColumn(ctx context.Context, readRange string) ([]string, error)
	ReadRows(ctx context.Context, readRange string) ([][]string, error)
	AppendRow(ctx context.Context, writeRange string, row []interface{}) (*AppendResult, error)
}

// AppendResult reports where an appended row landed.
type AppendResult struct {
	UpdatedRange string
	RowIndex     int64
	Link         string
}

type googleValues struct {
	svc           *sheetsapi.Service
	spreadsheetID string
}

// New uses the credentials from the config and returns a values helper
// backed by the Google Sheets API.
func New(ctx context.Context, conf *config.Config) (ValuesHelper, error) {
	svc, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON([]byte(conf.GoogleCredentials)),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &googleValues{svc: svc, spreadsheetID: conf.SpreadsheetID}, nil
}

func (g *googleValues) ReadColumn(ctx context.Context, readRange string) ([]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	column := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		column = append(column, fmt.Sprint(row[0]))
	}
	return column, nil
}

func (g *googleValues) ReadRows(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprint(cell)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func (g *googleValues) AppendRow(ctx context.Context, writeRange string, row []interface{}) (*AppendResult, error) {
	body := &sheetsapi.ValueRange{Values: [][]interface{}{row}}
	resp, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, writeRange, body).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	result := &AppendResult{}
	if resp.Updates != nil {
		result.UpdatedRange = resp.Updates.UpdatedRange
		result.RowIndex = rowIndexFromRange(resp.Updates.UpdatedRange)
		if result.RowIndex > 0 {
			result.Link = fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#range=A%d", g.spreadsheetID, result.RowIndex)
		}
	}
	return result, nil
}

var rangeRowPattern = regexp.MustCompile(`![A-Z]+([0-9]+)`)

// rowIndexFromRange extracts the row number from an updated range like
// "Arrest Log!A7:I7". Returns 0 when the range has no row component.
func rowIndexFromRange(updatedRange string) int64 {
	m := rangeRowPattern.FindStringSubmatch(updatedRange)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
