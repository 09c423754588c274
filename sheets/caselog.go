package sheets

// go generate: mockery --name ValuesHelper

import (
	"context"

	"github.com/blueline-rp/mdt-bot/models"
)

// CaseLogDatabase contains the methods used against the report tabs.
type CaseLogDatabase interface {
	CaseNumbers(ctx context.Context, t models.ReportType) ([]string, error)
	AppendReport(ctx context.Context, t models.ReportType, row []interface{}) (*AppendResult, error)
	Rows(ctx context.Context, t models.ReportType) ([][]string, error)
}

type caseLogDatabase struct {
	values ValuesHelper
}

// NewCaseLogDatabase initializes a new instance of the case log
// database with the provided values helper.
func NewCaseLogDatabase(values ValuesHelper) CaseLogDatabase {
	return &caseLogDatabase{
		values: values,
	}
}

// CaseNumbers reads the case-number column of the report type's tab,
// skipping the header row.
func (c *caseLogDatabase) CaseNumbers(ctx context.Context, t models.ReportType) ([]string, error) {
	return c.values.ReadColumn(ctx, t.Tab()+"!A2:A")
}

// AppendReport appends a report row to the report type's tab.
func (c *caseLogDatabase) AppendReport(ctx context.Context, t models.ReportType, row []interface{}) (*AppendResult, error) {
	return c.values.AppendRow(ctx, t.Tab()+"!A1", row)
}

// Rows reads all persisted rows of the report type's tab, skipping the
// header row.
func (c *caseLogDatabase) Rows(ctx context.Context, t models.ReportType) ([][]string, error) {
	return c.values.ReadRows(ctx, t.Tab()+"!A2:K")
}
