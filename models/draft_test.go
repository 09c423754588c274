package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/blueline-rp/mdt-bot/models"
)

func TestDraftRow_ArrestColumnOrder(t *testing.T) {
	d := &models.Draft{
		Type:       models.ArrestLog,
		CaseNumber: "AL-20250615-1000",
		Date:       time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
		Fields: models.CaseFields{
			Officer:    "Officer Doe",
			Suspect:    "J. Walker",
			Charges:    "101, 102",
			Location:   "Vinewood Blvd",
			Evidence:   "Dashcam footage",
			Summary:    "Pulled over after a pursuit.",
			Attachment: "https://cdn.example.test/evidence.png",
		},
	}

	assert.Equal(t, []interface{}{
		"AL-20250615-1000",
		"06/15/2025",
		"Officer Doe",
		"J. Walker",
		"101, 102",
		"Vinewood Blvd",
		"Dashcam footage",
		"Pulled over after a pursuit.",
		"https://cdn.example.test/evidence.png",
	}, d.Row())
}

func TestDraftRow_IncidentColumnOrder(t *testing.T) {
	d := &models.Draft{
		Type:       models.IncidentReport,
		CaseNumber: "IR-20250615-1000",
		Date:       time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC),
		Fields: models.CaseFields{
			Officer:  "Officer Doe",
			Suspect:  "Unknown male",
			Location: "Fleeca Bank",
			Evidence: "CCTV",
		},
		Incident: &models.IncidentFields{
			EventType: "Robbery",
			Victim:    "Store clerk",
			Witness:   "Bystander",
		},
	}

	assert.Equal(t, []interface{}{
		"IR-20250615-1000",
		"06/15/2025",
		"Robbery",
		"Officer Doe",
		"Store clerk",
		"Bystander",
		"Unknown male",
		"Fleeca Bank",
		"CCTV",
		models.NoSummaryPlaceholder,
		models.NoImagePlaceholder,
	}, d.Row())
}

func TestDraftRow_PlaceholdersForOptionalFields(t *testing.T) {
	d := &models.Draft{Type: models.ArrestLog, CaseNumber: "AL-20250615-1001", Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}

	row := d.Row()
	assert.Equal(t, models.NoSummaryPlaceholder, row[7])
	assert.Equal(t, models.NoImagePlaceholder, row[8])
}

func TestDraftRow_IncidentWithoutFieldsDoesNotPanic(t *testing.T) {
	d := &models.Draft{Type: models.IncidentReport, CaseNumber: "IR-20250615-1002", Date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)}

	row := d.Row()
	assert.Len(t, row, 11)
	assert.Equal(t, "", row[2])
}

func TestReportType(t *testing.T) {
	assert.True(t, models.ArrestLog.Valid())
	assert.True(t, models.IncidentReport.Valid())
	assert.False(t, models.ReportType("Evidence Log").Valid())

	assert.Equal(t, "AL", models.ArrestLog.Prefix())
	assert.Equal(t, "IR", models.IncidentReport.Prefix())
	assert.Equal(t, "Arrest Log", models.ArrestLog.Tab())
	assert.Equal(t, "Incident Report", models.IncidentReport.Tab())
	assert.Equal(t, 2, models.ArrestLog.OfficerColumn())
	assert.Equal(t, 3, models.IncidentReport.OfficerColumn())
}
