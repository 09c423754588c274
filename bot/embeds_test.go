package bot

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"

	"github.com/blueline-rp/mdt-bot/models"
)

func TestCustomIDRoundTrip(t *testing.T) {
	action, owner, extra, ok := parseCustomID(customID("confirm", "100"))
	assert.True(t, ok)
	assert.Equal(t, "confirm", action)
	assert.Equal(t, "100", owner)
	assert.Empty(t, extra)

	action, owner, extra, ok = parseCustomID(customID("charges", "100", "200"))
	assert.True(t, ok)
	assert.Equal(t, "charges", action)
	assert.Equal(t, "100", owner)
	assert.Equal(t, "200", extra)

	_, _, _, ok = parseCustomID("somebody:else:entirely")
	assert.False(t, ok)
	_, _, _, ok = parseCustomID("mdt:confirm")
	assert.False(t, ok)
}

func arrestDraft() *models.Draft {
	return &models.Draft{
		OwnerID:    "100",
		Type:       models.ArrestLog,
		CaseNumber: "AL-20250615-1000",
		Date:       time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Fields: models.CaseFields{
			Officer: "Officer Doe",
			Suspect: "J. Walker",
			Charges: "101",
		},
	}
}

func TestPreviewEmbed_ArrestShowsPenaltyAndUnknowns(t *testing.T) {
	totals := models.PenaltyTotals{
		Fine:        200,
		JailMinutes: 10,
		Found:       []string{"101 Speeding (fine $200, jail 10m)"},
		Unknown:     []string{"jaywalking"},
	}

	embed := previewEmbed(arrestDraft(), totals)
	assert.Equal(t, "Arrest Log AL-20250615-1000", embed.Title)

	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Charges")
	assert.Contains(t, names, "Penalty: $200 fine, 10 min jail")
	assert.Contains(t, names, "Unresolved charges")
	assert.NotContains(t, names, "Victim")
}

func TestPreviewEmbed_IncidentHasNoChargeFields(t *testing.T) {
	d := arrestDraft()
	d.Type = models.IncidentReport
	d.CaseNumber = "IR-20250615-1000"
	d.Incident = &models.IncidentFields{EventType: "Robbery"}

	embed := previewEmbed(d, models.PenaltyTotals{})
	names := make([]string, 0, len(embed.Fields))
	for _, f := range embed.Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Event Type")
	assert.Contains(t, names, "Victim")
	assert.NotContains(t, names, "Charges")
}

func TestComponentsFor_OwnerBakedIntoControls(t *testing.T) {
	idx := models.NewPenaltyIndex([]models.PenaltyRecord{
		{Code: "101", Name: "Speeding"},
		{Code: "201", Name: "Loitering"},
	})

	rows := componentsFor(arrestDraft(), idx)
	assert.Len(t, rows, 3, "buttons, charge groups, locations")

	buttons := rows[0].(discordgo.ActionsRow)
	assert.Equal(t, "mdt:confirm:100", buttons.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, "mdt:cancel:100", buttons.Components[1].(discordgo.Button).CustomID)
	assert.Equal(t, "mdt:edit:100", buttons.Components[2].(discordgo.Button).CustomID)
	assert.Equal(t, "mdt:refresh:100", buttons.Components[3].(discordgo.Button).CustomID)

	groups := rows[1].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	assert.Equal(t, "mdt:chargegroup:100", groups.CustomID)
	assert.Len(t, groups.Options, 2)
}

func TestComponentsFor_NilIndexOmitsChargeBrowser(t *testing.T) {
	rows := componentsFor(arrestDraft(), nil)
	assert.Len(t, rows, 2, "buttons and locations only")
}

func TestChargeOptions_CappedAtSelectLimit(t *testing.T) {
	recs := make([]models.PenaltyRecord, 40)
	for i := range recs {
		recs[i] = models.PenaltyRecord{Code: "1" + string(rune('0'+i%10)), Name: "Offense"}
	}

	assert.Len(t, chargeOptions(recs), 25)
}
