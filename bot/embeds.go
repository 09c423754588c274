package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/blueline-rp/mdt-bot/models"
)

const previewColor = 0x0099ff

// Component custom IDs carry the draft owner so button presses can be
// authorized without extra state: "mdt:<action>:<ownerID>" with an
// optional trailing argument.
const customIDPrefix = "mdt"

func customID(action, ownerID string, extra ...string) string {
	parts := append([]string{customIDPrefix, action, ownerID}, extra...)
	return strings.Join(parts, ":")
}

// parseCustomID splits a component custom ID into action, owner and the
// optional trailing argument.
func parseCustomID(id string) (action, ownerID, extra string, ok bool) {
	parts := strings.Split(id, ":")
	if len(parts) < 3 || parts[0] != customIDPrefix {
		return "", "", "", false
	}
	action, ownerID = parts[1], parts[2]
	if len(parts) > 3 {
		extra = parts[3]
	}
	return action, ownerID, extra, true
}

// Quick-pick presets shown in the preview select menus.
var locationPresets = []string{
	"Mission Row PD",
	"Vinewood Blvd",
	"Del Perro Pier",
	"Sandy Shores",
	"Paleto Bay",
	"Grove Street",
	"Legion Square",
	"Vespucci Beach",
}

var eventTypePresets = []string{
	"Robbery",
	"Assault",
	"Traffic Collision",
	"Shots Fired",
	"Vandalism",
	"Missing Person",
	"Suspicious Activity",
}

func previewEmbed(d *models.Draft, totals models.PenaltyTotals) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s %s", d.Type, d.CaseNumber),
		Color: previewColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Officer", Value: orDash(d.Fields.Officer), Inline: true},
			{Name: "Suspect", Value: orDash(d.Fields.Suspect), Inline: true},
			{Name: "Date", Value: d.Date.Format("01/02/2006"), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Draft by %s, expires %s", d.OwnerID, d.ExpiresAt.Format("15:04 MST")),
		},
	}

	if d.Incident != nil {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Event Type", Value: orDash(d.Incident.EventType), Inline: true},
			&discordgo.MessageEmbedField{Name: "Victim", Value: orDash(d.Incident.Victim), Inline: true},
			&discordgo.MessageEmbedField{Name: "Witness", Value: orDash(d.Incident.Witness), Inline: true},
		)
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Location", Value: orDash(d.Fields.Location), Inline: true},
		&discordgo.MessageEmbedField{Name: "Evidence", Value: orDash(d.Fields.Evidence), Inline: true},
	)

	if d.Type == models.ArrestLog {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Charges", Value: orDash(d.Fields.Charges)},
		)
		if len(totals.Found) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  fmt.Sprintf("Penalty: $%d fine, %d min jail", totals.Fine, totals.JailMinutes),
				Value: strings.Join(totals.Found, "\n"),
			})
		}
		if len(totals.Unknown) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Unresolved charges",
				Value: strings.Join(totals.Unknown, ", "),
			})
		}
	}

	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Summary", Value: orDash(d.Fields.Summary)},
	)
	if d.Fields.Attachment != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: d.Fields.Attachment}
	}
	return embed
}

// componentsFor builds the interactive controls under the preview. idx
// may be nil before the first reference fetch succeeds; the charge
// browser is simply omitted then.
func componentsFor(d *models.Draft, idx *models.PenaltyIndex) []discordgo.MessageComponent {
	rows := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: customID("confirm", d.OwnerID),
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: customID("cancel", d.OwnerID),
				},
				discordgo.Button{
					Label:    "Edit",
					Style:    discordgo.SecondaryButton,
					CustomID: customID("edit", d.OwnerID),
				},
				discordgo.Button{
					Label:    "Refresh",
					Style:    discordgo.SecondaryButton,
					CustomID: customID("refresh", d.OwnerID),
				},
			},
		},
	}

	if d.Type == models.ArrestLog && idx != nil && len(idx.Groups()) > 0 {
		options := make([]discordgo.SelectMenuOption, 0, len(idx.Groups()))
		for _, g := range idx.Groups() {
			options = append(options, discordgo.SelectMenuOption{
				Label: g + " series",
				Value: g,
			})
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    customID("chargegroup", d.OwnerID),
					Placeholder: "Browse charges by code series",
					Options:     options,
				},
			},
		})
	}

	rows = append(rows, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    customID("location", d.OwnerID),
				Placeholder: "Quick-pick a location",
				Options:     selectOptions(locationPresets),
			},
		},
	})

	if d.Incident != nil {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    customID("eventtype", d.OwnerID),
					Placeholder: "Quick-pick an event type",
					Options:     selectOptions(eventTypePresets),
				},
			},
		})
	}
	return rows
}

// chargeOptions lists one select option per charge in the group, capped
// at the Discord select menu limit.
func chargeOptions(recs []models.PenaltyRecord) []discordgo.SelectMenuOption {
	const maxOptions = 25
	options := make([]discordgo.SelectMenuOption, 0, len(recs))
	for _, rec := range recs {
		if len(options) == maxOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       fmt.Sprintf("%s %s", rec.Code, rec.Name),
			Value:       rec.Code,
			Description: fmt.Sprintf("$%d fine, %d min jail", rec.Fine, rec.JailMinutes),
		})
	}
	return options
}

func selectOptions(values []string) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(values))
	for _, v := range values {
		options = append(options, discordgo.SelectMenuOption{Label: v, Value: v})
	}
	return options
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
