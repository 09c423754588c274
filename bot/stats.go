package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/models"
)

// handleOfficerStats counts the committed reports filed under the given
// officer name across both tabs.
func (b *Bot) handleOfficerStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	deferEphemeral(s, i)

	var officer string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "officer" {
			officer = strings.TrimSpace(opt.StringValue())
		}
	}
	if officer == "" {
		followupEphemeral(s, i, "Give me an officer name to look up.")
		return
	}

	ctx := context.Background()
	total := 0
	var fields []*discordgo.MessageEmbedField
	for _, t := range []models.ReportType{models.ArrestLog, models.IncidentReport} {
		rows, err := b.caseDB.Rows(ctx, t)
		if err != nil {
			zap.S().Errorw("failed to read rows for officer stats",
				"type", t,
				"error", err,
			)
			followupEphemeral(s, i, "Could not read the case log, try again later.")
			return
		}
		count := 0
		col := t.OfficerColumn()
		for _, row := range rows {
			if col < len(row) && strings.EqualFold(strings.TrimSpace(row[col]), officer) {
				count++
			}
		}
		total += count
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   string(t),
			Value:  fmt.Sprintf("%d", count),
			Inline: true,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("Reports filed by %s", officer),
		Color:  previewColor,
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("%d total", total)},
	}
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		zap.S().Warnw("failed to send officer stats", "error", err)
	}
}
