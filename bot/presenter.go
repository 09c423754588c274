package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/models"
)

// discordPresenter renders draft previews as embeds with interactive
// controls, editing the same message in place for the life of the
// draft.
type discordPresenter struct {
	session *discordgo.Session
	ref     *mdt.Reference
}

var _ mdt.Presenter = (*discordPresenter)(nil)

func (p *discordPresenter) PostPreview(_ context.Context, d *models.Draft, totals models.PenaltyTotals) (models.MessageRef, string, error) {
	msg, err := p.session.ChannelMessageSendComplex(d.Preview.ChannelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{previewEmbed(d, totals)},
		Components: componentsFor(d, p.ref.Index()),
	})
	if err != nil {
		return models.MessageRef{}, "", err
	}

	// The discussion thread is a nicety; the draft works without it.
	threadID := ""
	thread, err := p.session.MessageThreadStartComplex(d.Preview.ChannelID, msg.ID, &discordgo.ThreadStart{
		Name:                d.CaseNumber + " discussion",
		AutoArchiveDuration: 1440,
	})
	if err != nil {
		zap.S().Warnw("failed to open preview thread",
			"case", d.CaseNumber,
			"error", err,
		)
	} else {
		threadID = thread.ID
	}
	return models.MessageRef{ChannelID: d.Preview.ChannelID, MessageID: msg.ID}, threadID, nil
}

func (p *discordPresenter) UpdatePreview(_ context.Context, d *models.Draft, totals models.PenaltyTotals) error {
	embeds := []*discordgo.MessageEmbed{previewEmbed(d, totals)}
	components := componentsFor(d, p.ref.Index())
	_, err := p.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    d.Preview.ChannelID,
		ID:         d.Preview.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// FinalizePreview strips the controls and stamps the closing note so a
// committed or canceled draft can no longer be interacted with.
func (p *discordPresenter) FinalizePreview(_ context.Context, d *models.Draft, note string) error {
	var totals models.PenaltyTotals
	if d.Type == models.ArrestLog {
		totals = mdt.Aggregate(p.ref.Index(), d.Fields.Charges)
	}
	embeds := []*discordgo.MessageEmbed{previewEmbed(d, totals)}
	components := []discordgo.MessageComponent{}
	_, err := p.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    d.Preview.ChannelID,
		ID:         d.Preview.MessageID,
		Content:    &note,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}
