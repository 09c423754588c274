package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/models"
)

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("panic while handling interaction", "panic", r)
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "mdt":
			b.handleMDT(s, i)
		case "officerstats":
			b.handleOfficerStats(s, i)
		}
	case discordgo.InteractionMessageComponent:
		b.handleComponent(s, i)
	case discordgo.InteractionModalSubmit:
		b.handleModal(s, i)
	}
}

// handleMDT opens a new draft from the slash-command options and posts
// its preview.
func (b *Bot) handleMDT(s *discordgo.Session, i *discordgo.InteractionCreate) {
	deferEphemeral(s, i)

	data := i.ApplicationCommandData()
	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		opts[opt.Name] = opt
	}
	strOpt := func(name string) string {
		if opt, ok := opts[name]; ok {
			return strings.TrimSpace(opt.StringValue())
		}
		return ""
	}

	in := mdt.CreateInput{
		OwnerID:   interactionUserID(i),
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		Type:      models.ReportType(strOpt("type")),
		Fields: models.CaseFields{
			Officer:  strOpt("officer"),
			Suspect:  strOpt("suspect"),
			Charges:  strOpt("charges"),
			Location: strOpt("location"),
			Evidence: strOpt("evidence"),
			Summary:  strOpt("summary"),
		},
	}
	if in.Type == models.IncidentReport {
		in.Incident = &models.IncidentFields{
			EventType: strOpt("event_type"),
			Victim:    strOpt("victim"),
			Witness:   strOpt("witness"),
		}
	}
	if opt, ok := opts["evidence_image"]; ok {
		if att, ok := data.Resolved.Attachments[opt.Value.(string)]; ok {
			in.Fields.Attachment = att.URL
		}
	}

	d, _, err := b.lc.Create(context.Background(), in)
	if err != nil {
		followupEphemeral(s, i, noticeFor(err))
		return
	}
	followupEphemeral(s, i, fmt.Sprintf("Draft %s opened. Use the buttons under the preview to edit, confirm or cancel.", d.CaseNumber))
}

func (b *Bot) handleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	action, ownerID, extra, ok := parseCustomID(data.CustomID)
	if !ok {
		return
	}
	a := mdt.Action{ActorID: interactionUserID(i), OwnerID: ownerID, GuildID: i.GuildID}
	ctx := context.Background()

	switch action {
	case "confirm":
		deferEphemeral(s, i)
		res, err := b.lc.Confirm(ctx, a)
		if err != nil {
			followupEphemeral(s, i, noticeFor(err))
			return
		}
		msg := fmt.Sprintf("Report %s logged.", res.Draft.CaseNumber)
		if res.Link != "" {
			msg += " " + res.Link
		}
		followupEphemeral(s, i, msg)

	case "cancel":
		deferEphemeral(s, i)
		d, err := b.lc.Cancel(ctx, a)
		if err != nil {
			followupEphemeral(s, i, noticeFor(err))
			return
		}
		followupEphemeral(s, i, fmt.Sprintf("Draft %s canceled.", d.CaseNumber))

	case "refresh":
		_, _, err := b.lc.Refresh(ctx, a)
		if err != nil {
			respondEphemeral(s, i, noticeFor(err))
			return
		}
		ackComponent(s, i)

	case "edit":
		d, err := b.lc.Peek(a)
		if err != nil {
			respondEphemeral(s, i, noticeFor(err))
			return
		}
		if err := s.InteractionRespond(i.Interaction, editModal(d)); err != nil {
			zap.S().Warnw("failed to open edit form", "error", err)
		}

	case "chargegroup":
		b.showChargePicker(s, i, a, data.Values)

	case "charges":
		_, totals, err := b.lc.ApplySelection(ctx, a, mdt.Selection{Charges: data.Values})
		if err != nil {
			respondEphemeral(s, i, noticeFor(err))
			return
		}
		updatePickerMessage(s, i, fmt.Sprintf("Charges added from the %s series. Running total: $%d fine, %d min jail.", extra, totals.Fine, totals.JailMinutes))

	case "location":
		if len(data.Values) == 0 {
			return
		}
		_, _, err := b.lc.ApplySelection(ctx, a, mdt.Selection{Location: data.Values[0]})
		if err != nil {
			respondEphemeral(s, i, noticeFor(err))
			return
		}
		ackComponent(s, i)

	case "eventtype":
		if len(data.Values) == 0 {
			return
		}
		_, _, err := b.lc.ApplySelection(ctx, a, mdt.Selection{EventType: data.Values[0]})
		if err != nil {
			respondEphemeral(s, i, noticeFor(err))
			return
		}
		ackComponent(s, i)
	}
}

// showChargePicker answers a charge-group selection with an ephemeral
// multi-select over that group's charges.
func (b *Bot) showChargePicker(s *discordgo.Session, i *discordgo.InteractionCreate, a mdt.Action, values []string) {
	if _, err := b.lc.Peek(a); err != nil {
		respondEphemeral(s, i, noticeFor(err))
		return
	}
	idx := b.ref.Index()
	if idx == nil || len(values) == 0 {
		respondEphemeral(s, i, "The penalty reference is not loaded yet, try again shortly.")
		return
	}
	group := values[0]
	options := chargeOptions(idx.Group(group))
	if len(options) == 0 {
		respondEphemeral(s, i, fmt.Sprintf("No charges in the %s series.", group))
		return
	}

	minValues := 1
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Pick charges from the %s series:", group),
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							CustomID:  customID("charges", a.OwnerID, group),
							MinValues: &minValues,
							MaxValues: len(options),
							Options:   options,
						},
					},
				},
			},
		},
	})
	if err != nil {
		zap.S().Warnw("failed to show charge picker", "error", err)
	}
}

// handleModal applies the edit-form values to the draft.
func (b *Bot) handleModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ModalSubmitData()
	action, ownerID, _, ok := parseCustomID(data.CustomID)
	if !ok || action != "editmodal" {
		return
	}
	a := mdt.Action{ActorID: interactionUserID(i), OwnerID: ownerID, GuildID: i.GuildID}

	edits := mdt.FieldEdits{}
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok || len(ar.Components) == 0 {
			continue
		}
		input, ok := ar.Components[0].(*discordgo.TextInput)
		if !ok {
			continue
		}
		v := input.Value
		switch input.CustomID {
		case "suspect":
			edits.Suspect = &v
		case "charges":
			edits.Charges = &v
		case "location":
			edits.Location = &v
		case "evidence":
			edits.Evidence = &v
		case "summary":
			edits.Summary = &v
		case "victim":
			edits.Victim = &v
		case "witness":
			edits.Witness = &v
		}
	}

	d, _, err := b.lc.SubmitFieldEdits(context.Background(), a, edits)
	if err != nil {
		respondEphemeral(s, i, noticeFor(err))
		return
	}
	respondEphemeral(s, i, fmt.Sprintf("Draft %s updated.", d.CaseNumber))
}

// editModal builds the edit form pre-filled with the draft's current
// values. Discord caps modals at five inputs, so the incident form
// swaps suspect and charges for victim and witness.
func editModal(d *models.Draft) *discordgo.InteractionResponse {
	var rows []discordgo.MessageComponent
	addInput := func(id, label, value string, style discordgo.TextInputStyle) {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID: id,
					Label:    label,
					Style:    style,
					Value:    value,
				},
			},
		})
	}

	if d.Incident != nil {
		addInput("victim", "Victim", d.Incident.Victim, discordgo.TextInputShort)
		addInput("witness", "Witness", d.Incident.Witness, discordgo.TextInputShort)
	} else {
		addInput("suspect", "Suspect", d.Fields.Suspect, discordgo.TextInputShort)
		addInput("charges", "Charges (comma-separated)", d.Fields.Charges, discordgo.TextInputShort)
	}
	addInput("location", "Location", d.Fields.Location, discordgo.TextInputShort)
	addInput("evidence", "Evidence", d.Fields.Evidence, discordgo.TextInputShort)
	addInput("summary", "Summary", d.Fields.Summary, discordgo.TextInputParagraph)

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID("editmodal", d.OwnerID),
			Title:      fmt.Sprintf("Edit %s", d.CaseNumber),
			Components: rows,
		},
	}
}

// noticeFor maps lifecycle errors to the ephemeral notice shown to the
// actor.
func noticeFor(err error) string {
	switch {
	case errors.Is(err, mdt.ErrNotOwner):
		return "Only the report owner can do that."
	case errors.Is(err, mdt.ErrNoDraft):
		return "No open report draft. Start one with /mdt."
	case errors.Is(err, mdt.ErrDraftExpired):
		return "This report draft expired. Start over with /mdt."
	case errors.Is(err, mdt.ErrUnknownType):
		return "Unknown report type."
	default:
		return "Something went wrong, please try again."
	}
}

func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		zap.S().Warnw("failed to defer interaction", "error", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: text,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		zap.S().Warnw("failed to respond to interaction", "error", err)
	}
}

func followupEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Content: text,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		zap.S().Warnw("failed to send follow-up", "error", err)
	}
}

// ackComponent acknowledges a component interaction whose effect is
// already visible on the edited preview.
func ackComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		zap.S().Warnw("failed to acknowledge interaction", "error", err)
	}
}

// updatePickerMessage replaces the ephemeral picker with a short
// confirmation, dropping its select menu.
func updatePickerMessage(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    text,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		zap.S().Warnw("failed to update charge picker", "error", err)
	}
}
