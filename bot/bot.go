package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/config"
	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/sessions"
	"github.com/blueline-rp/mdt-bot/sheets"
)

// Bot owns the Discord session and routes interactions into the report
// lifecycle.
type Bot struct {
	session *discordgo.Session
	conf    *config.Config
	lc      *mdt.Lifecycle
	caseDB  sheets.CaseLogDatabase
	ref     *mdt.Reference

	// Audit is exported so background jobs can post to the same audit
	// channel the lifecycle uses.
	Audit *AuditNotifier
}

// New builds the Discord session and wires the lifecycle with its
// presentation and audit collaborators. uploader may be nil when no
// re-hosting is configured.
func New(conf *config.Config, store sessions.Store, caseDB sheets.CaseLogDatabase, ref *mdt.Reference, uploader mdt.Uploader) (*Bot, error) {
	session, err := discordgo.New("Bot " + conf.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	audit := NewAuditNotifier(session, conf)
	b := &Bot{
		session: session,
		conf:    conf,
		caseDB:  caseDB,
		ref:     ref,
		Audit:   audit,
	}
	b.lc = &mdt.Lifecycle{
		Store:     store,
		CaseDB:    caseDB,
		Alloc:     mdt.NewAllocator(caseDB),
		Penalties: ref,
		Presenter: &discordPresenter{session: session, ref: ref},
		Audit:     audit,
		Uploader:  uploader,
		TTL:       conf.DraftTTL,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	return b, nil
}

// Open connects to the gateway.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	return nil
}

// Close disconnects from the gateway.
func (b *Bot) Close() error {
	return b.session.Close()
}

// onReady registers the slash commands per configured guild, or
// globally when no guilds are configured.
func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	guildIDs := b.conf.GuildIDs
	if len(guildIDs) == 0 {
		guildIDs = []string{""}
	}
	for _, guildID := range guildIDs {
		if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, commands()); err != nil {
			zap.S().Errorw("failed to register commands",
				"guild", guildID,
				"error", err,
			)
			continue
		}
		zap.S().Infow("commands registered", "guild", guildID)
	}
}

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "mdt",
			Description: "Open a new case report draft",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "type",
					Description: "Report type",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Arrest Log", Value: "Arrest Log"},
						{Name: "Incident Report", Value: "Incident Report"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "officer",
					Description: "Reporting officer name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "suspect",
					Description: "Suspect name",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "charges",
					Description: "Comma-separated charge codes or offense names",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "location",
					Description: "Where it happened",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "evidence",
					Description: "Evidence description",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "summary",
					Description: "Report summary",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "event_type",
					Description: "Incident event type (incident reports only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "victim",
					Description: "Victim name (incident reports only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "witness",
					Description: "Witness name (incident reports only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionAttachment,
					Name:        "evidence_image",
					Description: "Evidence image attachment",
				},
			},
		},
		{
			Name:        "officerstats",
			Description: "Show how many reports an officer has filed",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "officer",
					Description: "Officer name as written on reports",
					Required:    true,
				},
			},
		},
	}
}

// interactionUserID works for both guild and DM interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
