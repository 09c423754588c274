package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/blueline-rp/mdt-bot/api"
	"github.com/blueline-rp/mdt-bot/bot"
	"github.com/blueline-rp/mdt-bot/config"
	"github.com/blueline-rp/mdt-bot/mdt"
	"github.com/blueline-rp/mdt-bot/scheduler"
	"github.com/blueline-rp/mdt-bot/sessions"
	"github.com/blueline-rp/mdt-bot/sheets"
	"github.com/blueline-rp/mdt-bot/uploads"
)

func main() {
	_ = godotenv.Load()
	conf := config.New()
	ctx := context.Background()

	values, err := sheets.New(ctx, conf)
	if err != nil {
		log.Fatal(err)
	}
	caseDB := sheets.NewCaseLogDatabase(values)
	penaltyDB := sheets.NewPenaltyDatabase(values)

	ref := mdt.NewReference(penaltyDB)
	if err := ref.Refresh(ctx); err != nil {
		zap.S().Warnw("initial penalty reference fetch failed, charges will not resolve until the next refresh",
			"error", err,
		)
	}

	var uploader mdt.Uploader
	if conf.CloudinaryURL != "" {
		uploader, err = uploads.New(conf.CloudinaryURL)
		if err != nil {
			log.Fatal(err)
		}
	}

	b, err := bot.New(conf, sessions.New(), caseDB, ref, uploader)
	if err != nil {
		log.Fatal(err)
	}
	if err := b.Open(); err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	sched := scheduler.NewScheduler(ref, caseDB, b.Audit)
	sched.Start()
	defer sched.Stop()

	a := api.App{Ref: ref}
	a.New()

	zap.S().Infow("mdt-bot is up and running",
		"port", conf.Port,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", conf.Port), a.Router))
}
