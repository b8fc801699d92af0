package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"call-audio-router/internal/adapters/input/detector"
	"call-audio-router/internal/adapters/input/http"
	"call-audio-router/internal/adapters/input/scenario"
	"call-audio-router/internal/adapters/output/bluetooth"
	"call-audio-router/internal/adapters/output/persistence"
	"call-audio-router/internal/adapters/output/ringtone"
	"call-audio-router/internal/adapters/output/statemachine"
	"call-audio-router/internal/config"
	"call-audio-router/internal/domain/model"
	"call-audio-router/internal/domain/service"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "YAML config file")
	scenarioPath := flag.String("scenario", "", "scenario to replay (overrides scenario_path)")
	serve := flag.Bool("serve", false, "serve the HTTP API after the scenario")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configRepo := persistence.NewYAMLConfigRepository(*configPath, config.Default)
	cfg, err := config.Load(ctx, configRepo, os.LookupEnv)
	if err != nil {
		log.Fatal(err)
	}
	if *scenarioPath != "" {
		cfg.ScenarioPath = *scenarioPath
	}

	logger := log.New(logOutput(cfg.Log), "routesim ", log.LstdFlags|log.Lmicroseconds)
	if err := run(ctx, cfg, configRepo, logger, *serve); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal(err)
	}
}

func logOutput(cfg model.LogConfig) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}
}

func run(ctx context.Context, cfg *model.Config, configRepo *persistence.YAMLConfigRepository, logger *log.Logger, serve bool) error {
	headset := detector.NewWiredHeadset()
	dock := detector.NewDock()
	bt := bluetooth.NewManager(cfg.Devices...)
	queue := statemachine.NewQueue(cfg.Session, cfg.QueueCapacity, logger)
	defer queue.Close()
	journal := persistence.NewJSONLJournal(cfg.JournalPath)

	session, err := service.NewRoutingSession(service.Collaborators{
		StateMachine: queue,
		Bluetooth:    bt,
		WiredHeadset: headset,
		Dock:         dock,
		Ringtone:     ringtone.NewPlayer(),
	})
	if err != nil {
		return err
	}

	delivered := make(chan error, 1)
	go func() {
		delivered <- queue.Run(ctx, func(ctx context.Context, msg model.Message) error {
			logger.Printf("intent %s seq=%d id=%s", msg.Intent, msg.Session.Sequence, msg.Session.ID)
			return journal.Append(ctx, msg)
		})
	}()

	player := scenario.NewPlayer(headset, dock, bt)
	if cfg.ScenarioPath != "" {
		steps, err := scenario.Load(cfg.ScenarioPath)
		if err != nil {
			return err
		}
		logger.Printf("replaying %d steps from %s", len(steps), cfg.ScenarioPath)
		if err := player.Play(ctx, steps); err != nil {
			return err
		}
	}

	if serve {
		srv := http.NewServer(session, player, service.NewConfigService(configRepo), logger)
		logger.Printf("HTTP Server listening on %s", cfg.HTTPAddr)
		serveErr := make(chan error, 1)
		go func() { serveErr <- srv.ListenAndServe(cfg.HTTPAddr) }()
		select {
		case <-ctx.Done():
		case err := <-serveErr:
			logger.Printf("HTTP Server error: %v", err)
		}
	}

	queue.Close()
	err = <-delivered
	st := session.Status()
	logger.Printf("final status: bluetooth_audio_on=%t hearing_aid_on=%t le_audio_on=%t",
		st.BluetoothAudioOn, st.HearingAidOn, st.LeAudioOn)
	return err
}
