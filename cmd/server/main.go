package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"roguetester/internal/agent"
	"roguetester/internal/config"
	"roguetester/internal/domain"
	"roguetester/internal/engine"
	"roguetester/internal/network"
	"roguetester/internal/server"
	"roguetester/internal/version"
	"roguetester/pkg/logger"
	"roguetester/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

// inputBuffer - сколько команд игрок может набрать вперед.
const inputBuffer = 16

func main() {
	if err := run(); err != nil {
		logger.Log.WithError(err).Error("Simulation failed")
		os.Exit(1)
	}
}

func run() error {
	// 1. Парсинг конфигурации
	var (
		configPath string
		seed       int64
		mode       string
		listen     string
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to YAML config")
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.StringVar(&mode, "mode", "", "Hero input: console, ws or bot")
	flag.StringVar(&listen, "listen", "", "HTTP listen address, enables the server")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	// Флаги сильнее файла
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "mode":
			cfg.Mode = mode
		case "listen":
			cfg.Server.Listen = listen
			cfg.Server.Enabled = true
		}
	})
	if cfg.Mode == config.ModeWS {
		cfg.Server.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Stdout занят HUD консоли
	logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	logger.Log.Info("Starting roguetester...")
	logger.Log.Info(version.String())

	ecfg := cfg.Engine()
	ecfg.Seed = utils.ResolveSeed(ecfg.Seed)
	logger.Log.WithField("seed", ecfg.Seed).Info("Using master seed")

	// 2. Мир
	sources, err := cfg.Sources(utils.NewRand(ecfg.Seed))
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}
	world, err := engine.BuildWorld(ecfg, sources)
	if err != nil {
		return err
	}
	svc := engine.NewService(world)

	hub := network.NewBroadcaster()
	input := engine.NewChannelInput(inputBuffer)
	hero, err := svc.AddHero(ecfg.HeroName, ecfg.HeroLevel, &engine.PlayerController{
		Input:  input,
		Output: hub,
		Tick:   svc.CurrentTick,
	})
	if err != nil {
		return err
	}
	token := hero.ID.Token()

	logger.Log.WithFields(logrus.Fields{
		"mode":  cfg.Mode,
		"hero":  hero.Name,
		"token": token,
	}).Info("Hero ready")

	// 3. Запуск: симуляция, транспорт и ввод героя одной группой
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		defer hub.CloseAll()
		defer input.Close()

		err := svc.Run(gctx)
		switch {
		case err == nil, errors.Is(err, domain.ErrQuit):
			return nil
		case errors.Is(err, context.Canceled):
			logger.Log.Info("Shutting down...")
			return nil
		}
		return err
	})

	if cfg.Server.Enabled {
		srv := server.New(svc, hub, input, token, cfg.Server.Listen)
		g.Go(func() error { return srv.Run(gctx) })
	}

	switch cfg.Mode {
	case config.ModeConsole:
		updates := hub.Register(token)
		g.Go(func() error { return printLoop(gctx, os.Stdout, updates) })
		// Чтение stdin не прерывается контекстом, поэтому живет вне группы
		go readLoop(gctx, os.Stdin, input)

	case config.ModeBot:
		bot := agent.NewBot(token, hub.Register(token), input, world.Rng)
		bot.MaxTurns = cfg.Bot.MaxTurns
		g.Go(func() error {
			defer input.Close()
			return bot.Run(gctx)
		})
	}

	err = g.Wait()
	logger.Log.WithField("tick", svc.CurrentTick()).Info("Done.")
	return err
}
