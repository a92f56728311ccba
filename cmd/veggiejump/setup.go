package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/veggie-jump/internal/audio"
	"github.com/vovakirdan/veggie-jump/internal/config"
	"github.com/vovakirdan/veggie-jump/internal/frame"
	"github.com/vovakirdan/veggie-jump/internal/games/veggie"
	"github.com/vovakirdan/veggie-jump/internal/sprites"
)

// soundVolume is the linear volume of every effect.
const soundVolume = 0.5

// settings are the global flags after environment fallbacks.
type settings struct {
	fps         int
	seed        int64
	configPath  string
	spritesPath string
	difficulty  config.Preset
	sound       bool
	logFile     string
	logLevel    string
}

// flagSettings collects the global flags.
func flagSettings() settings {
	return settings{
		fps:         flagFPS,
		seed:        flagSeed,
		configPath:  flagConfig,
		spritesPath: flagSprites,
		difficulty:  config.Preset(flagDifficulty),
		sound:       flagSound,
		logFile:     flagLogFile,
		logLevel:    flagLogLevel,
	}
}

// withEnv fills settings the flags left unset from the environment.
func withEnv(s settings, getenv func(key, fallback string) string) (settings, error) {
	if s.fps == 0 {
		if v := getenv(config.EnvFPS, ""); v != "" {
			fps, err := strconv.Atoi(v)
			if err != nil || fps <= 0 {
				return s, fmt.Errorf("invalid %s %q: want a positive integer", config.EnvFPS, v)
			}
			s.fps = fps
		}
	}
	if s.seed == 0 {
		if v := getenv(config.EnvSeed, ""); v != "" {
			seed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return s, fmt.Errorf("invalid %s %q: %w", config.EnvSeed, v, err)
			}
			s.seed = seed
		}
	}
	if s.configPath == "" {
		s.configPath = getenv(config.EnvConfig, "")
	}
	if s.difficulty == "" {
		s.difficulty = config.Preset(getenv(config.EnvDifficulty, ""))
	}

	preset, err := config.ParsePreset(string(s.difficulty))
	if err != nil {
		return s, err
	}
	s.difficulty = preset
	return s, nil
}

// resolveSettings reads the flags and the process environment.
func resolveSettings() (settings, error) {
	return withEnv(flagSettings(), config.GetEnv)
}

// loadConfig loads the configuration and applies preset and tick rate overrides.
func loadConfig(s settings) (config.Config, config.Source, error) {
	cfg, source, err := config.Load(s.configPath)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, s.difficulty)
	if s.fps > 0 {
		cfg.Loop.TickRate = s.fps
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", fmt.Errorf("config from %s: %w", source, err)
	}
	return cfg, source, nil
}

// newLogger creates the process logger writing to path, or to fallback when
// path is empty. The returned func closes the log file.
func newLogger(path, level string, fallback io.Writer) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	w, closeFn := fallback, func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "veggiejump",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

// session is everything a platform needs to run one game.
type session struct {
	cfg     config.Config
	source  config.Source
	player  sprites.Sprite
	hazard  sprites.Sprite
	seed    int64
	logger  *log.Logger
	sinks   []frame.EventSink
	closers []func()
}

// newSession resolves flags, config, sprites, logging and sound.
// Logs go to fallback unless --log-file is set.
func newSession(fallback io.Writer) (*session, error) {
	s, err := resolveSettings()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(s.logFile, s.logLevel, fallback)
	if err != nil {
		return nil, err
	}
	sess := &session{logger: logger, closers: []func(){closeLog}}

	sess.cfg, sess.source, err = loadConfig(s)
	if err != nil {
		sess.Close()
		return nil, err
	}

	cat, err := sprites.Load(s.spritesPath)
	if err != nil {
		sess.Close()
		return nil, err
	}
	if sess.player, err = cat.Lookup(sprites.Player); err != nil {
		sess.Close()
		return nil, err
	}
	if sess.hazard, err = cat.Lookup(sprites.Hazard); err != nil {
		sess.Close()
		return nil, err
	}

	sess.seed = s.seed
	if sess.seed == 0 {
		sess.seed = time.Now().UnixNano()
	}

	if s.sound {
		p, err := audio.Open(soundVolume)
		if err != nil {
			// The game is playable without sound
			logger.Warn("sound disabled", "error", err)
		} else {
			sess.sinks = append(sess.sinks, p)
			sess.closers = append(sess.closers, p.Close)
		}
	}

	logger.Info("session ready",
		"config", sess.source,
		"difficulty", s.difficulty,
		"tick_rate", sess.cfg.Loop.TickRate,
		"seed", sess.seed,
		"sound", len(sess.sinks) > 0,
	)
	return sess, nil
}

// newGame measures the viewport and creates the game.
func (s *session) newGame(vp frame.Viewport, density float64) (*veggie.Game, error) {
	rt, err := frame.Runtime(vp, density, s.cfg.Loop.TickRate, s.seed)
	if err != nil {
		return nil, err
	}
	s.logger.Info("viewport", "width", rt.ScreenW, "height", rt.ScreenH, "density", rt.Density)

	return veggie.New(veggie.Options{
		Config:  s.cfg,
		Runtime: rt,
		Player:  entity(s.player),
		Hazard:  entity(s.hazard),
	})
}

// Close releases the log file and the audio device, newest first.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func entity(sp sprites.Sprite) veggie.Entity {
	return veggie.Entity{Size: sp.Size, Scale: sp.Scale}
}

// fatal prints the error and exits like the rest of the CLI.
func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	os.Exit(1)
}
