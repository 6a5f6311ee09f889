package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/confetti/audio"
	"github.com/lixenwraith/confetti/confetti"
	"github.com/lixenwraith/confetti/overlay"
	"github.com/lixenwraith/confetti/terminal"
)

// runCelebrate takes over the terminal for one celebration
func (a *app) runCelebrate(parent context.Context) (err error) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	palette, err := a.cfg.PaletteRGB()
	if err != nil {
		return err
	}

	term, err := terminal.New(a.cfg.GetColorMode())
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer term.Fini()

	// Ensure the terminal is usable even if rendering panics
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			a.logger.Error("celebration crashed", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("confetti crashed: %v", r)
		}
	}()

	hostOpts := []overlay.HostOption{
		overlay.WithLogger(a.logger),
		overlay.WithFrameInterval(a.cfg.GetFrameInterval()),
		overlay.WithMessage(a.cfg.Confetti.Message),
	}

	if a.cfg.Audio.Enabled {
		sm := audio.NewSoundManager(&audio.AudioConfig{
			Enabled:    true,
			SampleRate: audio.DefaultAudioConfig().SampleRate,
			Volume:     a.cfg.Audio.Volume,
		}, a.logger)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the celebration runs without sound
			a.logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sm.Cleanup()
			hostOpts = append(hostOpts, overlay.WithSound(sm))
		}
	}

	host := overlay.NewHost(term, hostOpts...)
	host.RenderFrame()

	err = host.Celebrate(ctx,
		confetti.WithDuration(a.cfg.GetDuration()),
		confetti.WithCount(a.cfg.Confetti.Count),
		confetti.WithPalette(palette),
	)
	return a.celebrateResult(err)
}

// celebrateResult maps the host outcome to the command result
// A recovered crash inside the host gets the same terminal reset as one on this goroutine
func (a *app) celebrateResult(err error) error {
	var pe *overlay.PanicError
	switch {
	case errors.As(err, &pe):
		terminal.EmergencyReset(os.Stdout)
		return fmt.Errorf("confetti crashed: %w", err)
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}
