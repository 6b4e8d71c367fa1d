// Package celebrate plays the new-record effects: a short vibration-like tone
// pattern, an optional desktop notification and an optional user command.
package celebrate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/goaltime/internal/config"
	"github.com/ayoisaiah/goaltime/internal/flow"
)

const (
	sampleRate beep.SampleRate = 44100
	toneFreq                   = 880
)

// Pattern alternates on and off periods, starting with on.
var Pattern = []time.Duration{
	200 * time.Millisecond,
	100 * time.Millisecond,
	200 * time.Millisecond,
}

// Celebrator runs the effects in the background so the caller never waits on
// audio or external commands.
type Celebrator struct {
	play   func() error
	notify func(title, msg string) error
	run    func(command string, o flow.Outcome) error
	cfg    config.CelebrationConfig
	wg     sync.WaitGroup
}

// New returns a Celebrator for the given settings.
func New(cfg config.CelebrationConfig) *Celebrator {
	return &Celebrator{
		cfg:    cfg,
		play:   playPattern,
		notify: sendNotification,
		run:    runCmd,
	}
}

// Duration is how long the visual celebration should stay on screen.
func (c *Celebrator) Duration() time.Duration {
	return c.cfg.Duration
}

// Celebrate starts the enabled effects and returns immediately.
func (c *Celebrator) Celebrate(o flow.Outcome) {
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		c.celebrate(o)
	}()
}

func (c *Celebrator) celebrate(o flow.Outcome) {
	if c.cfg.Sound {
		if err := c.play(); err != nil {
			slog.Error("unable to play celebration sound", slog.Any("error", err))
		}
	}

	if c.cfg.Notify {
		title := "New record!"
		msg := fmt.Sprintf(
			"%s stopped the clock at %.2fs",
			o.Player.Name,
			o.Elapsed,
		)

		if err := c.notify(title, msg); err != nil {
			slog.Error("unable to display notification", slog.Any("error", err))
		}
	}

	if err := c.run(c.cfg.Cmd, o); err != nil {
		slog.Error(
			"celebration command failed",
			slog.String("cmd", c.cfg.Cmd),
			slog.Any("error", err),
		)
	}
}

// Wait blocks until every started celebration has finished.
func (c *Celebrator) Wait() {
	c.wg.Wait()
}

// errPlaybackTimeout is returned when the speaker never drains the pattern.
var errPlaybackTimeout = errors.New("celebration sound did not finish playing")

// playbackMargin is added to the pattern length before playback is abandoned.
const playbackMargin = time.Second

// initSpeaker runs speaker.Init once and reports its result on every call.
var initSpeaker = sync.OnceValue(func() error {
	bufferSize := 10

	return speaker.Init(
		sampleRate,
		sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
})

// patternStreamer renders Pattern as tone and silence segments.
func patternStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	segments := make([]beep.Streamer, 0, len(Pattern))

	for i, d := range Pattern {
		if i%2 == 1 {
			segments = append(segments, beep.Silence(sr.N(d)))
			continue
		}

		tone, err := generators.SineTone(sr, toneFreq)
		if err != nil {
			return nil, err
		}

		segments = append(segments, beep.Take(sr.N(d), tone))
	}

	return beep.Seq(segments...), nil
}

func playPattern() error {
	return playWith(initSpeaker, speaker.Play, patternLength()+playbackMargin)
}

func patternLength() time.Duration {
	var total time.Duration

	for _, d := range Pattern {
		total += d
	}

	return total
}

// playWith queues the pattern on play and waits for it to finish, giving up
// after timeout.
func playWith(
	initFn func() error,
	play func(...beep.Streamer),
	timeout time.Duration,
) error {
	if err := initFn(); err != nil {
		return err
	}

	s, err := patternStreamer(sampleRate)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errPlaybackTimeout
	}
}

func sendNotification(title, msg string) error {
	return beeep.Notify(title, msg, "")
}

// runCmd executes the user's command with the result in its environment.
func runCmd(command string, o flow.Outcome) error {
	if command == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(command)
	if err != nil {
		return fmt.Errorf("unable to parse celebration.cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	cmd.Env = append(
		os.Environ(),
		"GOALTIME_PLAYER="+o.Player.Name,
		fmt.Sprintf("GOALTIME_ELAPSED=%f", o.Elapsed),
		fmt.Sprintf("GOALTIME_RANK=%d", o.Rank),
	)

	return cmd.Run()
}
