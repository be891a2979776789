package game

import (
	"fmt"

	"frameinput/internal/config"
	"frameinput/internal/ebitenfeed"
	"frameinput/internal/input"
	"frameinput/internal/script"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
)

const (
	maxLogLines       = 12
	maxRecordedFrames = 60 * 60 * 5
)

// Demo is an ebiten.Game that feeds a Helper once per tick and logs what the
// snapshot reports.
type Demo struct {
	config   *config.Config
	helper   *input.Helper
	feeder   *ebitenfeed.Feeder
	recorder *script.Recorder
	logger   *golog.Logger

	recordPath string
	log        []string
}

// NewDemo wires a Helper to the live ebiten input. A non-empty recordPath
// records every folded frame and saves it as a script on Close.
func NewDemo(cfg *config.Config, recordPath string) *Demo {
	boundary := cfg.GetBoundary()
	helper := input.NewHelper(input.WithBoundary(boundary))
	feeder := ebitenfeed.NewFeeder(helper, ebitenfeed.EbitenSource{}, ebitenfeed.Options{
		Boundary:       boundary,
		RepeatDelay:    cfg.Input.KeyRepeatDelay,
		RepeatInterval: cfg.Input.KeyRepeatInterval,
		CaptureCursor:  cfg.Input.CaptureCursor,
		BurstThreshold: cfg.Input.EventBurstThreshold,
		LogEvents:      cfg.Log.ShowEvents,
		Logger:         cfg.Logger("[ebitenfeed]"),
	})

	d := &Demo{
		config:     cfg,
		helper:     helper,
		feeder:     feeder,
		logger:     cfg.Logger("[game]"),
		recordPath: recordPath,
	}
	if recordPath != "" {
		d.recorder = script.NewRecorder(cfg.Display.WindowTitle, boundary, maxRecordedFrames)
		feeder.SetRecorder(d.recorder)
	}
	return d
}

func (d *Demo) Update() error {
	d.feeder.Update()

	if ShouldQuit(d.helper) {
		d.logger.Info("The application was requested to close or the 'Q' key was released, quitting the application")
		return ebiten.Termination
	}

	d.handleHotkeys()

	for _, line := range Report(d.helper) {
		d.logger.Info(line)
		d.pushLog(line)
	}
	return nil
}

// handleHotkeys applies the demo's own bindings: F5 resets the step metrics.
func (d *Demo) handleHotkeys() {
	if d.helper.KeyPressed(input.F5) {
		d.feeder.Monitor().Reset()
		d.logger.Info("step metrics reset")
	}
}

func (d *Demo) Draw(screen *ebiten.Image) {
	d.drawHUD(screen)
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if d.config.Display.Resizable {
		return outsideWidth, outsideHeight
	}
	return d.config.GetScreenWidth(), d.config.GetScreenHeight()
}

// Close folds the final Destroyed frame and saves the recording, if any.
// Call it once RunGame has returned.
func (d *Demo) Close() error {
	d.feeder.Destroy()
	if d.recorder == nil {
		return nil
	}
	if err := d.recorder.Script().Save(d.recordPath); err != nil {
		return fmt.Errorf("failed to save recording: %w", err)
	}
	d.logger.Infof("recorded %d frames to %s", d.recorder.Len(), d.recordPath)
	return nil
}

func (d *Demo) pushLog(line string) {
	d.log = append(d.log, line)
	if n := len(d.log) - maxLogLines; n > 0 {
		d.log = append(d.log[:0], d.log[n:]...)
	}
}
