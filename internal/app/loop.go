package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/felipeagc/sf/internal/spawn"
	statepkg "github.com/felipeagc/sf/internal/state"
)

// Run drives the synchronous event loop: draw, block on input, apply.
// Every navigation operation completes before the next event is read.
func (app *Application) Run() {
	for !app.shouldQuit {
		app.renderer.Render(app.tabs, app.status)

		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}

		action := app.input.Translate(ev)
		if action == nil {
			continue
		}
		app.handleAction(action)
	}
}

func (app *Application) handleAction(action statepkg.Action) {
	// Status messages are transient: any action clears the previous one.
	app.status = ""

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return
	case statepkg.ResizeAction:
		app.log.WithFields(logrus.Fields{"w": a.Width, "h": a.Height}).Debug("resize")
		app.screen.Sync()
		return
	}

	request, _ := app.reducer.Reduce(app.tabs, action)
	if request != nil {
		app.execute(*request)
	}
}

// execute runs a launch request. Foreground launches bracket the child
// with a screen suspend so it owns the terminal; the loop blocks until
// it exits.
func (app *Application) execute(req spawn.Request) {
	log := app.log.WithFields(logrus.Fields{
		"program": req.Program,
		"mode":    req.Mode.String(),
	})

	if req.Mode == spawn.Foreground {
		if err := app.screen.Suspend(); err != nil {
			app.status = fmt.Sprintf("cannot suspend screen: %v", err)
			return
		}
		err := app.launcher.Launch(req.Program, req.Args, req.Mode)
		if resumeErr := app.screen.Resume(); resumeErr == nil {
			app.screen.Sync()
		}
		if err != nil {
			app.status = fmt.Sprintf("%s failed: %v", req.Program, err)
			log.WithError(err).Warn("foreground launch failed")
		}
		return
	}

	if err := app.launcher.Launch(req.Program, req.Args, req.Mode); err != nil {
		app.status = fmt.Sprintf("%s failed: %v", req.Program, err)
		log.WithError(err).Warn("launch failed")
		return
	}
	log.Debug("launched")
}
