package app

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/felipeagc/sf/internal/config"
	fsutil "github.com/felipeagc/sf/internal/fs"
	"github.com/felipeagc/sf/internal/spawn"
	statepkg "github.com/felipeagc/sf/internal/state"
	inputui "github.com/felipeagc/sf/internal/ui/input"
	renderui "github.com/felipeagc/sf/internal/ui/render"
)

// Application owns the screen and the navigation state for one run.
type Application struct {
	screen   tcell.Screen
	tabs     *statepkg.TabSet
	reducer  *statepkg.Reducer
	renderer *renderui.Renderer
	input    *inputui.Handler
	launcher spawn.Launcher
	log      *logrus.Logger

	status     string
	shouldQuit bool
}

// New initializes the terminal and builds the application rooted at the
// current working directory.
func New(cfg config.Config, log *logrus.Logger) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	tabs := statepkg.NewTabSet(fsutil.NewDirScanner(), cfg.Tabs, cwd, cfg.ShowHidden)

	app := &Application{
		screen:   screen,
		tabs:     tabs,
		reducer:  statepkg.NewReducer(cfg.OpenerCommand(), cfg.EditorCommand()),
		renderer: renderui.NewRenderer(screen, cfg.PaneRatio),
		input:    inputui.NewHandler(cfg.Keys),
		launcher: spawn.ExecLauncher{},
		log:      log,
	}

	tabs.Status = func(msg string) {
		app.status = msg
		log.Warn(msg)
	}

	log.WithField("root", tabs.Active().Path).Info("started")
	return app, nil
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
