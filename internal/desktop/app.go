package desktop

import (
	"go.uber.org/zap"
)

type trayUI interface {
	Start()
	Stop()
}

// App wires the tray, its actions and the companion supervisor around a
// single exit channel.
type App struct {
	logger     *zap.SugaredLogger
	exitCh     chan Message
	supervisor *Supervisor
	actions    *Actions
	tray       trayUI
}

// NewApp builds the desktop application from opts.
func NewApp(opts Options, logger *zap.SugaredLogger) *App {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	exitCh := make(chan Message, 1)
	actions := NewActions(opts, exitCh, logger)
	return &App{
		logger:     logger,
		exitCh:     exitCh,
		supervisor: NewSupervisor(opts, logger),
		actions:    actions,
		tray:       NewTrayManager(actions, logger),
	}
}

// Actions exposes the menu actions, e.g. to request exit on an OS signal.
func (a *App) Actions() *Actions {
	return a.actions
}

// Run starts the companion and the tray, then blocks until Exit is requested.
// It returns only after the companion has terminated.
func (a *App) Run() error {
	if err := a.supervisor.Start(); err != nil {
		return err
	}

	go a.tray.Start()

	for msg := range a.exitCh {
		if msg == Exit {
			break
		}
	}

	a.logger.Info("exit requested")
	if err := a.supervisor.Shutdown(); err != nil {
		return err
	}

	a.tray.Stop()
	return nil
}
