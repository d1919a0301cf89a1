package app

import (
	"context"
	"fmt"

	"github.com/vk/workgridgo/internal/builder"
	"github.com/vk/workgridgo/internal/ctxlog"
	"github.com/vk/workgridgo/internal/settings"
)

// Run executes the main application logic: load settings and the project
// model, build the root worker, validate it, and print the flattened
// structure overview.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var settingsPaths []string
	if a.cfg.SettingsPath != "" {
		settingsPaths = append(settingsPaths, a.cfg.SettingsPath)
	}
	cfg, err := settings.Load(ctx, settingsPaths...)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.logger.Debug("Settings loaded.", "keys", len(cfg.Keys()))

	model, err := a.loader.Load(ctx, a.cfg.ProjectPath)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}
	a.logger.Debug("Project model loaded.", "workers", len(model.Workers))

	b, err := builder.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create builder: %w", err)
	}
	root, err := b.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build project: %w", err)
	}

	if err := root.Validate(); err != nil {
		return fmt.Errorf("project failed validation: %w", err)
	}

	overview, err := root.Overview()
	if err != nil {
		return fmt.Errorf("failed to walk project: %w", err)
	}
	a.logger.Info("Project assembled.", "root", root.Name(), "components", len(overview))

	fmt.Fprintf(a.outW, "%s\n%s", root.Name(), overview.String())

	a.logger.Debug("App.Run method finished.")
	return nil
}
