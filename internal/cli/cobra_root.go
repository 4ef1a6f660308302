package cli

import (
	"os"

	"github.com/spf13/cobra"

	"todo-manager/internal/config"
	"todo-manager/internal/services"
)

// RootCommand represents the base command for the console application
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command for the interactive console
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An in-memory console todo application",
		Long: `todo is an interactive console application for managing a task list.

Tasks live in memory for the duration of the session. The menu offers six
actions: add a task, view all tasks, mark a task complete, update a task's
description, delete a task, and exit.

CONFIGURATION:
  TODO_VALIDATION_DESCRIPTION_MAX   Maximum description length (default: 256)
  TODO_APP_VERBOSE                  Enable verbose output (default: false)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := services.NewLocalTaskService(cfg)
			menu := NewMenu(tasks, os.Stdin, cmd.OutOrStdout(), cfg.Validation.DescriptionMaxLength)
			menu.Run()
			return nil
		},
	}

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}
