// cmd/roster/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	app "campus-roster/internal"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Recreate the roster schema, load the seed data and print the course rosters",
		Long: `roster drops and recreates the student, course and student_course tables,
loads the built-in seed data and prints each course roster.
Connection settings come from DB_* environment variables or ROSTER_CONFIG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, application *app.Application) error {
				return application.Populate(ctx, cmd.OutOrStdout())
			})
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "student <id>",
		Short: "Print one student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApplication(cmd.Context(), func(ctx context.Context, application *app.Application) error {
				return application.PrintStudent(ctx, cmd.OutOrStdout(), id)
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "course <id>",
		Short: "Print the students enrolled in a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withApplication(cmd.Context(), func(ctx context.Context, application *app.Application) error {
				return application.PrintCourse(ctx, cmd.OutOrStdout(), id)
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:       "dump <table>",
		Short:     "Print every row of a table",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"student", "course", "student_course"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), func(ctx context.Context, application *app.Application) error {
				return application.PrintTable(ctx, cmd.OutOrStdout(), args[0])
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only roster HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApplication(cmd.Context(), serve)
		},
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", arg, err)
	}
	return id, nil
}

// withApplication initializes the application, runs fn and shuts it down.
func withApplication(ctx context.Context, fn func(context.Context, *app.Application) error) error {
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer func() {
		if err := application.Shutdown(ctx); err != nil {
			application.Logger.Error("Application shutdown failed", "error", err)
		}
	}()
	return fn(ctx, application)
}

func serve(ctx context.Context, application *app.Application) error {
	server := &http.Server{
		Addr:         ":" + application.Config.ServerPort,
		Handler:      application.HTTPHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		application.Logger.Info("Starting HTTP server", "port", application.Config.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server failed to start: %w", err)
		}
	}

	application.Logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}
