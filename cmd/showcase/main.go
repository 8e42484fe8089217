// Package main is the showcase viewer command.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/showcase3d/internal/app"
	"github.com/Faultbox/showcase3d/internal/config"
	"github.com/Faultbox/showcase3d/internal/engine/camera"
	"github.com/Faultbox/showcase3d/internal/engine/projection"
	"github.com/Faultbox/showcase3d/internal/logger"
	"github.com/Faultbox/showcase3d/internal/showcase/session"
	"github.com/Faultbox/showcase3d/pkg/math"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &config.Flags{}
	var cfg *config.Config

	root := &cobra.Command{
		Use:          "showcase",
		Short:        "Scroll-driven 3D product showcase",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(flags)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	flags.Bind(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(&cfg),
		newSimulateCmd(&cfg),
		newProjectCmd(&cfg),
	)
	return root
}

func newRunCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the showcase window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Info("=== Showcase 3D ===")
			a, err := app.New(*cfg)
			if err != nil {
				logger.Error("failed to start", zap.Error(err))
				return err
			}
			defer a.Close()
			return a.Run()
		},
	}
}

func newSimulateCmd(cfg **config.Config) *cobra.Command {
	var scriptPath string
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play an interaction script headlessly",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script := session.DefaultScript()
			if scriptPath != "" {
				var err error
				if script, err = session.LoadScript(scriptPath); err != nil {
					return err
				}
			}

			s, err := session.New(*cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := s.Play(script, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "steps=%d frames=%d renders=%d mode=%s color=%s\n",
				res.Steps, res.Frames, res.Renders, res.Mode, res.Color)
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "YAML script to play instead of the built-in tour")
	return cmd
}

func newProjectCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "project X Y Z",
		Short: "Project a world point through the initial camera",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xyz [3]float32
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 32)
				if err != nil {
					return fmt.Errorf("coordinate %d: %w", i, err)
				}
				xyz[i] = float32(v)
			}

			c := *cfg
			pose := c.Camera.Initial
			cam := camera.New(pose.Position, pose.Target, c.Camera.FOV, c.Camera.Near, c.Camera.Far)
			vp := projection.Viewport{Width: float32(c.Graphics.Width), Height: float32(c.Graphics.Height)}

			sp := projection.WorldToScreen(math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, cam, vp)
			if sp == nil {
				return fmt.Errorf("point could not be projected")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "x=%.1f y=%.1f visible=%t\n", sp.X, sp.Y, sp.Visible)
			return nil
		},
	}
}
