package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/subway/config"
	"github.com/katalvlaran/subway/route"
	"github.com/katalvlaran/subway/store"
)

// app is the state shared by subcommands, resolved in PersistentPreRunE.
type app struct {
	configPath  string
	networkPath string

	cfg config.Config
	log *slog.Logger
	svc *route.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:           "subwayctl",
		Short:         "Shortest routes and fares on a subway network",
		Long:          "subwayctl loads a subway network from YAML and finds priced shortest routes, shows lines, or serves the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (YAML)")
	cmd.PersistentFlags().StringVarP(&a.networkPath, "network", "n", "", "network seed file (YAML); overrides network.seedFile")

	cmd.AddCommand(newRouteCmd(a), newLineCmd(a), newNetworkCmd(a), newReachableCmd(a), newServeCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	a.log = a.cfg.Log.NewLogger(cmd.ErrOrStderr())

	seedPath := a.networkPath
	if seedPath == "" {
		seedPath = a.cfg.Network.SeedFile
	}
	if seedPath == "" {
		return errors.New("no network: pass --network or set network.seedFile")
	}
	seed, err := store.LoadSeed(seedPath)
	if err != nil {
		return err
	}
	m, err := store.NewMemoryFromSeed(seed)
	if err != nil {
		return fmt.Errorf("load network %s: %w", seedPath, err)
	}

	opts := []route.Option{
		route.WithLogger(a.log),
		route.WithMaxSearchVisits(a.cfg.Route.MaxSearchVisits),
	}
	if a.cfg.Route.GraphCacheTTL > 0 {
		opts = append(opts, route.WithGraphCache(a.cfg.Route.GraphCacheTTL))
	}
	a.svc, err = route.New(route.Repositories{
		Stations: m.Stations(),
		Sections: m.Sections(),
		Lines:    m.Lines(),
		Store:    m,
	}, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("network loaded", slog.String("file", seedPath), slog.Uint64("revision", m.Revision()))

	return nil
}
