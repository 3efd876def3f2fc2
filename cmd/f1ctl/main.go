// Command f1ctl is the F1nsight terminal client.
//
// Usage:
//
//	f1ctl standings --season 2024
//	f1ctl standings constructors --season 2024
//	f1ctl career max_verstappen
//	f1ctl compare "Max Verstappen" "Lando Norris" --season 2025
//	f1ctl news --page-size 10
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/f1nsight/f1nsight-api/internal/cache"
	"github.com/f1nsight/f1nsight-api/internal/config"
	"github.com/f1nsight/f1nsight-api/internal/ergast"
	"github.com/f1nsight/f1nsight-api/internal/external"
	"github.com/f1nsight/f1nsight-api/internal/f1"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "f1ctl",
		Short: "F1nsight terminal client",
	}

	root.AddCommand(standingsCmd())
	root.AddCommand(careerCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(newsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService builds the aggregation service from the environment.
func newService() (*f1.Service, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	appCache := cache.New(cfg.CacheEnabled)
	client := ergast.NewClient(ergast.ClientConfig{
		BaseURL:           cfg.ErgastBaseURL,
		Timeout:           cfg.ErgastTimeout,
		RequestsPerMinute: cfg.ErgastRequestsPerMinute,
		Retry:             ergast.RetryPolicy{MaxAttempts: cfg.ErgastMaxRetries, BaseDelay: cfg.ErgastRetryDelay},
	}, appCache, logger)
	return f1.NewService(client, appCache, logger), cfg, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// --------------------------------------------------------------------------
// standings command
// --------------------------------------------------------------------------

func standingsCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "Print the driver championship standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			standings := svc.DriverStandings(ctx, season)
			if len(standings) == 0 {
				fmt.Println("no standings data")
				return nil
			}
			for _, st := range standings {
				fmt.Printf("%3s  %-28s %-22s %7s pts  %s wins\n",
					st.Position, st.Driver, st.Constructor, st.Points, st.Wins)
			}
			return nil
		},
	}
	cmd.AddCommand(constructorStandingsCmd())
	cmd.Flags().StringVar(&season, "season", "", "Season year (defaults to current)")
	return cmd
}

func constructorStandingsCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "constructors",
		Short: "Print the constructor championship standings",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			standings := svc.ConstructorStandings(ctx, season)
			if len(standings) == 0 {
				fmt.Println("no standings data")
				return nil
			}
			for _, st := range standings {
				fmt.Printf("%3s  %-28s %7s pts  %s wins\n",
					st.Position, st.Constructor, st.Points, st.Wins)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season year (defaults to current)")
	return cmd
}

// --------------------------------------------------------------------------
// career command
// --------------------------------------------------------------------------

func careerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "career <driver-id>",
		Short: "Print a driver's career statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			stats := svc.CareerStats(ctx, args[0])
			if stats == nil {
				fmt.Println("no career data for", args[0])
				return nil
			}
			fmt.Printf("races:   %d\n", stats.TotalRaces)
			fmt.Printf("wins:    %d\n", stats.TotalWins)
			fmt.Printf("podiums: %d\n", stats.TotalPodiums)
			fmt.Printf("best:    %s\n", stats.BestFinish)
			fmt.Printf("seasons: %s - %s\n", stats.FirstSeason, stats.LastSeason)
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// compare command
// --------------------------------------------------------------------------

func compareCmd() *cobra.Command {
	var season string
	cmd := &cobra.Command{
		Use:   "compare <driver-a> <driver-b>",
		Short: "Compare two drivers' cumulative points across a season",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			c := svc.CompareDrivers(ctx, season, args[0], args[1])
			if len(c.Races) == 0 {
				fmt.Println("no completed races")
				return nil
			}
			fmt.Printf("%-32s %12s %12s\n", "race", c.DriverA, c.DriverB)
			for i, race := range c.Races {
				fmt.Printf("%-32s %12.1f %12.1f\n", race, c.PointsA[i], c.PointsB[i])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&season, "season", "", "Season year (defaults to current)")
	return cmd
}

// --------------------------------------------------------------------------
// news command
// --------------------------------------------------------------------------

func newsCmd() *cobra.Command {
	var sources string
	var pageSize int
	cmd := &cobra.Command{
		Use:   "news",
		Short: "Print filtered F1 news headlines",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := external.NewNewsService(cfg.NewsAPIKey, cfg.NewsBaseURL, cache.New(cfg.CacheEnabled), logger)
			if err != nil {
				return fmt.Errorf("news service unavailable: %w", err)
			}
			ctx, cancel := signalContext()
			defer cancel()

			resp := svc.GetNews(ctx, sources, pageSize, 1)
			if resp.Status != "success" {
				fmt.Println("news fetch failed")
				return nil
			}
			for _, a := range resp.Articles {
				fmt.Printf("%-18s %s\n", a.Source, a.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sources, "sources", "", "Comma-separated source IDs")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Number of articles")
	return cmd
}
