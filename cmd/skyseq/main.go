// Command skyseq prints upcoming (or past) Sun and Moon events for a
// location, and the current Moon phase.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/skyseq"
)

func main() {
	if err := buildRoot().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// EventFlags holds the flags shared by the sun and moon commands.
type EventFlags struct {
	Lat     float64
	Lon     float64
	From    string
	Count   int
	Limit   time.Duration
	Reverse bool
	Height  float64
	Kinds   []string
	JSON    bool
}

func buildRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "skyseq",
		Short:         "Sun and Moon event calculator",
		Long:          "skyseq computes sunrise/sunset, twilight, culmination, moonrise/moonset and lunar phase events as ordered streams.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(buildSunCmd(), buildMoonCmd(), buildPhaseCmd())
	return root
}

func registerEventFlags(cmd *cobra.Command, f *EventFlags) {
	cmd.Flags().Float64Var(&f.Lat, "lat", 0, "latitude in degrees (north positive)")
	cmd.Flags().Float64Var(&f.Lon, "lon", 0, "longitude in degrees (east positive, west negative)")
	cmd.Flags().StringVar(&f.From, "from", "", "start instant, RFC 3339 (default: now)")
	cmd.Flags().IntVar(&f.Count, "count", 10, "number of events to print")
	cmd.Flags().DurationVar(&f.Limit, "limit", skyseq.DefaultLimit, "how far from the start to search")
	cmd.Flags().BoolVar(&f.Reverse, "reverse", false, "search backward in time")
	cmd.Flags().Float64Var(&f.Height, "height", 0, "observer elevation in meters")
	cmd.Flags().StringSliceVar(&f.Kinds, "kinds", nil, "event kinds to include (default: a sensible set)")
	cmd.Flags().BoolVar(&f.JSON, "json", false, "output as JSON")
}

func (f *EventFlags) start() (time.Time, error) {
	if f.From == "" {
		return time.Now(), nil
	}
	return time.Parse(time.RFC3339, f.From)
}

func (f *EventFlags) options() []skyseq.Option {
	opts := []skyseq.Option{skyseq.WithLimit(f.Limit), skyseq.WithElevation(f.Height)}
	if f.Reverse {
		opts = append(opts, skyseq.Reversed())
	}
	return opts
}

func (f *EventFlags) warnOrigin() {
	if f.Lat == 0 && f.Lon == 0 {
		slog.Warn("lat=0 lon=0 (Gulf of Guinea); use --lat and --lon to set a real location")
	}
}

func buildSunCmd() *cobra.Command {
	flags := &EventFlags{}
	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Print solar events (sunrise, sunset, twilight, noon, ...)",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.warnOrigin()
			start, err := flags.start()
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			loc, err := skyseq.NewLocation(flags.Lat, flags.Lon)
			if err != nil {
				return err
			}
			kinds, err := parseSolarKinds(flags.Kinds)
			if err != nil {
				return err
			}
			q, err := skyseq.NewSolarSequence(start, loc, kinds, flags.options()...)
			if err != nil {
				return err
			}

			type row struct {
				Kind string    `json:"kind"`
				Time time.Time `json:"time"`
			}
			var rows []row
			for _, ev := range q.Collect(flags.Count) {
				rows = append(rows, row{Kind: ev.Kind.String(), Time: ev.Time})
			}
			return printRows(cmd, rows, flags.JSON, func(r row) string {
				return fmt.Sprintf("%-22s %s", r.Kind, r.Time.Format(time.RFC3339))
			})
		},
	}
	registerEventFlags(cmd, flags)
	return cmd
}

func buildMoonCmd() *cobra.Command {
	flags := &EventFlags{}
	cmd := &cobra.Command{
		Use:   "moon",
		Short: "Print lunar events (moonrise, moonset, phases)",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.warnOrigin()
			start, err := flags.start()
			if err != nil {
				return fmt.Errorf("parsing --from: %w", err)
			}
			loc, err := skyseq.NewLocation(flags.Lat, flags.Lon)
			if err != nil {
				return err
			}
			kinds, err := parseLunarKinds(flags.Kinds)
			if err != nil {
				return err
			}
			q, err := skyseq.NewLunarSequence(start, loc, kinds, flags.options()...)
			if err != nil {
				return err
			}

			type row struct {
				Kind       string    `json:"kind"`
				Time       time.Time `json:"time"`
				DistanceKm float64   `json:"distance_km"`
			}
			var rows []row
			for _, ev := range q.Collect(flags.Count) {
				rows = append(rows, row{Kind: ev.Kind.String(), Time: ev.Time, DistanceKm: ev.Distance})
			}
			if err := q.Err(); err != nil {
				return err
			}
			return printRows(cmd, rows, flags.JSON, func(r row) string {
				return fmt.Sprintf("%-14s %s  %8.0f km", r.Kind, r.Time.Format(time.RFC3339), r.DistanceKm)
			})
		},
	}
	registerEventFlags(cmd, flags)
	return cmd
}

// PhaseFlags holds flags for the phase command.
type PhaseFlags struct {
	At   string
	JSON bool
}

func buildPhaseCmd() *cobra.Command {
	flags := &PhaseFlags{}
	cmd := &cobra.Command{
		Use:   "phase",
		Short: "Print the Moon's current illumination and phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if flags.At != "" {
				var err error
				at, err = time.Parse(time.RFC3339, flags.At)
				if err != nil {
					return fmt.Errorf("parsing --at: %w", err)
				}
			}
			ill := skyseq.MoonIllumination(at)
			if flags.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ill)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %.1f%% illuminated (elongation %.1f°)\n",
				at.Format(time.RFC3339), ill.Name, ill.Fraction*100, ill.Elongation)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.At, "at", "", "instant to evaluate, RFC 3339 (default: now)")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "output as JSON")
	return cmd
}

func printRows[T any](cmd *cobra.Command, rows []T, asJSON bool, line func(T) string) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, r := range rows {
		fmt.Fprintln(cmd.OutOrStdout(), line(r))
	}
	return nil
}

var solarKindNames = func() map[string]skyseq.SolarKind {
	m := make(map[string]skyseq.SolarKind)
	for _, k := range skyseq.AllSolarKinds() {
		m[strings.ReplaceAll(k.String(), " ", "-")] = k
	}
	return m
}()

func parseSolarKinds(names []string) ([]skyseq.SolarKind, error) {
	if len(names) == 0 {
		return nil, nil // library default
	}
	kinds := make([]skyseq.SolarKind, 0, len(names))
	for _, n := range names {
		k, ok := solarKindNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown solar kind %q", n)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

var lunarKindNames = map[string]skyseq.LunarKind{
	"moonrise":      skyseq.Moonrise,
	"moonset":       skyseq.Moonset,
	"new-moon":      skyseq.NewMoon,
	"first-quarter": skyseq.FirstQuarter,
	"full-moon":     skyseq.FullMoon,
	"last-quarter":  skyseq.LastQuarter,
}

func parseLunarKinds(names []string) ([]skyseq.LunarKind, error) {
	if len(names) == 0 {
		return nil, nil // library default
	}
	kinds := make([]skyseq.LunarKind, 0, len(names))
	for _, n := range names {
		k, ok := lunarKindNames[strings.ToLower(n)]
		if !ok {
			return nil, fmt.Errorf("unknown lunar kind %q", n)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
