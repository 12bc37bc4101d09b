package main

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/Garsondee/Fireworks/internal/config"
	"github.com/Garsondee/Fireworks/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	firstLaunchFrame    int
	firstDetonateFrame  int
	firstSecondaryFrame int
	firstHeartFrame     int

	launched        int
	manualLaunches  int
	autoLaunches    int
	extraLaunches   int
	detonations     int
	secondaryBursts int
	heartBursts     int
	spawned         int
	peakParticles   int
	liveParticles   int
	reaped          int
	drawOps         int
	colours         map[string]struct{}
}

var scenarios = []string{"auto", "barrage", "hearts"}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var scenario string
	var width, height int

	settings := config.Default()
	tuning := config.DefaultTuning()
	config.RegisterFlags(flag.CommandLine, &settings)
	config.RegisterTuningFlags(flag.CommandLine, &tuning)
	flag.IntVar(&runs, "runs", 5, "number of headless show runs")
	flag.IntVar(&frames, "frames", 3600, "frames per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "auto", "scenario name: "+strings.Join(scenarios, ", "))
	flag.IntVar(&width, "width", 1280, "viewport width")
	flag.IntVar(&height, "height", 720, "viewport height")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		return
	}
	if !knownScenario(scenario) {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, strings.Join(scenarios, ", "))
		return
	}
	if scenario == "hearts" {
		settings.Color = config.ThemeRomantic
		settings.AutoLaunch = false
	}
	if scenario == "barrage" {
		settings.AutoLaunch = false
	}
	if err := settings.Validate(); err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}

	fmt.Printf("=== Headless Fireworks Report ===\n")
	fmt.Printf("scenario=%s runs=%d frames=%d seed_base=%d seed_step=%d\n", scenario, runs, frames, seedBase, seedStep)
	fmt.Printf("settings: %s\n\n", settings.FlagLine())

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runScenario(scenario, i+1, seed, frames, width, height, settings, tuning)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

func knownScenario(name string) bool {
	for _, s := range scenarios {
		if s == name {
			return true
		}
	}
	return false
}

// runScenario drives one show. "auto" leaves launching to the scheduler,
// "barrage" and "hearts" fire a manual rocket every 20 frames across the
// viewport.
func runScenario(scenario string, runIndex int, seed int64, frames, width, height int, s config.Settings, t config.Tuning) (runStats, error) {
	hs, err := game.NewHeadlessSim(
		game.WithViewportSize(width, height),
		game.WithSeed(seed),
		game.WithSettings(s),
		game.WithSimTuning(t),
	)
	if err != nil {
		return runStats{}, err
	}

	const barrageEvery = 20
	for f := 0; f < frames; f++ {
		if scenario != "auto" && f%barrageEvery == 0 {
			slot := (f / barrageEvery) % 8
			hs.Show.Launch(float64(width) * (float64(slot) + 0.5) / 8)
		}
		if err := hs.Step(); err != nil {
			return runStats{}, err
		}
	}

	entries := hs.SimLog.Entries()
	colours := map[string]struct{}{}
	for _, e := range entries {
		if e.Category != "rocket" {
			continue
		}
		switch e.Key {
		case "detonate":
			if fields := strings.Fields(e.Value); len(fields) > 1 {
				colours[fields[1]] = struct{}{}
			}
		case "secondary", "heart":
			colours[e.Value] = struct{}{}
		}
	}

	st := hs.Show.Stats()
	return runStats{
		runIndex:            runIndex,
		seed:                seed,
		firstLaunchFrame:    firstFrame(entries, "launch", ""),
		firstDetonateFrame:  firstFrame(entries, "rocket", "detonate"),
		firstSecondaryFrame: firstFrame(entries, "rocket", "secondary"),
		firstHeartFrame:     firstFrame(entries, "rocket", "heart"),
		launched:            st.Launched,
		manualLaunches:      hs.SimLog.CountCategory("launch", "manual"),
		autoLaunches:        hs.SimLog.CountCategory("launch", "auto"),
		extraLaunches:       hs.SimLog.CountCategory("launch", "extra"),
		detonations:         st.Detonations,
		secondaryBursts:     st.SecondaryBursts,
		heartBursts:         st.HeartBursts,
		spawned:             st.ParticlesSpawned,
		peakParticles:       st.PeakParticles,
		liveParticles:       len(hs.Show.Particles()),
		reaped:              st.RocketsReaped,
		drawOps:             hs.Surface.Total(),
		colours:             colours,
	}, nil
}

func firstFrame(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if key == "" || e.Key == key {
			return e.Frame
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("phase_markers: first_launch=%d first_detonation=%d first_secondary=%d first_heart=%d\n",
		rs.firstLaunchFrame, rs.firstDetonateFrame, rs.firstSecondaryFrame, rs.firstHeartFrame)
	fmt.Printf("launches: total=%d manual=%d auto=%d extra=%d\n",
		rs.launched, rs.manualLaunches, rs.autoLaunches, rs.extraLaunches)
	fmt.Printf("bursts: detonations=%d secondary=%d hearts=%d heart_rate=%.1f%%\n",
		rs.detonations, rs.secondaryBursts, rs.heartBursts, heartRate(rs.heartBursts, rs.detonations)*100)
	fmt.Printf("particles: spawned=%d peak=%d live_at_end=%d rockets_reaped=%d draw_ops=%d\n",
		rs.spawned, rs.peakParticles, rs.liveParticles, rs.reaped, rs.drawOps)
	fmt.Printf("colours: %s\n", joinSet(rs.colours))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalLaunched := 0
	totalDetonations := 0
	totalSecondary := 0
	totalHearts := 0
	totalSpawned := 0
	totalDrawOps := 0
	peak := 0
	detonateFrames := make([]int, 0, len(all))
	colours := map[string]struct{}{}

	for _, rs := range all {
		totalLaunched += rs.launched
		totalDetonations += rs.detonations
		totalSecondary += rs.secondaryBursts
		totalHearts += rs.heartBursts
		totalSpawned += rs.spawned
		totalDrawOps += rs.drawOps
		if rs.peakParticles > peak {
			peak = rs.peakParticles
		}
		if rs.firstDetonateFrame >= 0 {
			detonateFrames = append(detonateFrames, rs.firstDetonateFrame)
		}
		for c := range rs.colours {
			colours[c] = struct{}{}
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("avg_per_run: launched=%.1f detonations=%.1f secondary=%.1f hearts=%.1f spawned=%.1f draw_ops=%.1f\n",
		avg(totalLaunched, len(all)), avg(totalDetonations, len(all)), avg(totalSecondary, len(all)),
		avg(totalHearts, len(all)), avg(totalSpawned, len(all)), avg(totalDrawOps, len(all)))
	fmt.Printf("heart_rate=%.1f%% peak_particles=%d avg_first_detonation_frame=%s\n",
		heartRate(totalHearts, totalDetonations)*100, peak, avgFrameString(detonateFrames))
	fmt.Printf("colours_seen=%d [%s]\n", len(colours), joinSet(colours))
}

func heartRate(hearts, detonations int) float64 {
	if detonations <= 0 {
		return 0
	}
	return float64(hearts) / float64(detonations)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgFrameString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
