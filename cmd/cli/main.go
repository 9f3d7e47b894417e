package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timetable/internal/catalog"
	"timetable/internal/config"
	"timetable/internal/report"
	"timetable/internal/solver"
)

var (
	validStrategies = []string{"first", "optimal"}
	generators      = map[string]func(*solver.Scheduler) error{
		"first":   (*solver.Scheduler).GenerateTimetable,
		"optimal": (*solver.Scheduler).GenerateOptimalTimetable,
	}
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}

	// Define arguments; environment variables provide the defaults
	strategyPtr := flag.String("strategy", cfg.Strategy, `Strategy to build the timetable. Allowed values are:
- "first" (commit to the first valid (slot, room) pair found) and
- "optimal" (pick the chronologically earliest valid pair per course), where "first" is the default`)
	filePathPtr := flag.String("file", cfg.InputFile, "Path to the catalog JSON file; if empty, the built-in demo catalog is used")
	outFilePtr := flag.String("out", cfg.OutputFile, "Path to the file where the rendered timetable will be written; if empty, it'll be written into the Standard Output")
	exportFilePtr := flag.String("export", cfg.ExportFile, "Path to a JSON file the schedule will be exported to; if empty, no export is performed")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	filePath := *filePathPtr
	outFile := *outFilePtr
	exportFile := *exportFilePtr

	// Validate arguments
	if !slices.Contains(validStrategies, strategy) {
		log.Fatalf("%v is not a valid strategy", strategy)
	}

	logger := newLogger(cfg)
	defer logger.Sync()

	// Extract catalog
	var cat *catalog.Catalog
	if filePath == "" {
		cat = catalog.Mock()
	} else {
		var err error
		cat, err = catalog.FromJSON(filePath)
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
	}

	// Run solver
	scheduler := solver.New(cat, solver.WithLogger(logger))
	err = generators[strategy](scheduler)
	entries := scheduler.GetSchedule()

	if err != nil {
		// A failed run keeps its partial schedule: render whatever was
		// committed, then explain the failure
		fmt.Fprintf(os.Stderr, "failed to generate timetable: %v\n", err)

		var noAssignment solver.NoValidAssignmentError
		if errors.As(err, &noAssignment) {
			explanation, explainErr := scheduler.ExplainFailure(noAssignment.CourseId)
			if explainErr == nil {
				fmt.Fprintln(os.Stderr, explanation)
			}
		}
	}

	writeOutput(outFile, cat, entries, err == nil)

	if exportFile != "" {
		file, createErr := os.Create(exportFile)
		if createErr != nil {
			log.Fatalf("cannot create export file: %v", createErr)
		}
		defer file.Close()
		if exportErr := report.ExportJSON(file, cat, entries); exportErr != nil {
			log.Fatalf("cannot export schedule: %v", exportErr)
		}
	}

	if err != nil {
		os.Exit(1)
	}
}

func writeOutput(outFile string, cat *catalog.Catalog, entries []solver.Assignment, complete bool) {
	w := os.Stdout
	if outFile != "" {
		file, err := os.Create(outFile)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		w = file
	}

	if err := report.Render(w, cat, entries); err != nil {
		log.Fatalf("cannot render timetable: %v", err)
	}
	fmt.Fprintln(w)
	if err := report.RenderByDay(w, cat, entries); err != nil {
		log.Fatalf("cannot render timetable by day: %v", err)
	}

	stats, err := report.Summarize(cat, entries)
	if err != nil {
		log.Fatalf("cannot summarize schedule: %v", err)
	}
	fmt.Fprintf(w, "\nCourses scheduled: %v/%v\n", stats.ScheduledCourses, stats.TotalCourses)
	fmt.Fprintf(w, "Rooms utilized: %v/%v\n", stats.UsedRooms, stats.TotalRooms)
	fmt.Fprintf(w, "Time slots used: %v/%v\n", stats.UsedSlots, stats.TotalSlots)
	if !complete {
		fmt.Fprintln(w, "Schedule is incomplete")
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Log.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	}
	if err := zapCfg.Level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	return logger
}
