package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/channingko-madden/weather-data/internal/api/http"
	"github.com/channingko-madden/weather-data/internal/config"
	"github.com/channingko-madden/weather-data/internal/logging"
	"github.com/channingko-madden/weather-data/internal/scheduler"
	"github.com/channingko-madden/weather-data/internal/store"
	"github.com/channingko-madden/weather-data/internal/weather"
)

// options is the explicit CLI configuration passed into the core entry
// points. Exactly one query mode may be set per invocation.
type options struct {
	file      string
	date      string
	dateRange string
	mean      string
	sample    string
	serve     bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var opts options
	flag.StringVar(&opts.file, "file", cfg.DataFile, "path to the JSON weather data file")
	flag.StringVar(&opts.file, "f", cfg.DataFile, "shorthand for -file")
	flag.StringVar(&opts.date, "date", "", "retrieve data for a single day, formatted as YYYY-MM-DD")
	flag.StringVar(&opts.date, "d", "", "shorthand for -date")
	flag.StringVar(&opts.dateRange, "range", "", "retrieve data for a date range, formatted as YYYY-MM-DD|YYYY-MM-DD")
	flag.StringVar(&opts.dateRange, "r", "", "shorthand for -range")
	flag.StringVar(&opts.mean, "mean", "", "mean of a variable over a date range, e.g. \"tmax 2022-01-01|2022-12-31\" (either order)")
	flag.StringVar(&opts.mean, "m", "", "shorthand for -mean")
	flag.StringVar(&opts.sample, "sample-history", "", "sample a date range from random donor years, e.g. \"2022-01-01|2022-12-31 2018|2022\" (either order)")
	flag.StringVar(&opts.sample, "s", "", "shorthand for -sample-history")
	flag.BoolVar(&opts.serve, "serve", false, "serve the query API over HTTP instead of running one query")
	flag.Parse()

	log := logging.New(cfg.AppEnv, cfg.LogLevel)

	if err := run(opts, cfg, log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, cfg *config.AppConfig, log *slog.Logger) error {
	modes := 0
	for _, set := range []bool{opts.date != "", opts.dateRange != "", opts.mean != "", opts.sample != "", opts.serve} {
		if set {
			modes++
		}
	}
	if modes == 0 {
		return errors.New("nothing to do: pass one of -date, -range, -mean, -sample-history, or -serve")
	}
	if modes > 1 {
		return errors.New("options -date, -range, -mean, -sample-history, and -serve are mutually exclusive")
	}
	if opts.file == "" {
		return errors.New("a weather data file is required: pass -file or set WEATHER_DATA_FILE")
	}

	archive := store.NewArchive()
	service := weather.NewService(archive, log)
	if err := service.LoadFile(opts.file); err != nil {
		return err
	}

	switch {
	case opts.date != "":
		return runDate(service, opts.date)
	case opts.dateRange != "":
		return runRange(service, opts.dateRange)
	case opts.mean != "":
		return runMean(service, opts.mean)
	case opts.sample != "":
		return runSampleHistory(service, opts.sample)
	}
	return serve(service, opts.file, cfg, log)
}

func runDate(service *weather.Service, date string) error {
	ts, ok := weather.DateToUnix(date)
	if !ok {
		return fmt.Errorf("%w: %q", weather.ErrMalformedDate, date)
	}

	rec, ok := service.Lookup(ts)
	if !ok {
		fmt.Fprintf(os.Stderr, "Data for date: %s is not available\n", date)
		return nil
	}
	return printRecords([]weather.Record{rec})
}

func runRange(service *weather.Service, rangeStr string) error {
	dates, err := weather.ParseDateRange(rangeStr)
	if err != nil {
		return err
	}
	return printRecords(service.Range(dates))
}

// runMean accepts the date range and variable name in either order,
// mirroring the original command line.
func runMean(service *weather.Service, arg string) error {
	tokens := strings.Fields(arg)
	if len(tokens) != 2 {
		return errors.New("-mean expects two values: a date range and a variable name")
	}

	rangeStr, variable := tokens[0], tokens[1]
	if _, err := weather.ParseDateRange(rangeStr); err != nil {
		rangeStr, variable = tokens[1], tokens[0]
	}

	dates, err := weather.ParseDateRange(rangeStr)
	if err != nil {
		return err
	}
	if !weather.KnownVariable(variable) {
		return fmt.Errorf("the variable %q is not recognized (want one of %s)",
			variable, strings.Join(weather.Variables, ", "))
	}

	mean := service.Mean(dates, variable)
	if math.IsNaN(mean) {
		fmt.Fprintf(os.Stderr,
			"Could not calculate a mean; data for variable %q is not present within the time range %s\n",
			variable, rangeStr)
		return nil
	}
	fmt.Printf("%.3f\n", mean)
	return nil
}

// runSampleHistory accepts the date range and year range in either
// order.
func runSampleHistory(service *weather.Service, arg string) error {
	tokens := strings.Fields(arg)
	if len(tokens) != 2 {
		return errors.New("-sample-history expects two values: a date range and a year range")
	}

	dateStr, yearStr := tokens[0], tokens[1]
	if _, err := weather.ParseDateRange(dateStr); err != nil {
		dateStr, yearStr = tokens[1], tokens[0]
	}

	dates, err := weather.ParseDateRange(dateStr)
	if err != nil {
		return err
	}
	years, err := weather.ParseYearRange(yearStr)
	if err != nil {
		return err
	}

	return printRecords(service.SampleHistory(dates, years))
}

func printRecords(records []weather.Record) error {
	out, err := weather.EncodePayload(records)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func serve(service *weather.Service, dataFile string, cfg *config.AppConfig, log *slog.Logger) error {
	sched := scheduler.New(service, dataFile, cfg.ReloadInterval, log)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "parseweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "parseweather",
		})
	})

	httpapi.RegisterRoutes(app, service)

	go func() {
		log.Info("serving weather queries", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
