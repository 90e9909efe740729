package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/payroll-zero/backend/internal/jurisdiction"
	"github.com/payroll-zero/backend/internal/models"
	"github.com/payroll-zero/backend/internal/plan"
	"github.com/payroll-zero/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var errPlanRejected = errors.New("at least one allocation of the plan was rejected")

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "payroll-zero",
		Short:         "Backend for multi-state work allocations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check PLAN...",
		Short: "Validate allocation plans in YAML or JSON format without a database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return check(cmd.OutOrStdout(), args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), router.Version())
		},
	})

	return cmd
}

func configureLogging() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

func serve(ctx context.Context) error {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return errors.New("environment variable API_URL must be set")
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		return errors.New("environment variable API_URL must be a valid URL")
	}

	// Create data directory
	dataDir, ok := os.LookupEnv("DATA_DIR")
	if !ok {
		dataDir = filepath.Join(".", "data")
	}

	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return err
	}

	err = models.Connect(filepath.Join(dataDir, "payroll-zero.db"))
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(url)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(r.Group(url.Path))

	port, ok := os.LookupEnv("PORT")
	if !ok {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", srv.Addr).Msg("Listening")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		return err
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// check validates each plan file and prints one line per allocation.
func check(out io.Writer, paths []string) error {
	table := jurisdiction.Default()
	rejected := false

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}

		p, err := plan.Load(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		fmt.Fprintf(w, "%s\t%s\n", path, p.Employee)
		primary := primaryState(p)
		for _, r := range plan.Check(table, p) {
			end := r.Entry.End
			if end == "" {
				end = "open"
			}

			verdict := "ok"
			if !r.Accepted() {
				verdict = r.Err.Error()
				rejected = true
			}

			code := jurisdiction.Normalize(r.Entry.State)
			fmt.Fprintf(w, "\t%s\t%s\t%s%%\t%s\t%s\t%s\t%s\n", code, table.Name(code), r.Entry.Percentage, r.Entry.Effective, end, verdict, stateNotes(table, primary, code))
		}
	}

	if rejected {
		return errPlanRejected
	}

	return nil
}

// primaryState returns the normalized code of the first primary entry of the
// plan, or the empty string if no entry is primary.
func primaryState(p plan.Plan) string {
	for _, e := range p.Allocations {
		if e.Primary {
			return jurisdiction.Normalize(e.State)
		}
	}
	return ""
}

// stateNotes describes what payroll needs to know about withholding for the state.
func stateNotes(table jurisdiction.Table, primary, code string) string {
	var notes []string
	if table.NoIncomeTax(code) {
		notes = append(notes, "no state income tax")
	}

	if primary != "" && primary != code && table.Reciprocal(primary, code) {
		notes = append(notes, "reciprocity with "+primary)
	}

	return strings.Join(notes, ", ")
}
