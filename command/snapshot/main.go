package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-trends/consts"
	"github.com/bitmark-inc/covid-trends/external/csse"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
)

var (
	dataType  string
	window    int
	normalize bool
	countries []string
	day       int
	lang      string
	minCases  float64
	timeout   time.Duration
	pretty    bool
)

var rootCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one chart render as JSON",
	Long: `Fetch the CSSE time series once, derive the trajectory chart for the
given selection and print the chart data to stdout.

Source urls can be overridden with COVIDTRENDS_SOURCE_CONFIRMED and
COVIDTRENDS_SOURCE_DEATHS.`,
	SilenceUsage: true,
	RunE:         runSnapshot,
}

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidtrends")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&dataType, "type", "t", string(schema.DataTypeConfirmed), "data type: confirmed or deaths")
	flags.IntVarP(&window, "window", "w", consts.DefaultWindowSize, "slope window in days: 7 or 14")
	flags.BoolVarP(&normalize, "normalize", "n", false, "plot per 100,000 people")
	flags.StringSliceVar(&countries, "countries", consts.CountriesOfInterest, "countries to plot")
	flags.IntVarP(&day, "day", "d", 0, "day cursor, 0 for the latest date")
	flags.StringVar(&lang, "lang", "en", "language of chart labels")
	flags.Float64Var(&minCases, "min-cases", consts.DefaultMinCases, "minimum count to plot")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "fetch timeout")
	flags.BoolVar(&pretty, "pretty", false, "indent the output")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	sel := schema.Selection{
		DataType:  schema.DataType(dataType),
		Countries: countries,
		Window:    window,
		Normalize: normalize,
	}
	if err := session.ValidateSelection(sel); err != nil {
		return err
	}

	source := csse.NewCSSE(&http.Client{Timeout: timeout},
		viper.GetString("source.confirmed"), viper.GetString("source.deaths"))

	s := session.New(source, sel,
		session.WithMinCases(minCases),
		session.WithLanguage(lang),
	)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := s.Refresh(ctx); err != nil {
		return fmt.Errorf("fetch %s: %w", sel.DataType, err)
	}
	s.SetDay(day)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s.Render())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
