package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/covid-trends/api"
	"github.com/bitmark-inc/covid-trends/consts"
	"github.com/bitmark-inc/covid-trends/external/csse"
	"github.com/bitmark-inc/covid-trends/schema"
	"github.com/bitmark-inc/covid-trends/session"
	"github.com/bitmark-inc/covid-trends/utils"
)

var (
	server  *api.Server
	metrics io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("source.timeout", 30*time.Second)
	viper.SetDefault("trend.data_type", string(schema.DataTypeConfirmed))
	viper.SetDefault("trend.window", consts.DefaultWindowSize)
	viper.SetDefault("trend.min_cases", consts.DefaultMinCases)
	viper.SetDefault("trend.countries", consts.CountriesOfInterest)
	viper.SetDefault("i18n.lang", "en")
	viper.SetDefault("metrics.interval", time.Second)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("covidtrends")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown chart api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if metrics != nil {
			if err := metrics.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	utils.InitI18NBundle(viper.GetString("i18n.dir"))
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	var rootScope tally.Scope
	rootScope, metrics = utils.NewMetricsScope("covidtrends", viper.GetDuration("metrics.interval"))

	timeout := viper.GetDuration("source.timeout")
	httpClient := &http.Client{
		Timeout: timeout,
	}
	source := csse.NewCSSE(httpClient, viper.GetString("source.confirmed"), viper.GetString("source.deaths"))

	initial := schema.Selection{
		DataType:  schema.DataType(viper.GetString("trend.data_type")),
		Countries: viper.GetStringSlice("trend.countries"),
		Window:    viper.GetInt("trend.window"),
		Normalize: viper.GetBool("trend.normalize"),
	}
	if err := session.ValidateSelection(initial); err != nil {
		log.WithField("prefix", "init").Panic(err)
	}

	s := session.New(source, initial,
		session.WithScope(rootScope),
		session.WithMinCases(viper.GetFloat64("trend.min_cases")),
		session.WithLanguage(viper.GetString("i18n.lang")),
	)
	log.WithField("prefix", "init").Info("Initialized chart session")

	// First fetch runs while the server comes up.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := s.Refresh(ctx); err != nil {
			log.WithField("prefix", "init").Warn("initial fetch: ", err)
		}
	}()

	// Init http server
	server = api.NewServer(s, timeout)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
