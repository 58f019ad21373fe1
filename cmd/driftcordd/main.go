package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/driftcord/driftcord"
	"github.com/driftcord/driftcord/broker"
	"github.com/driftcord/driftcord/discord"
	"github.com/fasthttp/router"
	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"gopkg.in/natefinch/lumberjack.v2"
	"gopkg.in/yaml.v3"
)

const PermissionsDefault = 0o744

// Configuration is the daemon configuration file.
type Configuration struct {
	Logging struct {
		Level              string `yaml:"level"`
		FileLoggingEnabled bool   `yaml:"file_logging_enabled"`
		EncodeAsJSON       bool   `yaml:"encode_as_json"`
		Directory          string `yaml:"directory"`
		Filename           string `yaml:"filename"`
		MaxSize            int    `yaml:"max_size"`
		MaxBackups         int    `yaml:"max_backups"`
		MaxAge             int    `yaml:"max_age"`
		Compress           bool   `yaml:"compress"`
	} `yaml:"logging"`

	HTTP struct {
		Host string `yaml:"host"`
	} `yaml:"http"`

	Prometheus struct {
		Host string `yaml:"host"`
	} `yaml:"prometheus"`

	Producer struct {
		Type          string                 `yaml:"type"`
		ClientName    string                 `yaml:"client_name"`
		Configuration map[string]interface{} `yaml:"configuration"`
	} `yaml:"producer"`

	Applications []driftcord.ApplicationConfiguration `yaml:"applications"`
}

// RestResponse is the response shape of the status API.
type RestResponse struct {
	Response interface{} `json:"response,omitempty"`
	Error    string      `json:"error,omitempty"`
	Success  bool        `json:"success"`
}

func main() {
	_ = godotenv.Load()

	configurationPath := flag.String("configuration", os.Getenv("DRIFTCORD_CONFIGURATION"), "Path of configuration file")
	level := flag.String("level", "info", "Logging level")

	flag.Parse()

	if *configurationPath == "" {
		*configurationPath = "driftcord.yaml"
	}

	configuration, err := loadConfiguration(*configurationPath)
	if err != nil {
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}

	logger, err := newLogger(configuration, replaceIfEmpty(configuration.Logging.Level, *level))
	if err != nil {
		panic(fmt.Errorf("failed to create logger: %w", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	producer, err := broker.NewProducer(configuration.Producer.Type)
	if err != nil {
		logger.Panic().Err(err).Str("type", configuration.Producer.Type).Msg("Failed to create producer")
	}

	err = producer.Connect(ctx, configuration.Producer.ClientName, configuration.Producer.Configuration)
	if err != nil {
		logger.Panic().Err(err).Msg("Failed to connect producer")
	}

	driftcord.RegisterMetrics(prometheus.DefaultRegisterer)

	restInterface := discord.NewLimitedInterface()

	applications := make([]*driftcord.Application, 0, len(configuration.Applications))

	for i := range configuration.Applications {
		applicationConfiguration := &configuration.Applications[i]

		if applicationConfiguration.Token == "" {
			applicationConfiguration.Token = os.Getenv("DISCORD_TOKEN")
		}

		application := driftcord.
			NewApplication(applicationConfiguration, restInterface, logger).
			WithProducer(producer)

		err = application.Initialize(ctx)
		if err != nil {
			logger.Panic().Err(err).
				Str("identifier", applicationConfiguration.Identifier).
				Msg("Failed to initialize application")
		}

		applications = append(applications, application)

		go func(application *driftcord.Application) {
			ready, openErr := application.Open()
			if openErr != nil {
				logger.Error().Err(openErr).Msg("Failed to open application")

				return
			}

			<-ready
		}(application)
	}

	if configuration.Prometheus.Host != "" {
		go servePrometheus(logger, configuration.Prometheus.Host)
	}

	if configuration.HTTP.Host != "" {
		go serveStatusAPI(logger, configuration.HTTP.Host, applications)
	}

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info().Msg("Closing daemon")

	for _, application := range applications {
		application.Close()
	}

	producer.Close()
}

func loadConfiguration(path string) (*Configuration, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	configuration := &Configuration{}

	err = yaml.Unmarshal(file, configuration)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	return configuration, nil
}

func newLogger(configuration *Configuration, level string) (zerolog.Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("failed to parse level: %w", err)
	}

	zerolog.SetGlobalLevel(logLevel)

	writer := io.Writer(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.Stamp,
	})

	if configuration.Logging.FileLoggingEnabled {
		if err := os.MkdirAll(configuration.Logging.Directory, PermissionsDefault); err != nil {
			return zerolog.Logger{}, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   filepath.Join(configuration.Logging.Directory, configuration.Logging.Filename),
			MaxSize:    configuration.Logging.MaxSize,
			MaxBackups: configuration.Logging.MaxBackups,
			MaxAge:     configuration.Logging.MaxAge,
			Compress:   configuration.Logging.Compress,
		}

		if configuration.Logging.EncodeAsJSON {
			writer = zerolog.MultiLevelWriter(writer, fileWriter)
		} else {
			writer = zerolog.MultiLevelWriter(writer, zerolog.ConsoleWriter{
				Out:        fileWriter,
				TimeFormat: time.Stamp,
				NoColor:    true,
			})
		}
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()
	logger.Info().Msg("Logging configured")

	return logger, nil
}

func replaceIfEmpty(v string, s string) string {
	if v == "" {
		return s
	}

	return v
}

func servePrometheus(logger zerolog.Logger, host string) {
	http.Handle("/metrics", promhttp.Handler())

	logger.Info().Msgf("Serving prometheus at %s", host)

	err := http.ListenAndServe(host, nil)
	if err != nil {
		logger.Error().Str("host", host).Err(err).Msg("Failed to serve prometheus server")
	}
}

func serveStatusAPI(logger zerolog.Logger, host string, applications []*driftcord.Application) {
	r := router.New()

	r.GET("/api/status", func(ctx *fasthttp.RequestCtx) {
		summaries := make([]driftcord.ApplicationSummary, 0, len(applications))
		for _, application := range applications {
			summaries = append(summaries, application.Summary())
		}

		writeJSON(ctx, fasthttp.StatusOK, RestResponse{Success: true, Response: summaries})
	})

	logger.Info().Msgf("Serving http at %s", host)

	err := fasthttp.ListenAndServe(host, r.Handler)
	if err != nil {
		logger.Error().Str("host", host).Err(err).Msg("Failed to serve http server")
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, response interface{}) {
	body, err := jsoniter.Marshal(response)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)

		return
	}

	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(statusCode)
	ctx.SetBody(body)
}
