package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/joho/godotenv"
	"github.com/qdm12/geotrack/internal/backend"
	"github.com/qdm12/geotrack/internal/config"
	"github.com/qdm12/geotrack/internal/health"
	"github.com/qdm12/geotrack/internal/login"
	"github.com/qdm12/geotrack/internal/lookup"
	"github.com/qdm12/geotrack/internal/models"
	"github.com/qdm12/geotrack/internal/network"
	"github.com/qdm12/geotrack/internal/noop"
	"github.com/qdm12/geotrack/internal/server"
	"github.com/qdm12/geotrack/internal/session"
	"github.com/qdm12/geotrack/internal/shoutrrr"
	"github.com/qdm12/geotrack/internal/tracker"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("loading .env file: " + err.Error())
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status
			var healthSettings config.Health
			err = healthSettings.Read(reader)
			if err != nil {
				return fmt.Errorf("reading health settings: %w", err)
			}
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, *healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	if *config.Logger.Level == log.LevelDebug {
		client = network.MakeLogClient(client, logger.New(log.SetComponent("http client")))
	}
	defer client.CloseIdleConnections()

	backendClient := backend.New(client, config.Backend.URL)
	err = backendClient.Ping(ctx)
	if err != nil {
		logger.Warn(err.Error())
	}

	lookupClient, err := lookup.New(client, config.Lookup.ToOptions()...)
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("creating IP lookup client: %w", err)
	}
	defer func() {
		closeErr := lookupClient.Close()
		if closeErr != nil {
			logger.Error("closing IP lookup client: " + closeErr.Error())
		}
	}()

	sessionStore := session.NewStore(makeSessionSettings(config, logger))

	trackers := tracker.NewRegistry(backendClient, lookupClient,
		logger.New(log.SetComponent("tracker")), config.Session.MaxAge, timeNow)

	loginFlow := login.New(backendClient, logger.New(log.SetComponent("login")),
		shoutrrrClient)

	healthServer, err := createHealthServer(config.Health, backendClient, logger)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	server, err := server.New(server.Settings{
		Address:  config.Server.ListeningAddress,
		RootURL:  config.Server.RootURL,
		Sessions: sessionStore,
		Login:    loginFlow,
		Trackers: trackers,
		Logger:   logger.New(log.SetComponent("http server")),
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{healthServer, server},
		ServicesStop:  []goservices.Service{server, healthServer},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		shoutrrrClient.Notify(startErr.Error())
		return fmt.Errorf("starting services: %w", startErr)
	}

	shoutrrrClient.Notify("Launched and listening on " + config.Server.ListeningAddress)

	select {
	case <-ctx.Done():
	case err = <-runError:
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		shoutrrrClient.Notify(err.Error())
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "geotrack",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func makeSessionSettings(config config.Config, logger log.LeveledLogger) session.Settings {
	secret := []byte(*config.Session.Secret)
	if len(secret) == 0 {
		logger.Warn("No session secret set, sessions will not survive a restart")
		secret = session.GenerateSecret()
	}

	path := config.Server.RootURL
	if path[len(path)-1] != '/' {
		path += "/"
	}

	return session.Settings{
		Name:   "geotrack",
		Secret: secret,
		Path:   path,
		MaxAge: config.Session.MaxAge,
		Secure: *config.Session.Secure,
	}
}

//nolint:ireturn
func createHealthServer(config config.Health, backend health.Pinger,
	logger log.LoggerInterface) (healthServer goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("health server"), nil
	}
	isHealthy := health.MakeIsHealthy(backend, logger.New(log.SetComponent("health")))
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	return health.NewServer(*config.ServerAddress, healthLogger, isHealthy)
}
