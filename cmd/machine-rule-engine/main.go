package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/events"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/ingest"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/notifications"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/rules"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/router"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/infrastructure/storage"
	"github.com/factoryedge/machine-rule-engine/internal/pkg/presentation/api"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	k8shandlers "github.com/diwise/service-chassis/pkg/infrastructure/net/http/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
	"gopkg.in/yaml.v2"
)

const serviceName string = "machine-rule-engine"

func defaultFlags() flagMap {
	return flagMap{
		listenAddress: "0.0.0.0",
		servicePort:   "8080",
		controlPort:   "8000",
		enableTracing: "true",

		configurationFile: "/opt/factoryedge/config/config.yaml",

		dbHost:     "",
		dbUser:     "",
		dbPassword: "",
		dbPort:     "5432",
		dbName:     "factoryedge",
		dbSSLMode:  "disable",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, "json")
	defer cleanup()

	cfgFile, err := os.Open(flags[configurationFile])
	exitIf(err, logger, "could not open configuration file")

	cfg, err := parseExternalConfigFile(ctx, cfgFile)
	exitIf(err, logger, "could not parse configuration file")

	runner, err := initialize(ctx, flags, cfg)
	exitIf(err, logger, "failed to initialize service runner")

	err = runner.Run(ctx)
	exitIf(err, logger, "failed to start service runner")
}

func initialize(ctx context.Context, flags flagMap, cfg *appConfig) (servicerunner.Runner[appConfig], error) {
	log := logging.GetFromContext(ctx)

	probes := map[string]k8shandlers.ServiceProber{
		"rabbitmq": func(context.Context) (string, error) { return "ok", nil },
		"postgres": func(context.Context) (string, error) { return "ok", nil },
	}

	s, err := storage.New(ctx, storage.NewConfig(
		flags[dbHost], flags[dbUser], flags[dbPassword], flags[dbPort], flags[dbName], flags[dbSSLMode],
	))
	exitIf(err, log, "could not create or connect to database")

	messenger, err := messaging.Initialize(ctx, messaging.LoadConfiguration(ctx, serviceName, log))
	exitIf(err, log, "failed to init messenger")

	var ingestSvc ingest.IngestService
	var ruleSvc rules.RuleService
	var eventSvc events.EventService
	var dispatcher notifications.Dispatcher
	var scheduler *notifications.RetryScheduler

	_, runner := servicerunner.New(ctx, *cfg,
		webserver("control", listen(flags[listenAddress]), port(flags[controlPort]),
			pprof(), liveness(func() error { return nil }), readiness(probes),
		),
		webserver("public", listen(flags[listenAddress]), port(flags[servicePort]), tracing(flags[enableTracing] == "true"),
			muxinit(func(ctx context.Context, identifier string, port string, appCfg *appConfig, handler *http.ServeMux) error {
				mux := router.New(serviceName)

				_, err := api.RegisterHandlers(ctx, mux, ingestSvc, ruleSvc, eventSvc, dispatcher)
				if err != nil {
					return err
				}

				handler.Handle("/", mux)

				return nil
			}),
		),
		oninit(func(ctx context.Context, appCfg *appConfig) error {
			log.Debug("initializing servicerunner")

			senders := map[string]notifications.Sender{
				types.ChannelEmail:   notifications.NewEmailSender(appCfg.SMTP),
				types.ChannelSMS:     notifications.NewSMSSender(appCfg.SMSGateway),
				types.ChannelWebhook: notifications.NewWebhookSender(serviceName),
			}

			ruleSvc = rules.New(s)
			eventSvc = events.New(s, messenger)
			dispatcher = notifications.New(s, eventSvc, senders, messenger, appCfg.Dispatcher.settings())
			scheduler = notifications.NewRetryScheduler(dispatcher, appCfg.Dispatcher.retryInterval())
			ingestSvc = ingest.New(s, ruleSvc, eventSvc, dispatcher, messenger)

			return nil
		}),
		onstarting(func(ctx context.Context, appCfg *appConfig) (err error) {
			log.Debug("starting servicerunner")

			err = s.Initialize(ctx)
			if err != nil {
				return
			}

			deviceTypes, err := appCfg.deviceTypes()
			if err != nil {
				return
			}

			err = storage.SeedDeviceTypes(ctx, s, deviceTypes)
			if err != nil {
				return
			}

			err = storage.SeedDevices(ctx, s, appCfg.devices())
			if err != nil {
				return
			}

			err = storage.SeedTemplates(ctx, s, appCfg.templates())
			if err != nil {
				return
			}

			messenger.Start()

			err = ingest.RegisterTopicMessageHandlers(messenger, ingestSvc)
			if err != nil {
				return
			}

			scheduler.Start(ctx)

			return nil
		}),
		onshutdown(func(ctx context.Context, appCfg *appConfig) error {
			log.Debug("shutdown servicerunner")

			scheduler.Stop(ctx)
			messenger.Close()
			s.Close()

			return nil
		}),
	)

	return runner, nil
}

func parseExternalConfigFile(_ context.Context, cfgFile io.ReadCloser) (*appConfig, error) {
	defer cfgFile.Close()

	b, err := io.ReadAll(cfgFile)
	if err != nil {
		return nil, err
	}

	cfg := &appConfig{}
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseExternalConfig(ctx context.Context, flags flagMap) (context.Context, flagMap) {
	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault

	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])

	flags[dbHost] = envOrDef(ctx, "POSTGRES_HOST", flags[dbHost])
	flags[dbPort] = envOrDef(ctx, "POSTGRES_PORT", flags[dbPort])
	flags[dbName] = envOrDef(ctx, "POSTGRES_DBNAME", flags[dbName])
	flags[dbUser] = envOrDef(ctx, "POSTGRES_USER", flags[dbUser])
	flags[dbPassword] = envOrDef(ctx, "POSTGRES_PASSWORD", flags[dbPassword])
	flags[dbSSLMode] = envOrDef(ctx, "POSTGRES_SSLMODE", flags[dbSSLMode])
	flags[enableTracing] = envOrDef(ctx, "ENABLE_TRACING", flags[enableTracing])

	apply := func(f flagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("config", "rule engine configuration file", apply(configurationFile))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger *slog.Logger, msg string, args ...any) {
	if err != nil {
		logger.With(args...).Error(msg, "err", err.Error())
		time.Sleep(2 * time.Second)
		os.Exit(1)
	}
}
