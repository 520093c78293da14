package main

import (
	"fmt"
	"time"

	"github.com/factoryedge/machine-rule-engine/internal/pkg/application/notifications"
	"github.com/factoryedge/machine-rule-engine/pkg/types"

	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
	"github.com/shopspring/decimal"
)

type flagType int
type flagMap map[flagType]string

const (
	listenAddress flagType = iota
	servicePort
	controlPort
	enableTracing

	configurationFile

	dbHost
	dbUser
	dbPassword
	dbPort
	dbName
	dbSSLMode
)

var webserver = servicerunner.WithHTTPServeMux[appConfig]
var muxinit = servicerunner.OnMuxInit[appConfig]
var listen = servicerunner.WithListenAddr[appConfig]
var port = servicerunner.WithPort[appConfig]
var pprof = servicerunner.WithPPROF[appConfig]
var liveness = servicerunner.WithK8SLivenessProbe[appConfig]
var readiness = servicerunner.WithK8SReadinessProbes[appConfig]
var tracing = servicerunner.WithTracing[appConfig]
var oninit = servicerunner.OnInit[appConfig]
var onstarting = servicerunner.OnStarting[appConfig]
var onshutdown = servicerunner.OnShutdown[appConfig]

type appConfig struct {
	DeviceTypes []deviceTypeConfig `yaml:"deviceTypes"`
	Devices     []deviceConfig     `yaml:"devices"`
	Templates   []templateConfig   `yaml:"notificationTemplates"`

	SMTP       notifications.SMTPConfig       `yaml:"smtp"`
	SMSGateway notifications.SMSGatewayConfig `yaml:"smsGateway"`

	Dispatcher dispatcherConfig `yaml:"dispatcher"`
}

type deviceTypeConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Metric      string `yaml:"metric"`
	Unit        string `yaml:"unit"`
	MetricMin   string `yaml:"metricMin"`
	MetricMax   string `yaml:"metricMax"`
}

type deviceConfig struct {
	Name         string `yaml:"name"`
	SerialNumber string `yaml:"serialNumber"`
	DeviceType   string `yaml:"deviceType"`
	Location     string `yaml:"location"`
}

type templateConfig struct {
	Name              string            `yaml:"name"`
	MessageTemplate   string            `yaml:"messageTemplate"`
	Priority          int               `yaml:"priority"`
	RetryCount        int               `yaml:"retryCount"`
	RetryDelayMinutes int               `yaml:"retryDelayMinutes"`
	Recipients        []recipientConfig `yaml:"recipients"`
}

type recipientConfig struct {
	Channel string `yaml:"channel"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

// durations are configured in whole seconds since the yaml parser has
// no notion of time.Duration
type dispatcherConfig struct {
	Workers              int `yaml:"workers"`
	SendTimeoutSeconds   int `yaml:"sendTimeoutSeconds"`
	ClaimTimeoutSeconds  int `yaml:"claimTimeoutSeconds"`
	BatchLimit           int `yaml:"batchLimit"`
	RetryIntervalSeconds int `yaml:"retryIntervalSeconds"`
}

func (c dispatcherConfig) settings() notifications.Config {
	return notifications.Config{
		Workers:      c.Workers,
		SendTimeout:  time.Duration(c.SendTimeoutSeconds) * time.Second,
		ClaimTimeout: time.Duration(c.ClaimTimeoutSeconds) * time.Second,
		BatchLimit:   c.BatchLimit,
	}
}

func (c dispatcherConfig) retryInterval() time.Duration {
	return time.Duration(c.RetryIntervalSeconds) * time.Second
}

func (c *appConfig) deviceTypes() ([]types.DeviceType, error) {
	deviceTypes := make([]types.DeviceType, 0, len(c.DeviceTypes))

	for _, dt := range c.DeviceTypes {
		min, err := decimal.NewFromString(dt.MetricMin)
		if err != nil {
			return nil, fmt.Errorf("device type %s has invalid metricMin: %w", dt.Name, err)
		}
		max, err := decimal.NewFromString(dt.MetricMax)
		if err != nil {
			return nil, fmt.Errorf("device type %s has invalid metricMax: %w", dt.Name, err)
		}

		deviceTypes = append(deviceTypes, types.DeviceType{
			Name:        dt.Name,
			Description: dt.Description,
			Metric:      dt.Metric,
			Unit:        dt.Unit,
			MetricMin:   min,
			MetricMax:   max,
		})
	}

	return deviceTypes, nil
}

func (c *appConfig) devices() []types.Device {
	devices := make([]types.Device, 0, len(c.Devices))

	for _, d := range c.Devices {
		devices = append(devices, types.Device{
			Name:         d.Name,
			SerialNumber: d.SerialNumber,
			DeviceTypeID: d.DeviceType,
			Location:     d.Location,
		})
	}

	return devices
}

func (c *appConfig) templates() []types.Template {
	templates := make([]types.Template, 0, len(c.Templates))

	for _, t := range c.Templates {
		recipients := make([]types.Recipient, 0, len(t.Recipients))
		for _, r := range t.Recipients {
			recipients = append(recipients, types.Recipient{
				Channel: r.Channel,
				Name:    r.Name,
				Address: r.Address,
			})
		}

		templates = append(templates, types.Template{
			Name:              t.Name,
			MessageTemplate:   t.MessageTemplate,
			Recipients:        recipients,
			Priority:          t.Priority,
			RetryCount:        t.RetryCount,
			RetryDelayMinutes: t.RetryDelayMinutes,
			Active:            true,
		})
	}

	return templates
}
