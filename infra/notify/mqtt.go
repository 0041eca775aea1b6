// Package notify publishes run summaries to an MQTT broker so yard-ops
// dashboards can pick up fresh reports without polling the filesystem.
package notify

import (
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/railops/yardwheel/infra/logger"
)

// Config defines the connection parameters for the MQTT notifier.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
	Retain   bool   `json:"retain"`
	UseTLS   bool   `json:"use_tls"`
	CABundle string `json:"ca_bundle"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "yardwheel"
	}
	if c.Topic == "" {
		c.Topic = "yard/analysis/runs"
	}
}

// Validate checks mandatory fields when the notifier is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Broker == "" {
		return fmt.Errorf("notifier: broker is required")
	}
	return nil
}

// RunNotification is the JSON payload published after each run.
type RunNotification struct {
	RunID      string    `json:"run_id"`
	Processed  int       `json:"processed"`
	Skipped    int       `json:"skipped"`
	Warnings   int       `json:"warnings"`
	OutputPath string    `json:"output_path"`
	Finished   time.Time `json:"finished"`
}

// Notifier publishes run notifications over MQTT.
type Notifier struct {
	cli   paho.Client
	topic string
	qos   byte
	ret   bool
	log   logger.Logger
}

// New connects to the broker and returns a Notifier. Returns nil without
// error when the notifier is disabled.
func New(cfg Config) (*Notifier, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Enabled {
		return nil, nil
	}

	log := logger.New("notifier")
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetConnectTimeout(5 * time.Second)
	if cfg.UseTLS {
		tlsCfg, err := tlsConfig(cfg.CABundle)
		if err != nil {
			return nil, err
		}
		opts.SetTLSConfig(tlsCfg)
	}

	cli := paho.NewClient(opts)
	if token := cli.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	log.Infof("connected to %s", cfg.Broker)
	return &Notifier{cli: cli, topic: cfg.Topic, qos: cfg.QoS, ret: cfg.Retain, log: log}, nil
}

// Publish sends the run notification, blocking until the broker accepts it.
func (n *Notifier) Publish(note RunNotification) error {
	payload, err := json.Marshal(note)
	if err != nil {
		return err
	}
	token := n.cli.Publish(n.topic, n.qos, n.ret, payload)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("mqtt publish: %w", token.Error())
	}
	n.log.Debugf("published run %s to %s", note.RunID, n.topic)
	return nil
}

// Close disconnects from the broker.
func (n *Notifier) Close() {
	n.cli.Disconnect(250)
}

func tlsConfig(caBundle string) (*tls.Config, error) {
	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if caBundle != "" {
		pem, err := os.ReadFile(caBundle)
		if err != nil {
			return nil, fmt.Errorf("read ca bundle: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca bundle %s: no certificates found", caBundle)
		}
		cfg.RootCAs = pool
	}
	return cfg, nil
}
