// Package client provides a high-level Colony protocol client.
package client

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	// DefaultServerAddress is the public Colony arbiter.
	DefaultServerAddress = "play.colonyprotocol.org:8880"

	// DefaultConnectTimeout is the default timeout for establishing a connection.
	DefaultConnectTimeout = 10 * time.Second
)

// Options configures the Colony client.
type Options struct {
	// ServerAddress is the arbiter address.
	// Default: "play.colonyprotocol.org:8880"
	ServerAddress string

	// ConnectTimeout is the timeout for establishing connection.
	// Default: 10s
	ConnectTimeout time.Duration

	// Logger receives connection lifecycle events and garbled-line
	// warnings. Default: logrus.StandardLogger()
	Logger *logrus.Logger
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		ServerAddress:  DefaultServerAddress,
		ConnectTimeout: DefaultConnectTimeout,
		Logger:         logrus.StandardLogger(),
	}
}
