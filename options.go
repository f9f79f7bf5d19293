package esmcp

import "go.uber.org/zap"

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addresses []string
	apiKey    string
	username  string
	password  string
	caCert    []byte
	logger    *zap.Logger
}

// WithAddresses sets the engine endpoints. Requests are spread across them.
func WithAddresses(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addresses = append(c.addresses, addrs...)
	})
}

// WithAPIKey authenticates with an API key. It takes precedence over WithBasicAuth.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *clientConfig) {
		c.apiKey = key
	})
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithCACert trusts only the PEM-encoded certificates; the system roots are not consulted.
func WithCACert(pem []byte) Option {
	return optionFunc(func(c *clientConfig) {
		c.caCert = pem
	})
}

// WithLogger sets the logger for tool calls. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	})
}
