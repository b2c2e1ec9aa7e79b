// Configuration is loaded from a yaml file and validated before use.

package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eurofurence/paystakk/pkg/paystack"
)

type (
	Application struct {
		Paystack PaystackConfig `yaml:"paystack"`
		Sandbox  SandboxConfig  `yaml:"sandbox"`
		Logging  LoggingConfig  `yaml:"logging"`
	}

	// PaystackConfig keys may be given literally or as names of environment variables.
	PaystackConfig struct {
		SecretKey      string            `yaml:"secret_key"`
		PublicKey      string            `yaml:"public_key"`
		CallbackURL    string            `yaml:"callback_url"`
		APIBaseURL     string            `yaml:"api_base_url"`
		PayBaseURL     string            `yaml:"pay_base_url"`
		TimeoutSeconds int               `yaml:"timeout_seconds"`
		CircuitBreaker bool              `yaml:"circuit_breaker"`
		Headers        map[string]string `yaml:"headers"`
	}

	SandboxConfig struct {
		BaseAddress  string `yaml:"base_address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
		CheckoutURL  string `yaml:"checkout_url"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
		Style    string `yaml:"style"`
	}
)

const (
	defaultSecretKeyVariable   = paystack.SecretKeyEnv
	defaultPublicKeyVariable   = paystack.PublicKeyEnv
	defaultCallbackURLVariable = paystack.CallbackURLEnv
)

func UnmarshalFromYamlConfiguration(r io.Reader) (*Application, error) {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil && err != io.EOF {
		return nil, err
	}

	applyDefaults(conf)
	return conf, nil
}

func LoadFile(filename string) (*Application, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file: %w", err)
	}
	defer file.Close()

	conf, err := UnmarshalFromYamlConfiguration(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", filename, err)
	}
	return conf, nil
}

// Default is used when no configuration file is given, keys come from the conventional environment variables.
func Default() *Application {
	conf := &Application{}
	applyDefaults(conf)
	return conf
}

func applyDefaults(conf *Application) {
	p := &conf.Paystack
	if p.SecretKey == "" {
		p.SecretKey = defaultSecretKeyVariable
	}
	if p.PublicKey == "" {
		p.PublicKey = defaultPublicKeyVariable
	}
	if p.CallbackURL == "" {
		p.CallbackURL = defaultCallbackURLVariable
	}
	if p.APIBaseURL == "" {
		p.APIBaseURL = paystack.DefaultAPIURL
	}
	if p.PayBaseURL == "" {
		p.PayBaseURL = paystack.DefaultPayURL
	}
	if p.TimeoutSeconds == 0 {
		p.TimeoutSeconds = int(paystack.DefaultTimeout / time.Second)
	}

	s := &conf.Sandbox
	if s.Port == 0 {
		s.Port = 8086
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = 120
	}
	if s.CheckoutURL == "" {
		s.CheckoutURL = "https://checkout.paystack.com"
	}

	if conf.Logging.Severity == "" {
		conf.Logging.Severity = "INFO"
	}
	if conf.Logging.Style == "" {
		conf.Logging.Style = "plain"
	}
}

// Keys resolves the configured keys, each either a literal value or the name of an environment variable.
// The conventional variable names resolve to "" when the variable is not set.
func (p PaystackConfig) Keys() paystack.Keys {
	return paystack.NewKeys(
		unlessUnset(p.SecretKey, defaultSecretKeyVariable),
		unlessUnset(p.PublicKey, defaultPublicKeyVariable),
		unlessUnset(p.CallbackURL, defaultCallbackURLVariable),
	)
}

func unlessUnset(value string, conventional string) string {
	if value == conventional {
		if _, ok := os.LookupEnv(conventional); !ok {
			return ""
		}
	}
	return value
}

func (p PaystackConfig) Options() paystack.Options {
	var fixedHeaders map[string]string
	if len(p.Headers) > 0 {
		fixedHeaders = map[string]string{"Content-Type": "application/json"}
		for k, v := range p.Headers {
			fixedHeaders[k] = v
		}
	}

	return paystack.Options{
		Keys:           p.Keys(),
		APIURL:         p.APIBaseURL,
		PayURL:         p.PayBaseURL,
		Timeout:        time.Duration(p.TimeoutSeconds) * time.Second,
		Headers:        fixedHeaders,
		CircuitBreaker: p.CircuitBreaker,
	}
}
