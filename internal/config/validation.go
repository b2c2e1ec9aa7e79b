package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validatePaystackConfiguration(errs, conf.Paystack)
	validateSandboxConfiguration(errs, conf.Sandbox)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const baseUrlPattern = "^https?://.*[^/]$"

func validatePaystackConfiguration(errs url.Values, c PaystackConfig) {
	if violatesPattern(baseUrlPattern, c.APIBaseURL) {
		errs.Add("paystack.api_base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	if violatesPattern(baseUrlPattern, c.PayBaseURL) {
		errs.Add("paystack.pay_base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	checkIntValueRange(errs, 1, 60, "paystack.timeout_seconds", c.TimeoutSeconds)
	for name := range c.Headers {
		if strings.EqualFold(name, "Authorization") {
			errs.Add("paystack.headers", "the Authorization header is set from the secret key and may not be configured")
		} else if name == "" || strings.ContainsAny(name, " :\t") {
			errs.Add("paystack.headers", fmt.Sprintf("invalid header name '%s'", name))
		}
	}
}

func validateSandboxConfiguration(errs url.Values, c SandboxConfig) {
	checkIntValueRange(errs, 1, 65535, "sandbox.port", c.Port)
	checkIntValueRange(errs, 1, 300, "sandbox.read_timeout_seconds", c.ReadTimeout)
	checkIntValueRange(errs, 1, 300, "sandbox.write_timeout_seconds", c.WriteTimeout)
	checkIntValueRange(errs, 1, 300, "sandbox.idle_timeout_seconds", c.IdleTimeout)
	if violatesPattern(baseUrlPattern, c.CheckoutURL) {
		errs.Add("sandbox.checkout_url", "base url must start with http:// or https:// and may not end in a /")
	}
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}

var allowedStyles = []string{"plain", "json"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
	if notInAllowedValues(allowedStyles[:], c.Style) {
		errs.Add("logging.style", "must be one of plain, json")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkIntValueRange(errs url.Values, min int, max int, key string, value int) {
	if value < min || value > max {
		errs.Add(key, fmt.Sprintf("%s field must be an integer at least %d and at most %d", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		val := errs[k]
		logFunc("configuration error: %s: %s", key, val[0])
	}
}
