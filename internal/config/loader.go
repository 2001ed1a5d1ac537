package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings are the client settings read by Load. A settings file looks like:
//
//	token: testsk_xxx.eu
//	server_url: https://api.eu.svix.com
//	timeout: 30s   # or "none" / null to never time out
//	debug: false
//	retry_max: 2
type Settings struct {
	Token     string
	ServerURL string

	// Timeout is nil when neither the file nor the environment set it, and
	// points to 0 when the timeout was turned off with "none" or null.
	Timeout *time.Duration

	Debug    bool
	RetryMax int
}

// Load reads settings from the YAML file at path, when path is not empty,
// then applies the SVIX_TOKEN, SVIX_SERVER_URL, SVIX_TIMEOUT, SVIX_DEBUG and
// SVIX_RETRY_MAX environment variables on top. A token is required.
func Load(path string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	nullTimeout := false

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		nullTimeout, err = hasNullTimeout(path)
		if err != nil {
			return nil, err
		}
	}

	settings, err := decode(v, nullTimeout)
	if err != nil {
		return nil, err
	}

	if settings.Token == "" {
		return nil, constants.ErrTokenRequired
	}

	if settings.RetryMax < 0 {
		return nil, constants.ErrInvalidRetry
	}

	return settings, nil
}

// decode reads the merged file and environment values. Environment values
// take precedence over the file.
func decode(v *viper.Viper, nullTimeout bool) (*Settings, error) {
	settings := &Settings{
		Token:     v.GetString("token"),
		ServerURL: v.GetString("server_url"),
	}

	switch {
	case v.IsSet("timeout"):
		parsed, err := parseTimeout(cast.ToString(v.Get("timeout")))
		if err != nil {
			return nil, err
		}

		settings.Timeout = parsed
	case nullTimeout:
		settings.Timeout = durationPtr(0)
	}

	if v.IsSet("debug") {
		debug, err := cast.ToBoolE(v.Get("debug"))
		if err != nil {
			return nil, fmt.Errorf("parsing debug: %w", err)
		}

		settings.Debug = debug
	}

	if v.IsSet("retry_max") {
		retryMax, err := cast.ToIntE(v.Get("retry_max"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", constants.ErrInvalidRetry, err)
		}

		settings.RetryMax = retryMax
	}

	return settings, nil
}

// hasNullTimeout reports whether the file sets timeout to null or leaves its
// value empty. Viper drops null values, so the file is inspected as a YAML node.
func hasNullTimeout(path string) (bool, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the caller
	if err != nil {
		return false, fmt.Errorf("reading config file: %w", err)
	}

	var root yaml.Node

	err = yaml.Unmarshal(data, &root)
	if err != nil {
		return false, fmt.Errorf("parsing config file: %w", err)
	}

	// An empty file decodes to a zero node.
	if len(root.Content) == 0 {
		return false, nil
	}

	timeout := lookupKey(root.Content[0], "timeout")

	return timeout != nil && timeout.Tag == "!!null", nil
}

// lookupKey returns the value node of key in a mapping node.
func lookupKey(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

// parseTimeout accepts a Go duration or "none". Negative durations are rejected.
func parseTimeout(value string) (*time.Duration, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, constants.TimeoutDisabled) {
		return durationPtr(0), nil
	}

	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, value)
	}

	return &d, nil
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}
