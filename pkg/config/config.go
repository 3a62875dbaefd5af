package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/raildelay/raildelay/pkg/util"
)

const DefaultEndpoint = "https://hsp-prod.rockshore.net/api/v1"

// Credentials is everything the performance data source needs from the
// process configuration. It is loaded once at startup and passed into the
// gateway constructor; nothing deeper in the call path touches the environment.
type Credentials struct {
	Endpoint string `yaml:"endpoint" validate:"omitempty,url"`

	Username string `yaml:"username" validate:"required"`
	Password string `yaml:"password" validate:"required"`
}

// Load reads credentials from an optional raildelay.yml and the RAILDELAY_HSP_*
// environment variables, environment winning. Missing credentials fail here,
// before any network activity.
func Load() (Credentials, error) {
	var credentials Credentials

	data, err := os.ReadFile("raildelay.yml")
	if err == nil {
		if err := yaml.Unmarshal(data, &credentials); err != nil {
			return Credentials{}, err
		}
	}

	env := util.GetEnvironmentVariables()
	if env["RAILDELAY_HSP_USERNAME"] != "" {
		credentials.Username = env["RAILDELAY_HSP_USERNAME"]
	}
	if env["RAILDELAY_HSP_PASSWORD"] != "" {
		credentials.Password = env["RAILDELAY_HSP_PASSWORD"]
	}
	if env["RAILDELAY_HSP_ENDPOINT"] != "" {
		credentials.Endpoint = env["RAILDELAY_HSP_ENDPOINT"]
	}

	if credentials.Endpoint == "" {
		credentials.Endpoint = DefaultEndpoint
	}

	if credentials.Username == "" {
		return Credentials{}, errors.New("RAILDELAY_HSP_USERNAME must be set")
	}
	if credentials.Password == "" {
		return Credentials{}, errors.New("RAILDELAY_HSP_PASSWORD must be set")
	}

	v := validator.New()
	if err := v.Struct(credentials); err != nil {
		return Credentials{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return credentials, nil
}
