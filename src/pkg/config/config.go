package config

import (
    "errors"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/exception"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/model/enum"
    "github.com/IntelliLead/GroupIdHandlers/src/pkg/secret"
    "github.com/caarlos0/env/v11"
    "github.com/go-playground/validator/v10"
    "github.com/joho/godotenv"
    "io/fs"
)

// Config is loaded once at process start and handed to every component that needs it.
type Config struct {
    Stage              string `env:"STAGE" envDefault:"local" validate:"oneof=local alpha beta gamma prod"`
    Port               string `env:"PORT" envDefault:"5000" validate:"required,numeric"`
    ChannelSecret      string `env:"LINE_CHANNEL_SECRET" validate:"required"`
    ChannelAccessToken string `env:"LINE_CHANNEL_ACCESS_TOKEN" validate:"required"`
    SecretName         string `env:"LINE_SECRET_NAME"`
    LineApiEndpoint    string `env:"LINE_API_ENDPOINT" validate:"omitempty,url"`
    AwsRegion          string `env:"AWS_REGION" envDefault:"ap-northeast-1" validate:"required"`
    MetricsEnabled     bool   `env:"METRICS_ENABLED" envDefault:"true"`
}

var envKeys = map[string]string{
    "Stage":              "STAGE",
    "Port":               "PORT",
    "ChannelSecret":      "LINE_CHANNEL_SECRET",
    "ChannelAccessToken": "LINE_CHANNEL_ACCESS_TOKEN",
    "LineApiEndpoint":    "LINE_API_ENDPOINT",
    "AwsRegion":          "AWS_REGION",
}

// Load reads an optional .env file, then the process environment.
// fetcher may be nil; it is only consulted when LINE_SECRET_NAME is set and a LINE secret is missing.
func Load(fetcher secret.Fetcher) (*Config, error) {
    err := godotenv.Load()
    if err != nil && !errors.Is(err, fs.ErrNotExist) {
        return nil, err
    }
    return LoadWithOptions(env.Options{}, fetcher)
}

func LoadWithOptions(opts env.Options, fetcher secret.Fetcher) (*Config, error) {
    var cfg Config
    err := env.ParseWithOptions(&cfg, opts)
    if err != nil {
        return nil, err
    }

    if cfg.needsSecrets() && cfg.SecretName != "" && fetcher != nil {
        secrets, err := fetcher.GetSecrets(cfg.SecretName)
        if err != nil {
            return nil, exception.NewMissingConfigurationException("unable to fetch LINE secrets from "+cfg.SecretName,
                []string{envKeys["ChannelSecret"], envKeys["ChannelAccessToken"]}, err)
        }
        if cfg.ChannelSecret == "" {
            cfg.ChannelSecret = secrets.LineChannelSecret
        }
        if cfg.ChannelAccessToken == "" {
            cfg.ChannelAccessToken = secrets.LineChannelAccessToken
        }
    }

    err = cfg.Validate()
    if err != nil {
        return nil, err
    }
    return &cfg, nil
}

func (c *Config) Validate() error {
    err := validator.New(validator.WithRequiredStructEnabled()).Struct(c)
    if err == nil {
        return nil
    }

    var validationErrors validator.ValidationErrors
    if !errors.As(err, &validationErrors) {
        return err
    }

    var invalid []string
    for _, fieldErr := range validationErrors {
        key, ok := envKeys[fieldErr.StructField()]
        if !ok {
            key = fieldErr.StructField()
        }
        invalid = append(invalid, key)
    }
    return exception.NewMissingConfigurationException("invalid or missing environment variables", invalid, err)
}

func (c *Config) StageEnum() enum.Stage {
    // Validate guarantees a known stage
    stage, _ := enum.ParseStage(c.Stage)
    return stage
}

func (c *Config) needsSecrets() bool {
    return c.ChannelSecret == "" || c.ChannelAccessToken == ""
}
