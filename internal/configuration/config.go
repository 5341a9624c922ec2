package configuration

import (
	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
)

type Config struct {
	ServerAddress    string
	DatabaseURI      string
	RedisAddress     string
	LogDebugEnabled  bool
	LogInfoEnabled   bool
	LogErrorEnabled  bool
	LogToFile        bool
	AuthSecretKey    jwk.Key
	OAuthIssuer      string
	OAuthJWKSURL     string
	ImageHostURL     string
	ImageHostKey     string
	CompletionAPIURL string
	CompletionAPIKey string
	CompletionModel  string
}

type tomlConfig struct {
	ServerAddress    string `toml:"server_address"`
	DatabaseURI      string `toml:"database_uri"`
	RedisAddress     string `toml:"redis_address"`
	LogDebugEnabled  bool   `toml:"log_debug_enabled"`
	LogInfoEnabled   bool   `toml:"log_info_enabled"`
	LogErrorEnabled  bool   `toml:"log_error_enabled"`
	LogToFile        bool   `toml:"log_to_file"`
	AuthSecretKey    string `toml:"auth_secret_key"`
	OAuthIssuer      string `toml:"oauth_issuer"`
	OAuthJWKSURL     string `toml:"oauth_jwks_url"`
	ImageHostURL     string `toml:"image_host_url"`
	ImageHostKey     string `toml:"image_host_key"`
	CompletionAPIURL string `toml:"completion_api_url"`
	CompletionAPIKey string `toml:"completion_api_key"`
	CompletionModel  string `toml:"completion_model"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.ServerAddress == "" {
		tc.ServerAddress = "localhost:8888"
	}
	if tc.DatabaseURI == "" {
		tc.DatabaseURI = "mongodb://localhost:27017"
	}
	if tc.RedisAddress == "" {
		tc.RedisAddress = "localhost:6379"
	}
	if tc.ImageHostURL == "" {
		tc.ImageHostURL = "https://api.imgbb.com/1/upload"
	}
	if tc.CompletionAPIURL == "" {
		tc.CompletionAPIURL = "https://api.openai.com/v1/chat/completions"
	}
	if tc.CompletionModel == "" {
		tc.CompletionModel = "gpt-3.5-turbo"
	}

	if tc.AuthSecretKey == "" {
		return nil, errors.New("auth_secret_key is not set")
	}
	authSecretKey, err := jwk.FromRaw([]byte(tc.AuthSecretKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create key from auth_secret_key")
	}

	if tc.ImageHostKey == "" {
		return nil, errors.New("image_host_key is not set")
	}
	if tc.CompletionAPIKey == "" {
		return nil, errors.New("completion_api_key is not set")
	}

	return &Config{
		ServerAddress:    tc.ServerAddress,
		DatabaseURI:      tc.DatabaseURI,
		RedisAddress:     tc.RedisAddress,
		LogDebugEnabled:  tc.LogDebugEnabled,
		LogInfoEnabled:   tc.LogInfoEnabled,
		LogErrorEnabled:  tc.LogErrorEnabled,
		LogToFile:        tc.LogToFile,
		AuthSecretKey:    authSecretKey,
		OAuthIssuer:      tc.OAuthIssuer,
		OAuthJWKSURL:     tc.OAuthJWKSURL,
		ImageHostURL:     tc.ImageHostURL,
		ImageHostKey:     tc.ImageHostKey,
		CompletionAPIURL: tc.CompletionAPIURL,
		CompletionAPIKey: tc.CompletionAPIKey,
		CompletionModel:  tc.CompletionModel,
	}, nil
}
