package topics

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/OnitiFR/gofiledl/cmd/gofiledl/client"
	"github.com/c2h5oh/datasize"
)

type tomlRootConfig struct {
	APIURL       string            `toml:"api_url"`
	Token        string            `toml:"token"`
	WebsiteToken string            `toml:"website_token"`
	FileHost     string            `toml:"file_host"`
	OutputDir    string            `toml:"output_dir"`
	ChunkSize    datasize.ByteSize `toml:"chunk_size"`
	Filter       string            `toml:"filter"`
	Timeout      string            `toml:"timeout"`
	Trace        bool              `toml:"trace"`
	Swift        *tomlSwiftConfig  `toml:"swift"`
}

type tomlSwiftConfig struct {
	UserName  string `toml:"username"`
	APIKey    string `toml:"api_key"`
	AuthURL   string `toml:"auth_url"`
	Domain    string `toml:"domain"`
	Region    string `toml:"region"`
	Container string `toml:"container"`
}

// NewRootConfig reads configuration from filename and
// environment. The file is optional.
// Priority : CLI flag, config file, environment
func NewRootConfig(filename string) (*client.RootConfig, error) {
	rootConfig := &client.RootConfig{}

	envTrace, _ := strconv.ParseBool(os.Getenv("TRACE"))

	// defaults (if not in the file)
	tConfig := &tomlRootConfig{
		APIURL:       client.DefaultAPIURL,
		Token:        client.DefaultToken,
		WebsiteToken: client.DefaultWebsiteToken,
		FileHost:     client.DefaultFileHost,
		OutputDir:    "downloads",
		ChunkSize:    client.DefaultChunkSize * datasize.B,
		Timeout:      "0s",
		Trace:        envTrace,
	}

	if stat, err := os.Stat(filename); err == nil {

		requiredMode, err := strconv.ParseInt("0600", 8, 32)
		if err != nil {
			return nil, err
		}

		if stat.Mode() != os.FileMode(requiredMode) {
			return nil, fmt.Errorf("%s: only the owner should be able to read/write this file (chmod 0600 %s)", filename, filename)
		}

		meta, err := toml.DecodeFile(filename, tConfig)

		if err != nil {
			return nil, err
		}

		undecoded := meta.Undecoded()
		for _, param := range undecoded {
			return nil, fmt.Errorf("unknown setting '%s'", param)
		}

		rootConfig.ConfigFile = filename
	}

	if err := applyFlags(tConfig); err != nil {
		return nil, err
	}

	// Start checking settings and fill rootConfig

	if tConfig.APIURL == "" {
		return nil, errors.New("empty api_url")
	}
	rootConfig.APIURL = tConfig.APIURL
	rootConfig.Token = tConfig.Token
	rootConfig.WebsiteToken = tConfig.WebsiteToken

	if tConfig.FileHost == "" {
		return nil, errors.New("empty file_host")
	}
	rootConfig.FileHost = tConfig.FileHost

	if tConfig.OutputDir == "" {
		return nil, errors.New("empty output_dir")
	}
	rootConfig.OutputDir = tConfig.OutputDir

	if tConfig.ChunkSize < 1*datasize.B || tConfig.ChunkSize > 64*datasize.MB {
		return nil, fmt.Errorf("chunk_size: '%s' is out of range (1B to 64MB)", tConfig.ChunkSize.HR())
	}
	rootConfig.ChunkSize = int(tConfig.ChunkSize.Bytes())

	timeout, err := time.ParseDuration(tConfig.Timeout)
	if err != nil {
		return nil, fmt.Errorf("timeout: '%s': %s", tConfig.Timeout, err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("timeout: '%s' can't be negative", tConfig.Timeout)
	}
	rootConfig.Timeout = timeout

	rootConfig.Filter = tConfig.Filter
	rootConfig.Trace = tConfig.Trace

	if tConfig.Swift != nil {
		rootConfig.Swift = &client.SwiftConfig{
			UserName:  tConfig.Swift.UserName,
			APIKey:    tConfig.Swift.APIKey,
			AuthURL:   tConfig.Swift.AuthURL,
			Domain:    tConfig.Swift.Domain,
			Region:    tConfig.Swift.Region,
			Container: tConfig.Swift.Container,
		}
		if err := rootConfig.Swift.Check(); err != nil {
			return nil, err
		}
	}

	return rootConfig, nil
}

// applyFlags overrides tConfig with flags given on the command line
func applyFlags(tConfig *tomlRootConfig) error {
	flagTrace := rootCmd.PersistentFlags().Lookup("trace")
	flagFilter := rootCmd.PersistentFlags().Lookup("filter")
	flagChunkSize := rootCmd.PersistentFlags().Lookup("chunk-size")

	if flagTrace.Changed {
		trace, _ := strconv.ParseBool(flagTrace.Value.String())
		tConfig.Trace = trace
	}
	if flagFilter.Changed {
		tConfig.Filter = flagFilter.Value.String()
	}
	if flagChunkSize.Changed {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(flagChunkSize.Value.String())); err != nil {
			return fmt.Errorf("--chunk-size: '%s': %s", flagChunkSize.Value.String(), err)
		}
		tConfig.ChunkSize = size
	}
	return nil
}
