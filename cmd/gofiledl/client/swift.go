package client

import (
	"context"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ncw/swift/v2"
)

// SwiftConfig stores final settings for the Swift mirror
type SwiftConfig struct {
	UserName  string
	APIKey    string
	AuthURL   string
	Domain    string
	Region    string
	Container string
}

// Check that required settings are there
func (config *SwiftConfig) Check() error {
	if config.UserName == "" {
		return errors.New("swift username setting cannot be empty")
	}
	if config.APIKey == "" {
		return errors.New("swift api_key setting cannot be empty")
	}
	if config.AuthURL == "" {
		return errors.New("swift auth_url setting cannot be empty")
	}
	if config.Container == "" {
		return errors.New("swift container setting cannot be empty")
	}
	return nil
}

// SwiftMirror pushes downloaded files to a Swift container
type SwiftMirror struct {
	Config *SwiftConfig
	Conn   swift.Connection
}

// NewSwiftMirror connects to Swift and checks the container
func NewSwiftMirror(ctx context.Context, config *SwiftConfig) (*SwiftMirror, error) {
	if err := config.Check(); err != nil {
		return nil, err
	}

	mirror := &SwiftMirror{
		Config: config,
		Conn: swift.Connection{
			UserName: config.UserName,
			ApiKey:   config.APIKey,
			AuthUrl:  config.AuthURL,
			Domain:   config.Domain,
			Region:   config.Region,
		},
	}

	if err := mirror.Conn.Authenticate(ctx); err != nil {
		return nil, goerr.Wrap(err, "swift authentication failed", goerr.V("auth_url", config.AuthURL))
	}

	if _, _, err := mirror.Conn.Container(ctx, config.Container); err != nil {
		return nil, goerr.Wrap(err, "container '"+config.Container+"' does not exists")
	}

	return mirror, nil
}

// Push a local file to the container, as objectName
func (s *SwiftMirror) Push(ctx context.Context, localPath string, objectName string) error {
	source, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer source.Close()

	_, err = s.Conn.ObjectPut(ctx, s.Config.Container, objectName, source, false, "", "application/octet-stream", nil)
	if err != nil {
		return goerr.Wrap(err, "swift upload failed", goerr.V("object", objectName))
	}
	return nil
}
