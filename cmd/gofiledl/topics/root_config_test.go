package topics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/OnitiFR/gofiledl/cmd/gofiledl/client"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), "gofiledl.toml")
	require.NoError(t, os.WriteFile(filename, []byte(content), mode))
	require.NoError(t, os.Chmod(filename, mode))
	return filename
}

func TestRootConfigDefaults(t *testing.T) {
	t.Setenv("TRACE", "")

	config, err := NewRootConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	require.Equal(t, "", config.ConfigFile)
	require.Equal(t, client.DefaultAPIURL, config.APIURL)
	require.Equal(t, client.DefaultToken, config.Token)
	require.Equal(t, client.DefaultWebsiteToken, config.WebsiteToken)
	require.Equal(t, client.DefaultFileHost, config.FileHost)
	require.Equal(t, "downloads", config.OutputDir)
	require.Equal(t, client.DefaultChunkSize, config.ChunkSize)
	require.Zero(t, config.Timeout)
	require.False(t, config.Trace)
	require.Nil(t, config.Swift)
}

func TestRootConfigTraceFromEnv(t *testing.T) {
	t.Setenv("TRACE", "1")

	config, err := NewRootConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.True(t, config.Trace)
}

func TestRootConfigFile(t *testing.T) {
	filename := writeConfig(t, `
token = "user-token"
output_dir = "/tmp/gofile"
chunk_size = "64KB"
timeout = "30s"
filter = "size_MB < 100"

[swift]
username = "user"
api_key = "secret"
auth_url = "https://auth.example.com/v3"
region = "GRA"
container = "backups"
`, 0600)

	config, err := NewRootConfig(filename)
	require.NoError(t, err)

	require.Equal(t, filename, config.ConfigFile)
	require.Equal(t, "user-token", config.Token)
	require.Equal(t, client.DefaultAPIURL, config.APIURL)
	require.Equal(t, "/tmp/gofile", config.OutputDir)
	require.Equal(t, 64*1024, config.ChunkSize)
	require.Equal(t, 30*time.Second, config.Timeout)
	require.Equal(t, "size_MB < 100", config.Filter)

	require.NotNil(t, config.Swift)
	require.Equal(t, "backups", config.Swift.Container)
	require.Equal(t, "GRA", config.Swift.Region)
}

func TestRootConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown setting":    `colour = "blue"`,
		"empty api_url":      `api_url = ""`,
		"empty output_dir":   `output_dir = ""`,
		"chunk_size too big": `chunk_size = "1GB"`,
		"bad chunk_size":     `chunk_size = "lots"`,
		"bad timeout":        `timeout = "soon"`,
		"negative timeout":   `timeout = "-5s"`,
		"incomplete swift":   "[swift]\nusername = \"user\"",
		"invalid TOML":       `token = `,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			filename := writeConfig(t, content, 0600)
			_, err := NewRootConfig(filename)
			require.Error(t, err)
		})
	}
}

func TestRootConfigFileMode(t *testing.T) {
	filename := writeConfig(t, `token = "user-token"`, 0644)

	_, err := NewRootConfig(filename)
	require.Error(t, err)
	require.Contains(t, err.Error(), "chmod 0600")
}

func TestNewAPITimeout(t *testing.T) {
	api := newAPI(&client.RootConfig{APIURL: client.DefaultAPIURL, FileHost: client.DefaultFileHost})
	require.Nil(t, api.HTTPClient)

	api = newAPI(&client.RootConfig{APIURL: client.DefaultAPIURL, FileHost: client.DefaultFileHost, Timeout: time.Minute})
	require.NotNil(t, api.HTTPClient)
	require.Equal(t, time.Minute, api.HTTPClient.Timeout)
}

func TestNewFilter(t *testing.T) {
	filter, err := newFilter(&client.RootConfig{})
	require.NoError(t, err)
	require.Nil(t, filter)

	filter, err = newFilter(&client.RootConfig{Filter: "size > 10"})
	require.NoError(t, err)
	require.Equal(t, "size > 10", filter.Original)
}
