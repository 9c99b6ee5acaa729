package client

import "time"

// RootConfig describes client application config parameters
type RootConfig struct {
	ConfigFile string

	APIURL       string
	Token        string
	WebsiteToken string
	FileHost     string

	OutputDir string
	ChunkSize int
	Filter    string
	Timeout   time.Duration

	Swift *SwiftConfig

	Trace bool
}

// GlobalHome is the user HOME
var GlobalHome string

// GlobalCfgFile is the config filename
var GlobalCfgFile string

// GlobalAPI is the global API instance
var GlobalAPI *API

// GlobalLog is the global Log instance
var GlobalLog *Log

// GlobalConfig is the global RootConfig instance
var GlobalConfig *RootConfig
