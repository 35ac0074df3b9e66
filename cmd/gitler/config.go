package main

import "time"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// HTTPRequestTimeout - timeout for handling single http request
	HTTPRequestTimeout time.Duration `default:"60s"`

	// GRPCServerAddress - listen address for grpc server
	GRPCServerAddress string `default:"0.0.0.0:9090"`

	// LogLevel - logrus log level name
	LogLevel string `default:"info"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, Authorization header is not sent without it)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls. Not positive value disables the limit
	GithubAPIRateLimit float64 `default:"10"`

	// GithubTimeout - timeout for single github api call
	GithubTimeout time.Duration `default:"30s"`

	// ScreensCacheSize - maximum number of user detail screens kept alive
	ScreensCacheSize int `default:"1000"`

	// ScreensLoadTimeout - timeout for whole screen load sequence, independent of requests waiting for it
	ScreensLoadTimeout time.Duration `default:"60s"`

	// ScreensTTL - maximum lifetime of a screen, after that it's created and loaded again
	ScreensTTL time.Duration `default:"10m"`
}
