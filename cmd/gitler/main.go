package main

import (
	netHttp "net/http"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/gitler/internal/adapter/github"
	"github.com/m-zajac/gitler/internal/api/grpc"
	"github.com/m-zajac/gitler/internal/api/http"
	"github.com/m-zajac/gitler/internal/app"
	"github.com/m-zajac/gitler/internal/limiter"
	"github.com/sirupsen/logrus"
)

func main() {
	l := logrus.New()
	l.Level = logrus.InfoLevel

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		l.Fatalf("coludn't parse config: %v", err)
	}
	level, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		l.Fatalf("couldn't parse log level: %v", err)
	}
	l.Level = level

	httpClient := &netHttp.Client{
		Timeout: conf.GithubTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	// Every screen gets its own client. Clients share the http client and the rate limit.
	clientLogger := l.WithField("component", "githubClient")
	newGithubClient := func() app.GithubClient {
		return github.NewClient(
			limitedHTTPClient,
			conf.GithubAPIAddress,
			conf.GithubAPIToken,
			clientLogger,
		)
	}

	navigator, err := app.NewNavigator(
		newGithubClient,
		conf.ScreensCacheSize,
		conf.ScreensTTL,
		app.WithLoadTimeout(conf.ScreensLoadTimeout),
	)
	if err != nil {
		l.Fatalf("couldn't create navigator: %v", err)
	}

	accessLog := l.WithField("component", "httpAccess").Writer()
	defer accessLog.Close()

	mux := http.NewMux(
		navigator,
		conf.HTTPRequestTimeout,
		accessLog,
		l.WithField("component", "mux"),
	)
	server := http.NewServer(
		conf.HTTPServerAddress,
		conf.HTTPProfileServerAddress,
		mux,
		l.WithField("component", "httpServer"),
	)

	grpcService := grpc.NewService(navigator)
	grpcServer := grpc.NewServer(
		grpcService,
		conf.GRPCServerAddress,
		l.WithField("component", "grpcServer"),
	)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		server.Run()
		wg.Done()
	}()
	wg.Add(1)
	go func() {
		if err := grpcServer.Run(); err != nil {
			l.Fatalf("couldn't run grpc server: %v", err)
		}
		wg.Done()
	}()
	wg.Wait()
}
