package main

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/lead-import/internal/store"
	"github.com/sells-group/lead-import/pkg/closeapi"
)

func initStore() (store.Store, error) {
	path := cfg.Store.Path
	if path == "" {
		path = "lead-import.db"
	}
	return store.NewSQLite(path)
}

func initClose() (closeapi.Client, error) {
	if cfg.Close.APIKey == "" {
		return nil, eris.New("close api key is required (LEADIMPORT_CLOSE_API_KEY)")
	}

	opts := []closeapi.Option{
		closeapi.WithRateLimit(cfg.Close.RateLimit),
	}
	if cfg.Close.BaseURL != "" {
		opts = append(opts, closeapi.WithBaseURL(cfg.Close.BaseURL))
	}
	return closeapi.NewClient(cfg.Close.APIKey, opts...), nil
}
