package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/codguard/codguard/internal/api"
	"github.com/codguard/codguard/internal/cli"
	"github.com/codguard/codguard/internal/common"
	"github.com/codguard/codguard/internal/config"
	"github.com/codguard/codguard/internal/session"
	"github.com/codguard/codguard/internal/storage"
)

// newAPIClient builds a backend client. With requireAuth the saved session
// must exist and its token is attached; without it the client starts bare.
func newAPIClient(requireAuth bool) (*api.Client, error) {
	baseURL := viper.GetString("api.url")
	if baseURL == "" {
		baseURL = api.DefaultBaseURL
	}

	if !requireAuth {
		return api.NewClient(baseURL), nil
	}

	sess, err := session.Load()
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoSession):
			return nil, fmt.Errorf("not logged in, run `codguard auth login` first")
		case errors.Is(err, common.ErrSessionExpired):
			return nil, fmt.Errorf("session expired, run `codguard auth login` again")
		default:
			return nil, err
		}
	}

	return api.NewClient(baseURL, api.WithToken(sess.Token)), nil
}

// openHistory opens the local action history store. Failure is not fatal to
// the caller's operation; commands log and continue without history.
func openHistory() *storage.SQLiteStore {
	path := viper.GetString("database.path")
	if path == "" {
		var err error
		path, err = config.HistoryDB()
		if err != nil {
			return nil
		}
	} else {
		path = config.ExpandPath(path)
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning("action history unavailable: "+err.Error()))
		return nil
	}
	return store
}

// cliNotifier prints operation feedback to the terminal.
type cliNotifier struct{}

func (cliNotifier) Success(msg string) { fmt.Println(cli.FormatSuccess(msg)) }
func (cliNotifier) Error(msg string)   { fmt.Fprintln(os.Stderr, cli.FormatError(msg)) }

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// warnSampleMode prints the demonstration-data banner when the client fell
// back to sample data.
func warnSampleMode(client *api.Client) {
	if client.SampleMode() {
		fmt.Fprintln(os.Stderr, cli.FormatSampleMode())
	}
}
