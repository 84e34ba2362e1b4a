package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/lakecity-club/clubstate/pkg/cli/config"
)

func TestStorageConfigureMemory(t *testing.T) {
	s := config.NewStorageForTest("memory", "")
	storage, closer, err := s.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer closer()

	gt.NoError(t, storage.SetItem(context.Background(), "k", "v"))
	value, found, err := storage.GetItem(context.Background(), "k")
	gt.NoError(t, err)
	gt.Bool(t, found).True()
	gt.Value(t, value).Equal("v")
}

func TestStorageConfigureSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubstate.db")
	s := config.NewStorageForTest("sqlite", path)
	storage, closer, err := s.Configure(context.Background())
	gt.NoError(t, err).Required()
	defer closer()

	gt.NoError(t, storage.SetItem(context.Background(), "k", "v"))
}

func TestStorageConfigureSQLiteRequiresPath(t *testing.T) {
	s := config.NewStorageForTest("sqlite", "")
	_, _, err := s.Configure(context.Background())
	gt.Error(t, err)
}

func TestStorageConfigureRejectsUnknownBackend(t *testing.T) {
	s := config.NewStorageForTest("etcd", "")
	_, _, err := s.Configure(context.Background())
	gt.Error(t, err)
}

func TestLoggerConfigure(t *testing.T) {
	l := config.NewLoggerForTest("debug", "json", "stderr")
	closer, err := l.Configure()
	gt.NoError(t, err).Required()
	closer()
}

func TestLoggerConfigureToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clubstate.log")
	l := config.NewLoggerForTest("info", "console", path)
	closer, err := l.Configure()
	gt.NoError(t, err).Required()
	closer()
}

func TestLoggerConfigureRejectsInvalidLevel(t *testing.T) {
	l := config.NewLoggerForTest("verbose", "console", "stderr")
	_, err := l.Configure()
	gt.Error(t, err)
}

func TestLoggerConfigureRejectsInvalidFormat(t *testing.T) {
	l := config.NewLoggerForTest("info", "xml", "stderr")
	_, err := l.Configure()
	gt.Error(t, err)
}
