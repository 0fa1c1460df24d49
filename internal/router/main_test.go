package router

import (
	"os"
	"testing"

	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/testutils"
)

// Initializes configuration for the router package tests.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "school-site-router-config-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("SCHOOL_SITE_SERVER_MODE", "debug"),
		testutils.SetEnv("SCHOOL_SITE_JWT_SECRET", "test_secret"),
		testutils.SetEnv("SCHOOL_SITE_JWT_EXPIRATION_HOURS", "24"),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	os.Exit(code)
}
