package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shubhamgoyal071/website/internal/config"
	"github.com/shubhamgoyal071/website/internal/testutils"
)

// Initializes configuration for the main package tests.
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "school-site-main-config-*")
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

// Covers: the allowed upload roots pass the path check without exiting.
func TestCheckSecurePathAllows(t *testing.T) {
	tmp := t.TempDir()
	oldwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	defer func() { _ = os.Chdir(oldwd) }()

	for _, path := range []string{
		"uploads/photos",
		"public/assets",
		"static",
		"tmp/photos",
		filepath.Join(os.TempDir(), "outside-project"),
	} {
		checkSecurePath(path)
	}
}

func TestPrintWelcomeMessage(t *testing.T) {
	printWelcomeMessage()
}
