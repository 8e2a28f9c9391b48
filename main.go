package main

import (
	"log"
	"path/filepath"

	"feedcli/api"
	"feedcli/auth"
	"feedcli/cmd"
	"feedcli/fs"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// optional .env for FEEDCLI_API_HOST and friends
	_ = godotenv.Load()

	// inter-package dependency injection to avoid a circular import
	auth.SetApiClient(api.Client)

	// file logger with rotation
	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(fs.HomeFeedDir, "feedcli.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}

func main() {
	cmd.Execute()
}
