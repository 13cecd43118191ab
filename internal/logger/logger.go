package logger

import (
	"os"

	"go.uber.org/zap"
)

// New builds the service logger: production JSON by default, development
// console output when APP_ENV=development.
func New() *zap.Logger {
	var l *zap.Logger
	var err error
	if os.Getenv("APP_ENV") == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
