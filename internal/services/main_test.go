package services

import (
	"io"
	"os"
	"testing"

	"alexsimon-listings/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}
