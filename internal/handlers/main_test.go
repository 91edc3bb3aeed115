package handlers

import (
	"io"
	"os"
	"testing"

	"alexsimon-listings/pkg/logger"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}
