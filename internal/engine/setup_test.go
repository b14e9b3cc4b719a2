package engine

import (
	"os"
	"testing"

	"crawl-server/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}
