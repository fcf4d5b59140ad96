package testlog

import (
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/brindle/wingnrp/internal/logging"
)

// Start configures the test logging profile and announces t's name.
func Start(t *testing.T) {
	t.Helper()
	logging.ConfigureTests()
	log.Info().Str("test", t.Name()).Msg("test start")
}
