package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestRun_SignalHandlerDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	var out bytes.Buffer
	app := &App{
		logger: logging.NewJSONLogger(io.Discard, slog.LevelInfo),
		out:    &out,
	}

	for i := 0; i < 3; i++ {
		assert.NoError(t, app.Run(context.Background(), []string{"version"}))
	}
	assert.Contains(t, out.String(), "Build version")
}

func TestInitSignalHandler_StopsOnContextDone(t *testing.T) {
	defer goleak.VerifyNone(t)

	app := &App{logger: logging.NewJSONLogger(io.Discard, slog.LevelInfo)}

	ctx, cancel := context.WithCancel(context.Background())
	app.initSignalHandler(ctx, cancel)
	cancel()
	<-ctx.Done()
}
