package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{ServiceName: "medisync-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSetupWithEndpoint(t *testing.T) {
	// Non-routable address; the exporter connects lazily so nothing is sent
	shutdown, err := Setup(context.Background(), Config{
		Endpoint:    "192.0.2.1:4317",
		ServiceName: "medisync-test",
		Insecure:    true,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}

func TestExporterOptions(t *testing.T) {
	assert.Len(t, exporterOptions(Config{Endpoint: "collector:4317"}), 1)
	assert.Len(t, exporterOptions(Config{Endpoint: "http://collector:4317", Insecure: true}), 2)
}
