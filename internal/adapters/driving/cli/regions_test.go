package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsCmd_All(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "regions")

	require.NoError(t, err)
	assert.Contains(t, out, "Amazon Web Services")
	assert.Contains(t, out, "Google Cloud Platform")
	assert.Contains(t, out, "18 regions, best latency 15ms, 6 major areas")
}

func TestRegionsCmd_Provider(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "regions", "--provider", "aws")

	require.NoError(t, err)
	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "15ms")
	assert.Contains(t, out, "Excellent")
	assert.NotContains(t, out, "Microsoft Azure")
}

func TestRegionsCmd_UnknownProvider(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "regions", "-p", "oracle")

	require.NoError(t, err)
	assert.Contains(t, out, "No regions for provider: oracle")
}

func TestRegionsCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "regions", "--json")
	require.NoError(t, err)

	var got regionsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Providers, 3)
	assert.Equal(t, 18, got.Overview.TotalRegions)
}

func TestRegionsCmd_NoService(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "regions")

	assert.EqualError(t, err, "region service not configured")
}
