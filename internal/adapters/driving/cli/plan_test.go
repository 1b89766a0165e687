package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cloudcompass/internal/core/domain"
	"github.com/custodia-labs/cloudcompass/internal/core/services"
)

// stubAskPlan replaces the interactive prompt for the duration of a test.
func stubAskPlan(t *testing.T, fn func(req *domain.PlanRequest) error) {
	t.Helper()
	original := askPlan
	askPlan = fn
	t.Cleanup(func() { askPlan = original })
}

func TestPlanCmd_Defaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "plan")

	require.NoError(t, err)
	assert.Contains(t, out, "Migration plan: AWS to GCP")
	assert.Contains(t, out, "Approach:  Re-platform")
	assert.Contains(t, out, "[Timeline]")
	assert.Contains(t, out, "Services in scope: 11")
	assert.NotContains(t, out, "Note:")
}

func TestPlanCmd_Flags(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "plan",
		"--from", "on-premise", "--to", "azure", "--complexity", "Complex",
		"--area", "compute,storage")

	require.NoError(t, err)
	assert.Contains(t, out, "Migration plan: on-premise to Azure")
	assert.Contains(t, out, "Re-architect")
	assert.Contains(t, out, "Service areas: Compute/VMs, Storage")
	assert.Contains(t, out, "Services in scope: 33")
	assert.Contains(t, out, "Note: Consider engaging professional services")
}

func TestPlanCmd_ServiceMapping(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "plan", "--from", "aws", "--to", "gcp", "--service", "aws-s3")

	require.NoError(t, err)
	assert.Contains(t, out, "[Service mapping]")
	assert.Contains(t, out, "(aws-s3) -> Google Cloud Storage")
}

func TestPlanCmd_UnknownServiceNeedsManualAssessment(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "plan", "--service", "aws-nope")

	require.NoError(t, err)
	assert.Contains(t, out, "- (aws-nope) -> "+domain.ManualAssessment)
}

func TestPlanCmd_SameSourceAndTarget(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "plan", "--from", "gcp", "--to", "GCP")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlanCmd_JSON(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "plan", "--json", "--complexity", "simple")
	require.NoError(t, err)

	var got domain.MigrationPlan
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.ComplexitySimple, got.Strategy.Complexity)
	assert.Equal(t, "Lift and Shift", got.Strategy.Approach)
}

func TestPlanCmd_UsesPlannerSettings(t *testing.T) {
	s := setupTestServices(t)
	require.NoError(t, s.Settings.Set(services.KeyPlannerSource, "azure"))
	require.NoError(t, s.Settings.Set(services.KeyPlannerTarget, "aws"))

	out, err := execute(t, "plan")

	require.NoError(t, err)
	assert.Contains(t, out, "Migration plan: Azure to AWS")
}

func TestPlanCmd_Interactive(t *testing.T) {
	setupTestServices(t)
	stubAskPlan(t, func(req *domain.PlanRequest) error {
		assert.Equal(t, "aws", req.Source, "prompt starts from the defaults")
		req.Source = "gcp"
		req.Target = domain.ProviderAzure
		return nil
	})

	out, err := execute(t, "plan", "-i")

	require.NoError(t, err)
	assert.Contains(t, out, "Migration plan: GCP to Azure")
}

func TestPlanCmd_InteractiveAborted(t *testing.T) {
	setupTestServices(t)
	stubAskPlan(t, func(*domain.PlanRequest) error {
		return errors.New("interrupt")
	})

	_, err := execute(t, "plan", "--interactive")

	assert.EqualError(t, err, "prompt: interrupt")
}

func TestPlanCmd_NoPlanner(t *testing.T) {
	SetServices(nil)

	_, err := execute(t, "plan")

	assert.EqualError(t, err, "migration planner not configured")
}

func TestDefaultOption(t *testing.T) {
	options := []string{"simple", "medium", "complex"}

	assert.Equal(t, "medium", defaultOption(options, "medium"))
	assert.Nil(t, defaultOption(options, "extreme"))
}
