package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() ServiceRecord {
	return ServiceRecord{
		ID:       "aws-ec2",
		Name:     "EC2",
		Provider: ProviderAWS,
		Category: CategoryCompute,
		Features: []string{"Auto Scaling", "Load Balancing", "Multiple Instance Types", "Spot Instances"},
		Regions:  []string{"us-east-1", "us-west-2"},
		Tags:     []string{"Core"},
	}
}

func TestServiceRecord_TopFeatures(t *testing.T) {
	r := sampleRecord()

	assert.Equal(t, []string{"Auto Scaling", "Load Balancing", "Multiple Instance Types"}, r.TopFeatures(3))
	assert.Len(t, r.TopFeatures(10), 4)
	assert.Len(t, r.TopFeatures(-1), 4)
	assert.Empty(t, r.TopFeatures(0))
}

func TestServiceRecord_Clone(t *testing.T) {
	r := sampleRecord()
	c := r.Clone()

	c.Features[0] = "changed"
	c.Regions[0] = "changed"
	c.Tags[0] = "changed"

	assert.Equal(t, "Auto Scaling", r.Features[0])
	assert.Equal(t, "us-east-1", r.Regions[0])
	assert.Equal(t, "Core", r.Tags[0])
}

func TestServiceRecord_Clone_NilSlices(t *testing.T) {
	c := ServiceRecord{ID: "x"}.Clone()

	assert.Nil(t, c.Features)
	assert.Nil(t, c.Regions)
	assert.Nil(t, c.Tags)
}

func TestComparisonRow_Slot(t *testing.T) {
	aws := sampleRecord()
	row := ComparisonRow{AWS: &aws}

	require.NotNil(t, row.Slot(ProviderAWS))
	assert.Equal(t, "aws-ec2", row.Slot(ProviderAWS).ID)
	assert.Nil(t, row.Slot(ProviderAzure))
	assert.Nil(t, row.Slot(ProviderGCP))
	assert.Nil(t, row.Slot(Provider("IBM")))
	assert.False(t, row.Complete())
}

func TestSelection_Toggle(t *testing.T) {
	s := Selection{}

	s = s.Toggle("aws-ec2")
	s = s.Toggle("azure-vm")
	assert.Equal(t, []string{"aws-ec2", "azure-vm"}, s.IDs())

	s = s.Toggle("aws-ec2")
	assert.Equal(t, []string{"azure-vm"}, s.IDs())
	assert.False(t, s.Contains("aws-ec2"))
}

func TestSelection_NeverExceedsMax(t *testing.T) {
	s := NewSelection("a", "b", "c")
	require.True(t, s.Full())

	next := s.Toggle("d")

	assert.Equal(t, MaxComparison, next.Len())
	assert.False(t, next.Contains("d"))
	assert.Equal(t, s.IDs(), next.IDs())
}

func TestSelection_IsValue(t *testing.T) {
	original := NewSelection("a")
	_ = original.Toggle("b")

	assert.Equal(t, []string{"a"}, original.IDs())
}

func TestNewSelection_Deduplicates(t *testing.T) {
	s := NewSelection("a", "a", "b", "c", "d")

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
}
