package telemetry

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), Config{Enabled: false})

	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestSamplerSelection(t *testing.T) {
	cases := []struct {
		samplerType string
		contains    string
	}{
		{"always", "AlwaysOnSampler"},
		{"never", "AlwaysOffSampler"},
		{"ratio", "ParentBased"},
		{"", "AlwaysOnSampler"},
		{"bogus", "AlwaysOnSampler"},
	}

	for _, tc := range cases {
		cfg := Config{SamplerType: tc.samplerType, SamplerRatio: 0.5}
		assert.Contains(t, cfg.sampler().Description(), tc.contains, "sampler type %q", tc.samplerType)
	}
}

func TestTracerDefaultsName(t *testing.T) {
	assert.NotNil(t, Tracer(""))
	assert.NotNil(t, Tracer("skillet.skills"))
}

func TestWithSpanPropagatesError(t *testing.T) {
	boom := errors.New("boom")

	err := WithSpan(context.Background(), "op", func(ctx context.Context) error {
		return boom
	}, attribute.String("key", "value"))
	assert.Equal(t, boom, err)

	err = WithSpan(context.Background(), "op", func(ctx context.Context) error {
		return nil
	})
	assert.NoError(t, err)
}
