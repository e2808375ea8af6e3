package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		meta      Metadata
		wantField string
	}{
		{
			name: "valid simple name",
			meta: Metadata{Name: "pdf-processing", Description: "Extract text from PDFs"},
		},
		{
			name: "valid with digits",
			meta: Metadata{Name: "mp4-to-gif-2", Description: "Convert videos"},
		},
		{
			name: "valid at name limit",
			meta: Metadata{Name: strings.Repeat("a", 64), Description: "ok"},
		},
		{
			name:      "empty name",
			meta:      Metadata{Name: "", Description: "ok"},
			wantField: "name",
		},
		{
			name:      "name too long",
			meta:      Metadata{Name: strings.Repeat("a", 65), Description: "ok"},
			wantField: "name",
		},
		{
			name:      "uppercase letter",
			meta:      Metadata{Name: "PDF-processing", Description: "ok"},
			wantField: "name",
		},
		{
			name:      "underscore",
			meta:      Metadata{Name: "pdf_processing", Description: "ok"},
			wantField: "name",
		},
		{
			name:      "space",
			meta:      Metadata{Name: "pdf processing", Description: "ok"},
			wantField: "name",
		},
		{
			name:      "non-ascii rune",
			meta:      Metadata{Name: "pdf-procéssing", Description: "ok"},
			wantField: "name",
		},
		{
			name: "description at limit",
			meta: Metadata{Name: "ok", Description: strings.Repeat("d", 1024)},
		},
		{
			name:      "description too long",
			meta:      Metadata{Name: "ok", Description: strings.Repeat("d", 1025)},
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.meta.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected *ValidationError, got %T", err)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidateDescriptionCountsRunes(t *testing.T) {
	// 1024 two-byte runes: over the limit in bytes, within it in characters.
	meta := Metadata{Name: "ok", Description: strings.Repeat("é", 1024)}
	assert.NoError(t, meta.Validate())

	meta.Description = strings.Repeat("é", 1025)
	err := meta.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description")
}

func TestValidateFirstViolationWins(t *testing.T) {
	meta := Metadata{Name: "", Description: strings.Repeat("d", 2000)}

	err := meta.Validate()
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "name", validationErr.Field)
}
