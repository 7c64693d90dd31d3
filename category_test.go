package duaqos

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClass(t *testing.T) {
	tests := []struct {
		in      string
		want    Class
		wantErr bool
	}{
		{"reliable", ClassReliable, false},
		{"Reliable", ClassReliable, false},
		{"best-effort", ClassBestEffort, false},
		{"besteffort", ClassBestEffort, false},
		{"best_effort", ClassBestEffort, false},
		{" persistent ", ClassPersistent, false},
		{"legacy", ClassLegacy, false},
		{"visualization", ClassVisualization, false},
		{"latched", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseClass(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownClass))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range []Category{CategoryDatum, CategoryCommand, CategoryScan, CategoryImage, CategoryMarker} {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("IMAGE")
	require.NoError(t, err)
	assert.Equal(t, CategoryImage, got)

	_, err = ParseCategory("pointcloud")
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestClassCategoryText(t *testing.T) {
	text, err := ClassBestEffort.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "best-effort", string(text))

	text, err = CategoryMarker.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "marker", string(text))

	assert.Equal(t, "Class(42)", Class(42).String())
	assert.Equal(t, "Category(42)", Category(42).String())
}
