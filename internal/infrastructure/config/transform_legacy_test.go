package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformLegacyLayout_ActivityBarVisibleFalse(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	rawConfig := map[string]any{
		"workbench": map[string]any{
			"activityBar": map[string]any{"visible": false},
		},
	}

	applied := transformer.TransformLegacyLayout(rawConfig)
	require.Len(t, applied, 1)

	activityBar := rawConfig["workbench"].(map[string]any)["activityBar"].(map[string]any)
	assert.Equal(t, "hidden", activityBar["location"])
	assert.NotContains(t, activityBar, "visible")
}

func TestTransformLegacyLayout_KeepsExplicitLocation(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	rawConfig := map[string]any{
		"workbench": map[string]any{
			"activityBar": map[string]any{"visible": false, "location": "top"},
		},
	}

	transformer.TransformLegacyLayout(rawConfig)

	activityBar := rawConfig["workbench"].(map[string]any)["activityBar"].(map[string]any)
	assert.Equal(t, "top", activityBar["location"])
}

func TestTransformLegacyLayout_ActivityBarVisibleTrue(t *testing.T) {
	transformer := NewLegacyConfigTransformer()

	rawConfig := map[string]any{
		"workbench": map[string]any{
			"activitybar": map[string]any{"Visible": true},
		},
	}

	applied := transformer.TransformLegacyLayout(rawConfig)
	require.Len(t, applied, 1)

	activityBar := rawConfig["workbench"].(map[string]any)["activitybar"].(map[string]any)
	assert.Empty(t, activityBar)
}

func TestTransformLegacyLayout_ShowTabs(t *testing.T) {
	tests := []struct {
		name string
		in   bool
		want string
	}{
		{name: "true", in: true, want: "multiple"},
		{name: "false", in: false, want: "single"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rawConfig := map[string]any{
				"workbench": map[string]any{
					"editor": map[string]any{"showTabs": tt.in},
				},
			}

			NewLegacyConfigTransformer().TransformLegacyLayout(rawConfig)

			editor := rawConfig["workbench"].(map[string]any)["editor"].(map[string]any)
			assert.Equal(t, tt.want, editor["showTabs"])
		})
	}
}

func TestTransformLegacyLayout_ZenHideTabs(t *testing.T) {
	rawConfig := map[string]any{
		"zenMode": map[string]any{"hideTabs": true},
	}

	NewLegacyConfigTransformer().TransformLegacyLayout(rawConfig)

	zen := rawConfig["zenMode"].(map[string]any)
	assert.Equal(t, "none", zen["showTabs"])
	assert.NotContains(t, zen, "hideTabs")
}

func TestTransformLegacyLayout_CurrentConfigUntouched(t *testing.T) {
	rawConfig := map[string]any{
		"workbench": map[string]any{
			"activityBar": map[string]any{"location": "default"},
			"editor":      map[string]any{"showTabs": "multiple"},
		},
	}

	assert.Empty(t, NewLegacyConfigTransformer().TransformLegacyLayout(rawConfig))
}
