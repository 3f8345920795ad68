package layoutstate

import (
	"testing"

	"github.com/bnema/shellgrid/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		name    string
		key     *entity.StateKey
		raw     string
		want    any
		wantErr bool
	}{
		{name: "bool true", key: SideBarHidden, raw: "true", want: true},
		{name: "bool anything else", key: SideBarHidden, raw: "yes", want: false},
		{name: "number", key: PanelSize, raw: "266.5", want: 266.5},
		{name: "number with unit", key: PanelSize, raw: "300px", want: 300.0},
		{name: "negative leading int", key: PanelSize, raw: "-12abc", want: -12.0},
		{name: "not a number", key: PanelSize, raw: "wide", want: "wide", wantErr: true},
		{name: "position", key: PanelPosition, raw: "right", want: entity.PositionRight},
		{name: "alignment", key: PanelAlignment, raw: "justify", want: entity.AlignmentJustify},
		{
			name: "exit info",
			key:  ZenModeExitInfo,
			raw:  `{"transitionedToFullScreen":true,"wasVisible":{"sideBar":true,"panel":false,"auxiliaryBar":false}}`,
			want: entity.ZenModeExitInfo{
				TransitionedToFullScreen: true,
				WasVisible:               entity.ZenModeVisibility{SideBar: true},
			},
		},
		{name: "bad object", key: ZenModeExitInfo, raw: "{", want: "{", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeValue(tt.key, tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, errCoercion)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{in: true, want: "true"},
		{in: 266.5, want: "266.5"},
		{in: 300.0, want: "300"},
		{in: 7, want: "7"},
		{in: entity.PositionTop, want: "top"},
		{in: entity.ZenModeExitInfo{}, want: `{"transitionedToCenteredEditorLayout":false,"transitionedToFullScreen":false,"handleNotificationsDoNotDisturbMode":false,"wasVisible":{"sideBar":false,"panel":false,"auxiliaryBar":false}}`},
	}

	for _, tt := range tests {
		got, err := encodeValue(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestEncodeDecodeExitInfo(t *testing.T) {
	info := entity.ZenModeExitInfo{
		TransitionedToCenteredEditorLayout:  true,
		HandleNotificationsDoNotDisturbMode: true,
		WasVisible:                          entity.ZenModeVisibility{Panel: true, AuxiliaryBar: true},
	}
	raw, err := encodeValue(info)
	require.NoError(t, err)

	got, err := decodeValue(ZenModeExitInfo, raw)
	require.NoError(t, err)
	assert.Equal(t, info, got)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 250.0, normalizeValue(SideBarSize, 250))
	assert.Equal(t, entity.PositionRight, normalizeValue(SideBarPosition, "right"))
	assert.Equal(t, true, normalizeValue(PanelHidden, true))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(PanelHidden, "false")
	require.NoError(t, err)
	assert.Equal(t, false, v)

	_, err = ParseValue(PanelHidden, "maybe")
	assert.Error(t, err)

	_, err = ParseValue(PanelPosition, "middle")
	assert.ErrorIs(t, err, entity.ErrInvalidPosition)

	_, err = ParseValue(PanelAlignment, "diagonal")
	assert.ErrorIs(t, err, entity.ErrInvalidAlignment)

	v, err = ParseValue(PanelSize, "420")
	require.NoError(t, err)
	assert.Equal(t, 420.0, v)
}
