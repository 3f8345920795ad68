package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Short(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"empty", Info{}, "shellgrid dev"},
		{"unknown commit", Info{Version: "v0.3.0", Commit: "unknown"}, "shellgrid v0.3.0"},
		{"long commit", Info{Version: "v0.3.0", Commit: "0123456789abcdef"}, "shellgrid v0.3.0 (0123456)"},
		{"short commit", Info{Version: "v1.0.0", Commit: "abc"}, "shellgrid v1.0.0 (abc)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.Short())
		})
	}
}
