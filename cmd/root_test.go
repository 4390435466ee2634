package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLogLevel(t *testing.T) {
	cases := []struct {
		name        string
		flagSet     bool
		flagValue   string
		configValue string
		want        string
	}{
		{"config wins over flag default", false, "info", "debug", "debug"},
		{"explicit flag wins over config", true, "warn", "debug", "warn"},
		{"explicit flag at default value still wins", true, "info", "debug", "info"},
		{"flag default with empty config", false, "info", "", "info"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, resolveLogLevel(tc.flagSet, tc.flagValue, tc.configValue))
		})
	}
}
