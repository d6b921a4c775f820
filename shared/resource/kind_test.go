package resource

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name        string
		expected    Kind
		expectedErr error
	}{
		{name: "container", expected: KindContainer},
		{name: "network-zone-record", expected: KindNetworkZoneRecord},
		{name: "config-device", expected: KindConfigDevice},
		{name: "instance", expectedErr: fmt.Errorf("Unknown resource kind %q", "instance")},
		{name: "", expectedErr: fmt.Errorf("Unknown resource kind %q", "")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKind(tt.name)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, k)
		})
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("rename")
	require.NoError(t, err)
	assert.Equal(t, ActionRename, a)

	_, err = ParseAction("frobnicate")
	assert.EqualError(t, err, `Unknown action "frobnicate"`)
}

func TestKindsAreUnique(t *testing.T) {
	seen := map[Kind]bool{}
	for _, k := range Kinds() {
		require.False(t, seen[k], "Duplicate kind %q", k)
		seen[k] = true
	}

	seenActions := map[Action]bool{}
	for _, a := range Actions() {
		require.False(t, seenActions[a], "Duplicate action %q", a)
		seenActions[a] = true
	}

	assert.Len(t, Actions(), 29)
}

func TestKindsReturnsCopy(t *testing.T) {
	all := Kinds()
	all[0] = "mangled"
	assert.Equal(t, KindContainer, Kinds()[0])
}
