package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassificationsRoundTrip(t *testing.T) {
	in := Classifications{
		"a": {State: StateNormal},
		"b": {State: StateNormal, Pending: PendingInactive},
		"c": {State: StateInactive, Pending: PendingRecentlyClosed},
		"d": {State: StateRecentlyClosed},
	}

	data, err := EncodeClassifications(in)
	require.NoError(t, err)

	out, err := DecodeClassifications(data)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestEncodeClassificationsLayout(t *testing.T) {
	data, err := EncodeClassifications(Classifications{
		"a": {State: StateInactive},
		"b": {State: StateNormal, Pending: PendingRecentlyClosed},
	})
	require.NoError(t, err)

	var raw map[string]map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Equal(t, map[string]string{"currentState": "inactive"}, raw["a"])
	require.Equal(t, map[string]string{
		"currentState":      "normal",
		"pendingTransition": "shouldBecomeRecentlyClosed",
	}, raw["b"])
}

func TestDecodeClassificationsDefaults(t *testing.T) {
	out, err := DecodeClassifications([]byte(`{"a":{},"b":null,"c":{"pendingTransition":"shouldBecomeInactive"}}`))
	require.NoError(t, err)

	require.Equal(t, Record{State: StateNormal}, out["a"])
	require.Equal(t, Record{State: StateNormal}, out["b"])
	require.Equal(t, Record{State: StateNormal, Pending: PendingInactive}, out["c"])
}

func TestDecodeClassificationsEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", "null", "{}"} {
		out, err := DecodeClassifications([]byte(in))
		require.NoError(t, err, in)
		require.NotNil(t, out, in)
		require.Empty(t, out, in)
	}
}

func TestDecodeClassificationsRejectsCorruptData(t *testing.T) {
	for _, in := range []string{
		`{"a":`,
		`[1,2,3]`,
		`{"a":{"currentState":"closed"}}`,
		`{"a":{"currentState":"normal","pendingTransition":"later"}}`,
		`{"a":{"currentState":7}}`,
	} {
		_, err := DecodeClassifications([]byte(in))
		require.Error(t, err, in)
	}
}
