// FILE: cubana-log/utility_test.go
package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelName covers the fixed severity-to-name mapping
func TestLevelName(t *testing.T) {
	tests := []struct {
		level int64
		name  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelFatal, "FATAL"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, LevelName(tt.level))
	}

	assert.Equal(t, "LEVEL(42)", LevelName(42))
}

// TestLevelParse covers the name-to-level mapping and round trip
func TestLevelParse(t *testing.T) {
	for _, level := range []int64{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		parsed, err := Level(LevelName(level))
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}

	parsed, err := Level("  WaRn ")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, parsed)

	_, err = Level("verbose")
	assert.Error(t, err)
}

// TestLevelOrdering verifies severity constants ascend
func TestLevelOrdering(t *testing.T) {
	assert.Less(t, LevelTrace, LevelDebug)
	assert.Less(t, LevelDebug, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
	assert.Less(t, LevelError, LevelFatal)
}

// TestValidLevel covers boundary values around the defined set
func TestValidLevel(t *testing.T) {
	for _, level := range []int64{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal} {
		assert.True(t, validLevel(level), "level %d", level)
	}
	for _, level := range []int64{-12, -9, -7, -1, 1, 3, 5, 13, 16} {
		assert.False(t, validLevel(level), "level %d", level)
	}
}

// TestParseKeyValue tests the override string splitter
func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue(" level = warn ")
	require.NoError(t, err)
	assert.Equal(t, "level", key)
	assert.Equal(t, "warn", value)

	key, value, err = parseKeyValue("name=a=b")
	require.NoError(t, err)
	assert.Equal(t, "name", key)
	assert.Equal(t, "a=b", value)

	_, _, err = parseKeyValue("no-equals")
	assert.Error(t, err)

	_, _, err = parseKeyValue("=value")
	assert.Error(t, err)
}

// TestFmtErrorf verifies the package prefix is applied once
func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("something broke")
	assert.Equal(t, "log: something broke", err.Error())

	err = fmtErrorf("log: already prefixed")
	assert.Equal(t, "log: already prefixed", err.Error())
}

// TestCombineErrors verifies nil handling and wrapping
func TestCombineErrors(t *testing.T) {
	e1 := errors.New("first")
	e2 := errors.New("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, e1, combineErrors(e1, nil))
	assert.Equal(t, e2, combineErrors(nil, e2))

	combined := combineErrors(e1, e2)
	require.Error(t, combined)
	assert.Contains(t, combined.Error(), "first")
	assert.ErrorIs(t, combined, e2)
}

// TestCaller verifies caller capture returns this test file
func TestCaller(t *testing.T) {
	file, line := caller(1)
	assert.Equal(t, "utility_test.go", file)
	assert.Positive(t, line)
}

// TestSdump verifies deep value rendering of unsupported types
func TestSdump(t *testing.T) {
	type payload struct {
		ID   int
		Tags map[string]bool
	}

	out := Sdump(payload{ID: 7, Tags: map[string]bool{"a": true}})
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "7")
	assert.Contains(t, out, "Tags")
}
