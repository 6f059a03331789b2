package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Clone_IsShallowCopy(t *testing.T) {
	nested := map[string]any{"k": "v"}
	r := Record{"name": "Alice", "nested": nested}

	c := r.Clone()
	c["name"] = "Bob"

	assert.Equal(t, "Alice", r["name"])
	assert.Equal(t, "Bob", c["name"])
	assert.Equal(t, nested, c["nested"])
}

func TestRecord_Clone_Nil(t *testing.T) {
	var r Record
	assert.Nil(t, r.Clone())
}

func TestFieldSet_Contains(t *testing.T) {
	f := FieldSet{"name", "notes"}
	assert.True(t, f.Contains("notes"))
	assert.False(t, f.Contains("balance"))
	assert.False(t, FieldSet(nil).Contains("name"))
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")
	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "version N/A (commit N/A, built 2026-01-01)", info.String())
}
