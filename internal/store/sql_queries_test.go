// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildSelectSettingQuery(t *testing.T) {
	query, args, err := buildSelectSettingQuery(SaltKey)
	require.NoError(t, err)

	require.Equal(t, []any{SaltKey}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select value from settings")
	require.Contains(t, q, "where key = ?")
	require.Contains(t, q, "limit 1")

	// SQLite placeholders, never Postgres style
	require.NotContains(t, query, "$1")
}

func Test_buildInsertSettingQuery(t *testing.T) {
	query, args, err := buildInsertSettingQuery(SaltKey, "c2FsdA==")
	require.NoError(t, err)

	require.Equal(t, []any{SaltKey, "c2FsdA=="}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into settings (key,value) values (?,?)")
	require.True(t, strings.HasSuffix(q, "on conflict(key) do nothing"))
}
