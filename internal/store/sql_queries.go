package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "settings"

// psql builds SQLite statements with "?" placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSettingQuery(key string) (string, []any, error) {
	query, args, err := psql.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertSettingQuery never overwrites an existing key: a conflicting
// insert affects zero rows.
func buildInsertSettingQuery(key, value string) (string, []any, error) {
	query, args, err := psql.
		Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
