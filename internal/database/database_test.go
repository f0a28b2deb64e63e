package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "matches"} {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name, "The '%s' table should be created", table)
	}
}

func TestInitDB_EnforcesConstraints(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec("INSERT INTO players (name, registered_at) VALUES ('Ada', 1)")
	require.NoError(t, err)

	t.Run("rejects unknown players", func(t *testing.T) {
		_, err := db.Exec("INSERT INTO matches (winner_id, loser_id, created_at) VALUES (1, 99, 1)")
		assert.Error(t, err, "foreign keys should be enforced")
	})

	t.Run("rejects self matches", func(t *testing.T) {
		_, err := db.Exec("INSERT INTO matches (winner_id, loser_id, created_at) VALUES (1, 1, 1)")
		assert.Error(t, err, "check constraint should reject winner == loser")
	})
}

func TestInitDB_InMemoryDatabasesAreIsolated(t *testing.T) {
	first, teardownFirst, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardownFirst()

	second, teardownSecond, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardownSecond()

	_, err = first.Exec("INSERT INTO players (name, registered_at) VALUES ('Ada', 1)")
	require.NoError(t, err)

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM players").Scan(&count))
	assert.Equal(t, 0, count)
}
