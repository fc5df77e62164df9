package database

import (
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	t.Parallel()

	out, err := NormalizeDSN("user:pass@tcp(db:3306)/parchment?loc=Local")
	require.NoError(t, err)

	parsed, err := mysqldriver.ParseDSN(out)
	require.NoError(t, err)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, "UTC", parsed.Loc.String())
	assert.Equal(t, "db:3306", parsed.Addr)
	assert.Equal(t, "parchment", parsed.DBName)
}

func TestNormalizeDSN_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NormalizeDSN("not a dsn")
	assert.Error(t, err)
}
