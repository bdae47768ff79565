package db

import (
	"errors"
	"testing"

	"github.com/polenmarket/polen/internal/config"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestDialectSelection(t *testing.T) {
	for _, dbType := range []string{"mysql", "postgres", "sqlite"} {
		cfg := config.Config{DBType: dbType, DBName: "polen"}
		dialector, err := Dialect(cfg)
		require.NoError(t, err, dbType)
		require.Equal(t, dbType, dialector.Name())
	}

	_, err := Dialect(config.Config{DBType: "oracle"})
	require.Error(t, err)
}

func TestMySQLDSNReportsMatchedRows(t *testing.T) {
	cfg := config.Config{
		DBType:     "mysql",
		DBUser:     "polen",
		DBPassword: "secret",
		DBHost:     "localhost",
		DBPort:     "3306",
		DBName:     "polen",
	}
	dialector, err := Dialect(cfg)
	require.NoError(t, err)

	md, ok := dialector.(*mysql.Dialector)
	require.True(t, ok)
	require.Contains(t, md.DSN, "clientFoundRows=true")
}

func TestIsDuplicateKeyErr(t *testing.T) {
	require.False(t, IsDuplicateKeyErr(nil))
	require.True(t, IsDuplicateKeyErr(gorm.ErrDuplicatedKey))
	require.True(t, IsDuplicateKeyErr(errors.New(`duplicate key value violates unique constraint "usuarios_admin_username_key"`)))
	require.True(t, IsDuplicateKeyErr(errors.New("Error 1062: Duplicate entry")))
	require.True(t, IsDuplicateKeyErr(errors.New("UNIQUE constraint failed: usuarios_admin.username")))
	require.False(t, IsDuplicateKeyErr(errors.New("connection refused")))
}
