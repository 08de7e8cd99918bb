package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationScript_OrdersFilesAndTerminatesStatements(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0002_b.up.sql"), []byte("CREATE TABLE b (id INT);\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_a.up.sql"), []byte("CREATE TABLE a (id INT)"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_a.down.sql"), []byte("DROP TABLE a"), 0o600))

	// Act
	script, err := MigrationScript(dir)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "-- 0001_a.up.sql\nCREATE TABLE a (id INT);\n\n-- 0002_b.up.sql\nCREATE TABLE b (id INT);\n", script)
}

func TestMigrationScript_EmptyDir(t *testing.T) {
	_, err := MigrationScript(t.TempDir())

	assert.Error(t, err)
}

func TestMigrationScript_ProjectMigrations(t *testing.T) {
	script, err := MigrationScript(defaultMigrationsDir())

	require.NoError(t, err)
	assert.Contains(t, script, "press_comments")
	assert.Contains(t, script, "fixtures")
}

func TestPGConfig_Defaults(t *testing.T) {
	cfg := PGConfig{Database: "custom"}.withDefaults()

	assert.Equal(t, DefaultPGImage, cfg.Image)
	assert.Equal(t, "custom", cfg.Database)
	assert.Equal(t, "test", cfg.Username)
	assert.NotEmpty(t, cfg.MigrationsDir)
}
