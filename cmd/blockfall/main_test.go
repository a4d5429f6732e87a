package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	flagConfig, flagDifficulty = "", ""
	flagClear, flagInteractive = false, false
	flagScorePlayer, flagLimit = "", 10
	t.Cleanup(func() {
		blockfall.SetConfigPath("")
		blockfall.SetDifficultyPreset("")
	})

	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()
	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("timing:\n  start_delay: -1s\n"), 0o600))
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("timing: [\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"list", "--config", filepath.Join(dir, "nope.yaml")}},
		{"invalid rules", []string{"list", "--config", invalid}},
		{"unparsable yaml", []string{"list", "--config", broken}},
		{"unknown difficulty", []string{"list", "--difficulty", "insane"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, execute(t, tt.args...))
		})
	}
}

func TestAcceptsValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timing:\n  start_delay: 500ms\n"), 0o600))

	assert.NoError(t, execute(t, "list", "--config", path, "--difficulty", "hard"))
}

func TestScoresClear(t *testing.T) {
	db := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(db)
	require.NoError(t, err)
	_, err = store.SaveScore(blockfall.GameID, "alice", 300, 2)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	require.NoError(t, execute(t, "scores", "--db", db, "--clear"))

	store, err = storage.Open(db)
	require.NoError(t, err)
	defer store.Close()
	scores, err := store.TopScores(blockfall.GameID, 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("localhost:2222"))
	assert.Equal(t, "bogus", portOf("bogus"))
}
