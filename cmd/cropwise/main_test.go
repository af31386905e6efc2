package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sood122/yeild-pridiction/internal/config"
	"github.com/Sood122/yeild-pridiction/internal/fuzzy"
	"github.com/Sood122/yeild-pridiction/internal/model"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.toml")))
	t.Cleanup(func() {
		scoreJSON = false
		scoreSeason = ""
		initConfigForce = false
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestScoreCommand(t *testing.T) {
	out, _, err := execute(t, "score", "--rainfall", "100", "--temperature", "30", "--fertilizer", "100", "--season", "Kharif")
	require.NoError(t, err)
	assert.Contains(t, out, "Recommendation Score (0-10): 8.67 (good)")
	assert.Contains(t, out, "Best Crops for Kharif Season:")
	assert.Contains(t, out, "- Rice\n- Maize\n- Cotton\n")
}

func TestScoreCommandJSON(t *testing.T) {
	out, _, err := execute(t, "score", "--rainfall", "0", "--temperature", "10", "--fertilizer", "0", "--json")
	require.NoError(t, err)

	var rec model.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "1.67", rec.Display)
	assert.Len(t, rec.Rules, 4)
}

func TestScoreCommandWarnsOnClamp(t *testing.T) {
	_, errOut, err := execute(t, "score", "--rainfall=-20", "--temperature", "10", "--fertilizer", "0")
	require.NoError(t, err)
	assert.Contains(t, errOut, "rainfall -20 is outside [0, 200], clamped to 0")
}

func TestScoreCommandUndefined(t *testing.T) {
	_, _, err := execute(t, "score", "--rainfall", "0", "--temperature", "50", "--fertilizer", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, fuzzy.ErrUndefinedScore)
}

func TestCropsCommand(t *testing.T) {
	out, _, err := execute(t, "crops", "Zaid")
	require.NoError(t, err)
	assert.Equal(t, "Best Crops for Zaid Season:\n- Watermelon\n- Cucumber\n- Moong\n", out)

	out, errOut, err := execute(t, "crops", "Monsoon")
	require.NoError(t, err)
	assert.Equal(t, "Best Crops for Monsoon Season:\n", out)
	assert.Contains(t, errOut, "unknown season")
}

func TestInitConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"init-config", "--config", path})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(path)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Server.Port, cfg.Server.Port)

	// 已存在时拒绝覆盖
	rootCmd.SetArgs([]string{"init-config", "--config", path})
	assert.Error(t, rootCmd.Execute())
}

func TestExportCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "grid.xlsx")
	stdout, stderr, err := execute(t, "export", "--out", out, "--step", "50")
	require.NoError(t, err)
	assert.Contains(t, stdout, "wrote "+out)
	assert.Contains(t, stderr, "[100%] done")

	_, err = os.Stat(out)
	assert.NoError(t, err)
}
