package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"object_explorer/internal/domain/entity"
)

const testSnapshot = `{"objects": [
  {"id": "0xc1", "objType": "0x2::coin::Coin<0x2::sui::SUI>", "owner": "0xa", "data": {"contents": {"balance": "9007199254740993"}}},
  {"id": "0xc2", "objType": "0x2::coin::Coin<0x2::sui::SUI>", "owner": "0xa", "data": {"contents": {"balance": "1"}}},
  {"id": "0xn1", "objType": "0x2::devnet_nft::DevNetNFT", "owner": "0xa"},
  {"id": "0xpkg", "objType": "package", "data": {"modules": {"m": "module m {}"}}}
]}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	snapshotPath := filepath.Join(dir, "objects.json")
	require.NoError(t, os.WriteFile(snapshotPath, []byte(testSnapshot), 0o600))
	cfgPath := filepath.Join(dir, "config.yml")
	cfgYAML := "logging:\n  level: error\nsource:\n  mode: static\n  snapshotPath: " + snapshotPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", cfgPath, "--env-file", filepath.Join(dir, "absent.env")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestOwnedCommand(t *testing.T) {
	out, err := runCLI(t, "owned", "0xa")
	require.NoError(t, err)

	var view entity.OwnedObjectsView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, entity.PanelLoaded, view.State)
	require.NotNil(t, view.Coins)
	assert.Equal(t, "9007199254740994", view.Coins.Groups[0].Balance)
	require.NotNil(t, view.NFTs)
	assert.Equal(t, 1, view.NFTs.Stats.Count)
}

func TestModulesCommand(t *testing.T) {
	out, err := runCLI(t, "modules", "0xpkg")
	require.NoError(t, err)

	var page entity.ModulesPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "Modules", page.Title)
	assert.Len(t, page.Modules, 1)

	_, err = runCLI(t, "modules", "0xn1")
	assert.ErrorIs(t, err, entity.ErrNotAPackage)
}

func TestZapLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, zapLevel(slog.LevelDebug))
	assert.Equal(t, zapcore.InfoLevel, zapLevel(slog.LevelInfo))
	assert.Equal(t, zapcore.WarnLevel, zapLevel(slog.LevelWarn))
	assert.Equal(t, zapcore.ErrorLevel, zapLevel(slog.LevelError))
}
