package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pacer/stubgen/internal/stub/testutil"
)

func TestWatchFile_FiresAfterWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger = zap.NewNop()

	dir := testutil.TempDir(t, map[string]string{
		"stub.txt": "read n:int\n",
	})
	file := filepath.Join(dir, "stub.txt")

	changed := make(chan struct{}, 8)
	closer, err := watchFile(file, 50*time.Millisecond, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer closer()

	require.NoError(t, os.WriteFile(file, []byte("read m:int\n"), 0o600))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("watcher never fired after a write")
	}
}

func TestWatchFile_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger = zap.NewNop()

	dir := testutil.TempDir(t, map[string]string{
		"stub.txt":  "read n:int\n",
		"other.txt": "read m:int\n",
	})
	file := filepath.Join(dir, "stub.txt")

	changed := make(chan struct{}, 8)
	closer, err := watchFile(file, 20*time.Millisecond, func() {
		changed <- struct{}{}
	})
	require.NoError(t, err)
	defer closer()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("write x\n"), 0o600))

	select {
	case <-changed:
		t.Fatal("watcher fired for an unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatchFile_CloserStopsCleanly(t *testing.T) {
	defer goleak.VerifyNone(t)

	logger = zap.NewNop()

	dir := testutil.TempDir(t, map[string]string{
		"stub.txt": "read n:int\n",
	})

	closer, err := watchFile(filepath.Join(dir, "stub.txt"), 50*time.Millisecond, func() {})
	require.NoError(t, err)

	closer()
}
