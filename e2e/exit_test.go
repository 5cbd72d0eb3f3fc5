//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	err = tf.StartApp("-config", tf.ConfigPath())
	require.NoError(t, err, "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("konamikey"), "Should show konamikey title")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	// Send 'q' to quit
	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	// Wait for graceful shutdown
	select {
	case exitErr := <-done:
		t.Logf("Process exited with 'q' command (err: %v)", exitErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Process did not exit after 'q' command")
	}
}

func TestCtrlCExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-config", tf.ConfigPath()))
	require.True(t, tf.Ready(), "Should receive ready signal")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.SendCtrlC())

	select {
	case exitErr := <-done:
		t.Logf("Process exited with Ctrl+C (err: %v)", exitErr)
	case <-time.After(5 * time.Second):
		t.Fatal("Process did not exit after Ctrl+C")
	}
}
