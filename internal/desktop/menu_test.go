package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrayMenu_Layout(t *testing.T) {
	assert.Equal(t, "ErsatzTV", TrayTitle)

	want := []string{"Launch Web UI", "Show Logs", "", "Exit"}
	require.Len(t, trayMenu, len(want))
	for i, entry := range trayMenu {
		assert.Equal(t, want[i], entry.Title, "entry %d", i)
		assert.Equal(t, want[i] == "", entry.separator(), "entry %d", i)
	}
}

func TestTrayMenu_Actions(t *testing.T) {
	exitCh := make(chan Message, 1)
	logs := t.TempDir()
	a, rec := newTestActions(exitCh, logs, nil)

	for _, entry := range trayMenu {
		if !entry.separator() {
			entry.action(a)
		}
	}

	assert.Equal(t, []string{"http://localhost:8409"}, rec.urls)
	assert.Equal(t, []string{logs}, rec.folders)
	require.Len(t, exitCh, 1)
	assert.Equal(t, Exit, <-exitCh)
}
