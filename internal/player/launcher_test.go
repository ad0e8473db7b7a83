package player

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/vidda/internal/config"
)

type call struct {
	wait bool
	name string
	args []string
}

// fakeLauncher records commands instead of running them. Only names in
// installed are found on PATH.
func fakeLauncher(goos string, cfg config.PlayerConfig, installed ...string) (*Launcher, *[]call) {
	var calls []call
	l := NewLauncher(cfg, "https://www.youtube.com/embed/", nil)
	l.goos = goos
	l.lookPath = func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", exec.ErrNotFound
	}
	l.run = func(wait bool, name string, args ...string) error {
		calls = append(calls, call{wait, name, args})
		if name == "open" && wait {
			return errors.New("app not found")
		}
		return nil
	}
	return l, &calls
}

func TestTrailerURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc", TrailerURL("https://www.youtube.com/embed/", "abc"))
	assert.Equal(t, "https://www.youtube.com/embed/abc", TrailerURL("https://www.youtube.com/embed", "abc"))
}

func TestPlayTrailer_ConfiguredPlayer(t *testing.T) {
	l, calls := fakeLauncher("linux", config.PlayerConfig{Command: "mpv", Args: []string{"--fs"}}, "mpv")

	require.NoError(t, l.PlayTrailer("abc"))
	require.Len(t, *calls, 1)
	assert.Equal(t, call{false, "mpv", []string{"--fs", "https://www.youtube.com/embed/abc"}}, (*calls)[0])
}

func TestPlayTrailer_DetectsCandidate(t *testing.T) {
	l, calls := fakeLauncher("linux", config.PlayerConfig{}, "vlc")

	require.NoError(t, l.PlayTrailer("abc"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "vlc", (*calls)[0].name)
}

func TestPlayTrailer_FallsBackToSystemOpener(t *testing.T) {
	l, calls := fakeLauncher("linux", config.PlayerConfig{})

	require.NoError(t, l.PlayTrailer("abc"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "xdg-open", (*calls)[0].name)
}

func TestPlayTrailer_DarwinOpenApp(t *testing.T) {
	l, calls := fakeLauncher("darwin", config.PlayerConfig{Command: "IINA"})

	require.NoError(t, l.PlayTrailer("abc"))
	require.Len(t, *calls, 1)
	c := (*calls)[0]
	assert.Equal(t, "open", c.name)
	assert.Equal(t, "-n -a IINA https://www.youtube.com/embed/abc", strings.Join(c.args, " "))
}

func TestPlayTrailer_EmptyID(t *testing.T) {
	l, calls := fakeLauncher("linux", config.PlayerConfig{})
	assert.Error(t, l.PlayTrailer(" "))
	assert.Empty(t, *calls)
}
