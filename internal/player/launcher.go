// Package player opens trailers in an external video player.
package player

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmcdole/vidda/internal/config"
)

// ErrNoPlayer is returned when neither a player nor a system opener could be started.
var ErrNoPlayer = errors.New("no player available")

// launchPath defines a single way to launch a player
type launchPath struct {
	path      string   // command name, or "open-a:AppName" for macOS apps
	openFlags []string // flags for macOS open, "open-a:" paths only
}

// players maps player name to the launch paths to try per platform
var players = map[string]map[string][]launchPath{
	"mpv": {
		"darwin":  {{path: "mpv"}},
		"linux":   {{path: "mpv"}},
		"windows": {{path: "mpv"}},
	},
	"vlc": {
		"darwin":  {{path: "vlc"}, {path: "open-a:VLC"}},
		"linux":   {{path: "vlc"}},
		"windows": {{path: "vlc"}},
	},
	"iina": {
		"darwin": {{path: "open-a:IINA", openFlags: []string{"-n"}}},
	},
	"celluloid": {
		"linux": {{path: "celluloid"}},
	},
}

// candidatePlayers defines the preferred player order for each platform
var candidatePlayers = map[string][]string{
	"darwin":  {"iina", "mpv", "vlc"},
	"linux":   {"mpv", "celluloid", "vlc"},
	"windows": {"mpv", "vlc"},
}

// Launcher plays YouTube trailers
type Launcher struct {
	command string   // configured player, empty to auto-detect
	args    []string // extra player arguments
	baseURL string   // video page prefix, e.g. https://www.youtube.com/embed
	goos    string
	logger  *slog.Logger

	lookPath func(file string) (string, error)
	run      func(wait bool, name string, args ...string) error
}

// NewLauncher creates a Launcher for trailers under baseURL.
func NewLauncher(cfg config.PlayerConfig, baseURL string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  cfg.Command,
		args:     cfg.Args,
		baseURL:  baseURL,
		goos:     runtime.GOOS,
		logger:   logger,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

func runCommand(wait bool, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if wait {
		return cmd.Run()
	}
	return cmd.Start()
}

// TrailerURL joins base and videoID with exactly one slash.
func TrailerURL(base, videoID string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(videoID, "/")
}

// PlayTrailer opens the trailer with videoID.
func (l *Launcher) PlayTrailer(videoID string) error {
	if strings.TrimSpace(videoID) == "" {
		return fmt.Errorf("play trailer: empty video id")
	}
	return l.Launch(TrailerURL(l.baseURL, videoID))
}

// Launch opens url in the configured player, the first detected candidate,
// or the system default handler, in that order.
func (l *Launcher) Launch(url string) error {
	if l.command != "" {
		l.logger.Info("using configured player", "command", l.command)
		return l.launchConfigured(url)
	}

	if name, err := l.detectAndLaunch(url); err == nil {
		l.logger.Info("launched with detected player", "player", name)
		return nil
	}

	l.logger.Info("no candidate players found, using system default")
	return l.launchDefault(url)
}

func (l *Launcher) launchConfigured(url string) error {
	args := append(append([]string{}, l.args...), url)

	if l.goos == "darwin" {
		if _, err := l.lookPath(l.command); err != nil {
			base := strings.TrimSuffix(filepath.Base(l.command), filepath.Ext(l.command))
			var openFlags []string
			for _, lp := range players[strings.ToLower(base)]["darwin"] {
				if strings.HasPrefix(lp.path, "open-a:") {
					openFlags = lp.openFlags
					break
				}
			}
			l.logger.Info("using macOS 'open -a' to launch GUI app", "app", l.command)
			return l.run(false, "open", openAppArgs(l.command, url, l.args, openFlags)...)
		}
	}

	l.logger.Info("launching player", "command", l.command, "args", args)
	return l.run(false, l.command, args...)
}

// detectAndLaunch tries candidate players in order and returns the one that started.
func (l *Launcher) detectAndLaunch(url string) (string, error) {
	candidates, ok := candidatePlayers[l.goos]
	if !ok {
		candidates = candidatePlayers["linux"]
	}

	for _, name := range candidates {
		for _, lp := range players[name][l.goos] {
			var err error
			if app, ok := strings.CutPrefix(lp.path, "open-a:"); ok {
				// open -a fails synchronously when the app is missing
				err = l.run(true, "open", openAppArgs(app, url, nil, lp.openFlags)...)
			} else if _, err = l.lookPath(lp.path); err == nil {
				err = l.run(false, lp.path, url)
			}
			if err == nil {
				return name, nil
			}
			l.logger.Debug("launch path not available", "player", name, "path", lp.path, "error", err)
		}
	}
	return "", ErrNoPlayer
}

func openAppArgs(app, url string, playerArgs, openFlags []string) []string {
	args := append([]string{}, openFlags...)
	args = append(args, "-a", app)
	if len(playerArgs) > 0 {
		args = append(args, "--args")
		args = append(args, playerArgs...)
	}
	return append(args, url)
}

// launchDefault opens the URL using the system default handler
func (l *Launcher) launchDefault(url string) error {
	var err error
	switch l.goos {
	case "darwin":
		err = l.run(false, "open", url)
	case "windows":
		err = l.run(false, "cmd", "/c", "start", "", url)
	default:
		err = l.run(false, "xdg-open", url)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoPlayer, err)
	}
	l.logger.Info("launching with system default", "os", l.goos, "url", url)
	return nil
}
