package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Settings represents the application configuration persisted to disk.
type Settings struct {
	Server   ServerSettings   `json:"server"`
	Upstream UpstreamSettings `json:"upstream"`
	Embed    EmbedSettings    `json:"embed"`
	Storage  StorageSettings  `json:"storage"`
	Log      LogSettings      `json:"log"`
}

type ServerSettings struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// UpstreamSettings configures the media-metadata API the catalog is built
// from. APIKey may be empty when BaseURL points at a keyless proxy.
type UpstreamSettings struct {
	BaseURL  string `json:"baseUrl"`
	APIKey   string `json:"apiKey"`
	Language string `json:"language"`
}

// EmbedSettings holds the priority-ordered provider URL templates probed
// by the watch page. Templates interpolate {id}, and for TV additionally
// {season} and {episode}.
type EmbedSettings struct {
	MovieTemplates      []string `json:"movieTemplates"`
	TVTemplates         []string `json:"tvTemplates"`
	ProbeTimeoutSeconds int      `json:"probeTimeoutSeconds"`
}

type StorageSettings struct {
	Directory string `json:"directory"`
}

type LogSettings struct {
	File       string `json:"file"`
	MaxSize    int    `json:"maxSize"`
	MaxAge     int    `json:"maxAge"`
	MaxBackups int    `json:"maxBackups"`
	Compress   bool   `json:"compress"`
}

// DefaultSettings returns the configuration written on first run. The
// provider lists carry the known-good embed sources in probe order; edits
// to the file reorder or replace providers without a rebuild.
func DefaultSettings() Settings {
	return Settings{
		Server: ServerSettings{
			Host: "0.0.0.0",
			Port: 8484,
		},
		Upstream: UpstreamSettings{
			BaseURL:  "https://api.themoviedb.org/3",
			Language: "en-US",
		},
		Embed: EmbedSettings{
			MovieTemplates: []string{
				"https://embed.su/embed/movie/{id}",
				"https://player.autoembed.cc/embed/movie/{id}",
				"https://player.smashy.stream/movie/{id}",
				"https://vidsrc.xyz/embed/movie/{id}",
				"https://www.2embed.cc/embed/{id}",
				"https://www.nontongo.win/embed/movie/{id}",
				"https://vidlink.pro/movie/{id}",
				"https://vidbinge.dev/embed/movie/{id}",
				"https://moviesapi.club/movie/{id}",
				"https://multiembed.mov/?video_id={id}&tmdb=1",
				"https://vidsrc.icu/embed/movie/{id}",
			},
			TVTemplates: []string{
				"https://embed.su/embed/tv/{id}/{season}/{episode}",
				"https://vidsrc.su/tv/{id}/{season}/{episode}",
				"https://vidbinge.dev/embed/tv/{id}/{season}/{episode}",
				"https://flicky.host/embed/tv/{id}/{season}/{episode}",
				"https://vidlink.pro/tv/{id}/{season}/{episode}",
				"https://multiembed.mov/?video_id={id}&tmdb=1&s={season}&e={episode}",
			},
			ProbeTimeoutSeconds: 10,
		},
		Storage: StorageSettings{
			Directory: "cache",
		},
		Log: LogSettings{
			File:       "",
			MaxSize:    10,
			MaxAge:     14,
			MaxBackups: 3,
			Compress:   true,
		},
	}
}

// Manager loads and persists the settings file.
type Manager struct {
	path string
}

func NewManager(configPath string) *Manager {
	return &Manager{path: configPath}
}

// EnsureDir ensures the parent directory exists.
func (m *Manager) EnsureDir() error {
	dir := filepath.Dir(m.path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

// Load reads the settings file from disk or creates defaults if missing.
// Fields absent from an existing file are filled from the defaults so new
// options pick up sane values on upgrade.
func (m *Manager) Load() (Settings, error) {
	if m.path == "" {
		return Settings{}, errors.New("config path not set")
	}
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		defaults := DefaultSettings()
		if err := m.Save(defaults); err != nil {
			return Settings{}, err
		}
		return defaults, nil
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		return Settings{}, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}

	settings.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(settings.Upstream.BaseURL), "/")
	if settings.Upstream.BaseURL == "" {
		settings.Upstream.BaseURL = DefaultSettings().Upstream.BaseURL
	}
	if settings.Upstream.Language == "" {
		settings.Upstream.Language = DefaultSettings().Upstream.Language
	}
	if settings.Embed.ProbeTimeoutSeconds <= 0 {
		settings.Embed.ProbeTimeoutSeconds = DefaultSettings().Embed.ProbeTimeoutSeconds
	}

	return settings, nil
}

// Save writes settings to disk.
func (m *Manager) Save(s Settings) error {
	if err := m.EnsureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	tmp := m.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, m.path)
}
