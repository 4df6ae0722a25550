package speech

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

var clipExtensions = map[string]bool{
	".wav": true, ".mp3": true, ".m4a": true, ".webm": true, ".ogg": true, ".flac": true,
}

// Clip is one recorded utterance.
type Clip struct {
	Name string
	Data []byte
}

// ClipSource hands out audio clips dropped into a directory by a recorder,
// oldest name first. Each clip is removed once taken.
type ClipSource struct {
	fs           afero.Fs
	dir          string
	PollInterval time.Duration
}

// NewClipSource watches dir on fs.
func NewClipSource(fs afero.Fs, dir string) *ClipSource {
	return &ClipSource{fs: fs, dir: dir, PollInterval: 250 * time.Millisecond}
}

// Next blocks until a clip is available or ctx is done.
func (s *ClipSource) Next(ctx context.Context) (Clip, error) {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return Clip{}, fmt.Errorf("creating clip directory: %w", err)
	}
	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()
	for {
		clip, ok, err := s.take()
		if err != nil {
			return Clip{}, err
		}
		if ok {
			return clip, nil
		}
		select {
		case <-ctx.Done():
			return Clip{}, ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *ClipSource) take() (Clip, bool, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return Clip{}, false, fmt.Errorf("reading clip directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !clipExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return Clip{}, false, nil
	}
	sort.Strings(names)

	path := filepath.Join(s.dir, names[0])
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Clip{}, false, fmt.Errorf("reading clip %s: %w", names[0], err)
	}
	if err := s.fs.Remove(path); err != nil {
		return Clip{}, false, fmt.Errorf("removing clip %s: %w", names[0], err)
	}
	return Clip{Name: names[0], Data: data}, true, nil
}

// Reader returns the clip contents.
func (c Clip) Reader() *bytes.Reader {
	return bytes.NewReader(c.Data)
}
