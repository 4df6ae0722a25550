package speech

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/moviemood/internal/config"
)

type fakeOpenAI struct {
	mu       sync.Mutex
	language string
	model    string
	filename string
	speech   string
}

func (f *fakeOpenAI) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/audio/transcriptions", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart: %v", err)
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("missing file: %v", err)
			return
		}
		f.mu.Lock()
		f.language = r.FormValue("language")
		f.model = r.FormValue("model")
		f.filename = header.Filename
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text": "okay buddy"}`))
	})
	mux.HandleFunc("/v1/audio/speech", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.speech = string(body)
		f.mu.Unlock()
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-fake-mp3"))
	})
	return mux
}

func newTestProvider(t *testing.T, fs afero.Fs) (*fakeOpenAI, config.Speech, Provider) {
	t.Helper()
	fake := &fakeOpenAI{}
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	oc := openai.DefaultConfig("test-key")
	oc.BaseURL = srv.URL + "/v1"
	cfg := config.DefaultConfig().Speech
	cfg.Enabled = true
	cfg.ClipDir = "clips"
	cfg.OutDir = "speech"
	return fake, cfg, newOpenAIProvider(openai.NewClientWithConfig(oc), cfg, fs)
}

func TestWhisperRecognizerTranscribesClip(t *testing.T) {
	fs := afero.NewMemMapFs()
	fake, _, p := newTestProvider(t, fs)
	require.NoError(t, afero.WriteFile(fs, "clips/0002.wav", []byte("RIFFsecond"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "clips/0001.wav", []byte("RIFFfirst"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "clips/notes.txt", []byte("ignored"), 0o644))

	rec, ok := p.Recognizer()
	require.True(t, ok)
	text, err := rec.Listen(context.Background(), "en-US")
	require.NoError(t, err)
	assert.Equal(t, "okay buddy", text)

	fake.mu.Lock()
	assert.Equal(t, "en", fake.language)
	assert.Equal(t, "whisper-1", fake.model)
	assert.Equal(t, "0001.wav", fake.filename)
	fake.mu.Unlock()

	exists, _ := afero.Exists(fs, "clips/0001.wav")
	assert.False(t, exists, "consumed clip should be removed")
	exists, _ = afero.Exists(fs, "clips/0002.wav")
	assert.True(t, exists)
}

func TestClipSourceWaitsForClip(t *testing.T) {
	fs := afero.NewMemMapFs()
	src := NewClipSource(fs, "clips")
	src.PollInterval = time.Millisecond

	go func() {
		time.Sleep(20 * time.Millisecond)
		afero.WriteFile(fs, "clips/late.webm", []byte("webm"), 0o644)
	}()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	clip, err := src.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, "late.webm", clip.Name)
}

func TestClipSourceCancelled(t *testing.T) {
	src := NewClipSource(afero.NewMemMapFs(), "clips")
	src.PollInterval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileSynthesizerWritesMp3(t *testing.T) {
	fs := afero.NewMemMapFs()
	fake, _, p := newTestProvider(t, fs)

	syn, ok := p.Synthesizer()
	require.True(t, ok)
	require.NoError(t, syn.Speak(context.Background(), "The review of Heat is positive.", "en-US"))

	last := syn.(*FileSynthesizer).LastFile()
	assert.True(t, strings.HasPrefix(last, "speech/"))
	assert.True(t, strings.HasSuffix(last, ".mp3"))
	data, err := afero.ReadFile(fs, last)
	require.NoError(t, err)
	assert.Equal(t, "ID3-fake-mp3", string(data))

	fake.mu.Lock()
	assert.Contains(t, fake.speech, `"input":"The review of Heat is positive."`)
	assert.Contains(t, fake.speech, `"voice":"alloy"`)
	fake.mu.Unlock()
}

func TestNewOpenAIProviderUnavailable(t *testing.T) {
	cfg := config.DefaultConfig().Speech
	p := NewOpenAIProvider(cfg, "key", afero.NewMemMapFs())
	_, ok := p.Recognizer()
	assert.False(t, ok, "disabled speech should be unavailable")

	cfg.Enabled = true
	p = NewOpenAIProvider(cfg, "", afero.NewMemMapFs())
	_, ok = p.Synthesizer()
	assert.False(t, ok, "missing key should be unavailable")
}

func TestBaseLanguage(t *testing.T) {
	assert.Equal(t, "en", baseLanguage("en-US"))
	assert.Equal(t, "pt", baseLanguage("pt-BR"))
	assert.Equal(t, "", baseLanguage("not a tag"))
}
