package speech

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/moviemood/internal/config"
)

// audioAPI is the part of the OpenAI client used here.
type audioAPI interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// WhisperRecognizer transcribes recorded clips with the OpenAI audio API.
type WhisperRecognizer struct {
	api   audioAPI
	model string
	clips *ClipSource
}

// Listen waits for the next clip and transcribes it.
func (w *WhisperRecognizer) Listen(ctx context.Context, lang string) (string, error) {
	clip, err := w.clips.Next(ctx)
	if err != nil {
		return "", err
	}
	resp, err := w.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: clip.Name,
		Reader:   clip.Reader(),
		Language: baseLanguage(lang),
	})
	if err != nil {
		return "", fmt.Errorf("transcribing %s: %w", clip.Name, err)
	}
	return resp.Text, nil
}

// FileSynthesizer writes spoken text as mp3 files for a player to pick up.
type FileSynthesizer struct {
	api   audioAPI
	model string
	voice string
	fs    afero.Fs
	dir   string

	mu   sync.Mutex
	last string
}

// Speak synthesizes text into a new file in the output directory.
func (s *FileSynthesizer) Speak(ctx context.Context, text, _ string) error {
	resp, err := s.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("synthesizing speech: %w", err)
	}
	defer resp.Close()

	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating speech directory: %w", err)
	}
	path := filepath.Join(s.dir, uuid.New().String()+".mp3")
	f, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, resp); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	s.mu.Lock()
	s.last = path
	s.mu.Unlock()
	return nil
}

// LastFile is the most recently written audio file.
func (s *FileSynthesizer) LastFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// NewOpenAIProvider builds the OpenAI-backed provider. Speech is Unavailable
// when disabled in configuration or when no API key is set.
func NewOpenAIProvider(cfg config.Speech, apiKey string, fs afero.Fs) Provider {
	if !cfg.Enabled || apiKey == "" {
		return Unavailable()
	}
	return newOpenAIProvider(openai.NewClient(apiKey), cfg, fs)
}

func newOpenAIProvider(api audioAPI, cfg config.Speech, fs afero.Fs) Provider {
	rec := &WhisperRecognizer{api: api, model: cfg.STTModel, clips: NewClipSource(fs, cfg.ClipDir)}
	syn := &FileSynthesizer{api: api, model: cfg.TTSModel, voice: cfg.Voice, fs: fs, dir: cfg.OutDir}
	return Available(rec, syn)
}

// baseLanguage reduces a BCP 47 tag such as en-US to the ISO 639-1 code the
// transcription API expects.
func baseLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, conf := t.Base()
	if conf == language.No {
		return ""
	}
	return base.String()
}
