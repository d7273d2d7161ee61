package speech

import (
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"
)

// Service proxies speech-to-text and text-to-speech to OpenAI. It is a
// thin collaborator: one call in, one result out.
type Service struct {
	apiKey string
	client *openai.Client
}

func NewService(apiKey string) *Service {
	return &Service{apiKey: apiKey, client: openai.NewClient(apiKey)}
}

func (s *Service) Configured() bool { return s.apiKey != "" }

// Transcribe runs Whisper over the uploaded audio stream.
func (s *Service) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: filename,
		Reader:   audio,
	})
	if err != nil {
		return "", fmt.Errorf("transcription failed: %w", err)
	}
	return resp.Text, nil
}

// Synthesize renders the text as mp3 audio.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.VoiceAlloy,
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio: %w", err)
	}
	return audio, nil
}
