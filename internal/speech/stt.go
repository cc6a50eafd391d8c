// Package speech wraps the Google Cloud Speech and Text-to-Speech clients
// used by the voice-ask and verse-recitation endpoints.
package speech

import (
	"context"
	"errors"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"
)

// ErrNoCredentials is returned when GOOGLE_APPLICATION_CREDENTIALS is unset.
var ErrNoCredentials = errors.New("speech: GOOGLE_APPLICATION_CREDENTIALS is not set")

type Transcriber struct {
	client *speech.Client
}

func NewTranscriber(ctx context.Context, credentialsFile string) (*Transcriber, error) {
	if credentialsFile == "" {
		return nil, ErrNoCredentials
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, err
	}
	return &Transcriber{client: client}, nil
}

// Transcribe runs a synchronous recognition over one uploaded clip
// (LINEAR16, 16 kHz, mono) and joins the top alternative of each result.
func (t *Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			AudioChannelCount: 1,
			LanguageCode:      "en-IN",
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: audio},
		},
	})
	if err != nil {
		return "", err
	}

	var parts []string
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 {
			parts = append(parts, result.Alternatives[0].Transcript)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func (t *Transcriber) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
