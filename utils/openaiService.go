package utils

import (
	"fmt"
	"io"
	"time"

	"pronocoach/config"

	"github.com/go-resty/resty/v2"
)

const (
	ChatModel       = "gpt-4o-mini"
	SpeechModel     = "gpt-4o-mini-tts"
	TranscribeModel = "gpt-4o-mini-transcribe"
	SpeechVoice     = "alloy"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type transcribeResponse struct {
	Text  string `json:"text"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func openaiClient() *resty.Client {
	return resty.New().
		SetBaseURL(config.AppConfig.OpenAIBaseURL).
		SetAuthToken(config.AppConfig.OpenAIKey).
		SetTimeout(60 * time.Second)
}

// ChatCompletion sends one system+user exchange and returns the reply text.
func ChatCompletion(systemPrompt, userText string) (string, error) {
	var result chatResponse
	resp, err := openaiClient().R().
		SetBody(chatRequest{
			Model: ChatModel,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userText},
			},
		}).
		SetResult(&result).
		SetError(&result).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %v", err)
	}
	if resp.IsError() {
		if result.Error != nil {
			return "", fmt.Errorf("chat completion failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("chat completion failed: %s", resp.Status())
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}

// Speech renders text to MP3 audio bytes.
func Speech(text string) ([]byte, error) {
	resp, err := openaiClient().R().
		SetBody(map[string]string{
			"model": SpeechModel,
			"voice": SpeechVoice,
			"input": text,
		}).
		SetDoNotParseResponse(true).
		Post("/audio/speech")
	if err != nil {
		return nil, fmt.Errorf("speech request failed: %v", err)
	}
	defer resp.RawBody().Close()

	body, err := io.ReadAll(resp.RawBody())
	if err != nil {
		return nil, fmt.Errorf("failed to read speech response: %v", err)
	}
	if resp.StatusCode() >= 400 {
		return nil, fmt.Errorf("speech failed: %s", string(body))
	}
	return body, nil
}

// Transcribe converts an uploaded audio stream to text.
func Transcribe(filename string, file io.Reader) (string, error) {
	var result transcribeResponse
	resp, err := openaiClient().R().
		SetFileReader("file", filename, file).
		SetFormData(map[string]string{"model": TranscribeModel}).
		SetResult(&result).
		SetError(&result).
		Post("/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %v", err)
	}
	if resp.IsError() {
		if result.Error != nil {
			return "", fmt.Errorf("transcription failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("transcription failed: %s", resp.Status())
	}
	return result.Text, nil
}
