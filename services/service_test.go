package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// fakeGateway scripts the model reply for operation tests and records whether
// the upstream was reached.
type fakeGateway struct {
	reply    string
	err      error
	imageURL string
	calls    int

	lastSystemPrompt string
	lastUserPrompt   string
	lastTemperature  float64
}

func (f *fakeGateway) Complete(_ context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	f.calls++
	f.lastSystemPrompt = systemPrompt
	f.lastUserPrompt = userPrompt
	f.lastTemperature = temperature
	return f.reply, f.err
}

func (f *fakeGateway) GenerateImage(_ context.Context, prompt string) (string, string, error) {
	f.calls++
	f.lastUserPrompt = prompt
	return f.imageURL, f.reply, f.err
}

// useFakeGateway swaps the package gateway for the test's scripted one and
// restores it afterwards.
func useFakeGateway(t *testing.T, f *fakeGateway) {
	t.Helper()
	prev, prevLogger := gateway, logger
	gateway = f
	logger = zerolog.Nop()
	t.Cleanup(func() {
		gateway = prev
		logger = prevLogger
	})
}
