package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	reply := "Here is the result:\n```json\n{\"score\": 90}\n```\nLet me know if you need more."
	raw, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 90}`, raw)
}

func TestExtractJSONBareObject(t *testing.T) {
	raw, err := ExtractJSON(`{"score": 42, "feedback": "ok"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 42, "feedback": "ok"}`, raw)
}

func TestExtractJSONObjectInProse(t *testing.T) {
	reply := `Sure! The evaluation is {"score": 77} and that is my final answer.`
	raw, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score": 77}`, raw)
}

func TestExtractJSONNestedObjectInProse(t *testing.T) {
	reply := `Result: {"outer": {"inner": 1}} done.`
	raw, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.JSONEq(t, `{"outer": {"inner": 1}}`, raw)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("The model refused to answer in JSON today.")
	assert.Error(t, err)
}

func TestExtractJSONEmptyReply(t *testing.T) {
	_, err := ExtractJSON("   \n  ")
	assert.Error(t, err)
}

func TestExtractJSONFenceWithoutLanguageTag(t *testing.T) {
	reply := "```\n{\"ok\": true}\n```"
	raw, err := ExtractJSON(reply)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, raw)
}
