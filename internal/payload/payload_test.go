package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pullRequestBody = `{
	"action": "opened",
	"pull_request": {
		"merged": false,
		"user": {"login": "octocat"},
		"head": {"ref": "feature"},
		"base": {"ref": null},
		"merged_by": null,
		"number": 7
	}
}`

func TestParseRejectsInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"action":`))
	require.ErrorIs(t, err, ErrInvalidJSON)
}

func TestParseTreatsEmptyBodyAsObject(t *testing.T) {
	p, err := Parse([]byte("  "))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", p.String("pusher.name", "Unknown"))
}

func TestStringLookups(t *testing.T) {
	p, err := Parse([]byte(pullRequestBody))
	require.NoError(t, err)

	assert.Equal(t, "opened", p.String("action", "Unknown"))
	assert.Equal(t, "octocat", p.String("pull_request.user.login", "Unknown"))
	assert.Equal(t, "feature", p.String("pull_request.head.ref", "Unknown"))

	// null, missing parents, and non-string values all fall back.
	assert.Equal(t, "Unknown", p.String("pull_request.base.ref", "Unknown"))
	assert.Equal(t, "Unknown", p.String("pull_request.merged_by.login", "Unknown"))
	assert.Equal(t, "Unknown", p.String("pull_request.number", "Unknown"))
	assert.Equal(t, "Unknown", p.String("head_commit.timestamp", "Unknown"))
}

func TestOptionalString(t *testing.T) {
	p, err := Parse([]byte(`{"head_commit":{"timestamp":""},"ref":"refs/heads/main"}`))
	require.NoError(t, err)

	_, ok := p.OptionalString("head_commit.timestamp")
	assert.False(t, ok)

	ref, ok := p.OptionalString("ref")
	assert.True(t, ok)
	assert.Equal(t, "refs/heads/main", ref)
}

func TestBool(t *testing.T) {
	p, err := Parse([]byte(`{"a":true,"b":false,"c":"true","d":1}`))
	require.NoError(t, err)

	assert.True(t, p.Bool("a"))
	assert.False(t, p.Bool("b"))
	assert.False(t, p.Bool("c"))
	assert.False(t, p.Bool("d"))
	assert.False(t, p.Bool("missing.nested"))
}

func TestLookupsOnNonObjectRoot(t *testing.T) {
	p, err := Parse([]byte(`[1,2,3]`))
	require.NoError(t, err)

	assert.Equal(t, "Unknown", p.String("pusher.name", "Unknown"))
	assert.False(t, p.Bool("pull_request.merged"))
}
