package probe

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRunner(out []byte, err error) runner {
	return func(_ context.Context, _ string, _ ...string) ([]byte, error) {
		return out, err
	}
}

func TestFFProbeDuration(t *testing.T) {
	p := &FFProbe{run: fakeRunner([]byte(`{"format":{"duration":"123.456"}}`), nil)}

	dur, err := p.Duration(context.Background(), "clip.mp3")
	require.NoError(t, err)
	assert.Equal(t, 123.456, dur)
}

func TestFFProbeCommandError(t *testing.T) {
	p := &FFProbe{run: fakeRunner(nil, errors.New("exit status 1"))}

	_, err := p.Duration(context.Background(), "clip.mp3")
	assert.ErrorContains(t, err, "ffprobe failed")
}

func TestFFProbeBadJSON(t *testing.T) {
	p := &FFProbe{run: fakeRunner([]byte("not json"), nil)}

	_, err := p.Duration(context.Background(), "clip.mp3")
	assert.Error(t, err)
}

func TestFFProbeMissingDuration(t *testing.T) {
	p := &FFProbe{run: fakeRunner([]byte(`{"format":{}}`), nil)}

	_, err := p.Duration(context.Background(), "clip.mp3")
	assert.ErrorContains(t, err, "no duration")
}

func TestFixedProber(t *testing.T) {
	dur, err := Fixed(2.5).Duration(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, 2.5, dur)
}
