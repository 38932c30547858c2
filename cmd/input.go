package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"wordsync/internal/collector"
	"wordsync/internal/probe"
	"wordsync/internal/timing"
	"wordsync/pkg/model"
)

// Input flags shared by the align and play commands.
var (
	text             string
	textFile         string
	strategy         string
	durationOverride float64
)

// audioExts are the audio media types accepted as input.
var audioExts = map[string]bool{
	".mp3": true, ".m4a": true, ".wav": true, ".flac": true,
	".ogg": true, ".oga": true, ".aac": true, ".opus": true,
	".wma": true, ".webm": true,
}

// resolveText returns the input text from --text or --text-file.
func resolveText() (string, error) {
	if textFile != "" {
		data, err := os.ReadFile(textFile)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	}
	if strings.TrimSpace(text) != "" {
		return text, nil
	}
	return "", errors.New("--text or --text-file is required")
}

// collectSequence validates the audio path, resolves its duration and
// runs one estimation pass.
func collectSequence(ctx context.Context, audioPath string, cfgStrategy string) (*model.TimingSequence, error) {
	absPath, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", audioPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	if !audioExts[ext] {
		return nil, fmt.Errorf("unsupported audio type: %s", ext)
	}

	input, err := resolveText()
	if err != nil {
		return nil, err
	}

	chosen := strategy
	if chosen == "" {
		chosen = cfgStrategy
	}

	var prober probe.Prober
	if durationOverride > 0 {
		prober = probe.Fixed(durationOverride)
	} else {
		if !probe.Available() {
			return nil, errors.New("ffprobe not found; install ffmpeg or pass --duration")
		}
		prober = probe.NewFFProbe()
	}

	c := collector.New(prober, timing.Options{Strategy: model.Strategy(chosen)})
	return c.Collect(ctx, absPath, input)
}
