package service

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"

	"kenangan-bot/internal/domain"
)

type FrameService interface {
	// StubImage derives the still image used for keyword extraction:
	// photos are read as-is, for videos the first decodable frame is
	// re-encoded as JPEG. Returns nil on any failure; keyword extraction
	// is then skipped, not aborted.
	StubImage(ctx context.Context, mediaType domain.MediaType, localPath string) []byte
}

type frameService struct {
	settleDelay time.Duration
}

func NewFrameService(settleDelay time.Duration) FrameService {
	return &frameService{settleDelay: settleDelay}
}

func (s *frameService) StubImage(ctx context.Context, mediaType domain.MediaType, localPath string) []byte {
	switch mediaType {
	case domain.MediaPhoto:
		data, err := os.ReadFile(localPath)
		if err != nil {
			log.Warn().Err(err).Str("path", localPath).Msg("reading photo for keyword extraction")
			return nil
		}
		return data
	case domain.MediaVideo:
		return s.extractFirstFrame(ctx, localPath)
	}
	return nil
}

func (s *frameService) extractFirstFrame(ctx context.Context, videoPath string) []byte {
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		log.Warn().Msg("ffmpeg not found, skipping video frame extraction")
		return nil
	}

	tmpFile, err := os.CreateTemp("", "frame-*.jpg")
	if err != nil {
		log.Warn().Err(err).Msg("creating frame temp file")
		return nil
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	// ffmpeg -i input -frames:v 1 -y output.jpg
	// One frame, no seeking: the first decodable frame is good enough as
	// keyword-extraction input.
	cmd := exec.CommandContext(ctx, ffmpegPath,
		"-i", videoPath,
		"-frames:v", "1",
		"-f", "image2",
		"-y", tmpPath,
	)

	output, err := cmd.CombinedOutput()

	// The decoder has exited here, but give the OS a moment to release the
	// source file before the caller deletes it.
	if s.settleDelay > 0 {
		time.Sleep(s.settleDelay)
	}

	if err != nil {
		log.Warn().Err(err).Str("path", videoPath).Str("ffmpeg_output", string(output)).
			Msg("video frame extraction failed")
		return nil
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil || len(data) == 0 {
		log.Warn().Err(err).Str("path", videoPath).Msg("reading extracted frame")
		return nil
	}

	log.Debug().Str("path", videoPath).Int("frame_bytes", len(data)).Msg("video frame extracted")
	return data
}
