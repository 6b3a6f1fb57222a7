package adapters

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/larrywang1/ai-newscast/application/ports/outbound"
)

type ffmpegEpisodeEncoder struct {
	logger outbound.LoggerPort
}

func NewFFMPEGEpisodeEncoder(logger outbound.LoggerPort) outbound.EpisodeEncoderPort {
	return &ffmpegEpisodeEncoder{
		logger: logger,
	}
}

// Encode compresses the assembled WAV timeline into the final episode file.
// The intermediate WAV is removed regardless of outcome.
func (f *ffmpegEpisodeEncoder) Encode(wavFileName string, outputFileName string) error {
	defer func() {
		if err := os.Remove(wavFileName); err != nil {
			f.logger.Error(err, "error removing intermediate waveform file")
		}
	}()

	cmd := exec.Command("ffmpeg", "-y", "-i", wavFileName, "-codec:a", "libmp3lame", "-b:a", "192k", outputFileName)
	output, err := cmd.CombinedOutput()
	if err != nil {
		f.logger.ErrorWithFields(err, "error encoding episode audio", map[string]interface{}{
			"output": string(output),
		})
		return fmt.Errorf("ffmpeg encode failed: %w", err)
	}

	return nil
}
