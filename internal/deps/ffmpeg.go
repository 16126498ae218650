package deps

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// CheckFFmpegForCompressor reports the FFmpeg binary the compression tool
// will execute: an ffmpeg sitting next to the compressor executable wins,
// otherwise "ffmpeg" is resolved from PATH. FFmpeg is reported as optional
// because vcshell itself never runs it.
func CheckFFmpegForCompressor(compressorCommand string) Status {
	result := Status{
		Name:        "FFmpeg",
		Description: "Used by the compression tool for encoding",
		Optional:    true,
	}

	compressor := strings.TrimSpace(compressorCommand)
	if compressor != "" {
		if resolved, err := exec.LookPath(compressor); err == nil {
			candidate := sidecarCandidate(resolved)
			if info, statErr := os.Stat(candidate); statErr == nil && isExecutable(info) {
				result.Command = candidate
				result.Available = true
				return result
			}
		}
	}

	if ffmpegPath, err := exec.LookPath("ffmpeg"); err == nil {
		result.Command = ffmpegPath
		result.Available = true
		return result
	}

	result.Command = "ffmpeg"
	result.Detail = `binary "ffmpeg" not found`
	return result
}

func sidecarCandidate(compressorPath string) string {
	name := "ffmpeg"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(filepath.Dir(compressorPath), name)
}

func isExecutable(info os.FileInfo) bool {
	if info == nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// Describe renders a one-line summary for status output.
func (s Status) Describe() string {
	if s.Available {
		return fmt.Sprintf("%s (%s)", s.Name, s.Command)
	}
	if s.Optional {
		return fmt.Sprintf("%s: %s (optional)", s.Name, s.Detail)
	}
	return fmt.Sprintf("%s: %s", s.Name, s.Detail)
}
