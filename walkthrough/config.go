package walkthrough

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls a walkthrough run.
type Config struct {
	// ContainerName is the container the run creates, fills, and deletes.
	ContainerName string `env:"BLOBWALK_CONTAINER" envDefault:"blobwalk-demo"`

	// WorkDir is where sample files are created and downloads are written.  Empty means the
	// current directory.
	WorkDir string `env:"BLOBWALK_WORKDIR"`

	// DownloadPrefix is prepended to each blob name when writing the downloaded copy.
	DownloadPrefix string `env:"BLOBWALK_DOWNLOAD_PREFIX" envDefault:"downloaded_"`

	// KeepContainer skips the container deletion stage, leaving the uploaded blobs in place.
	KeepContainer bool `env:"BLOBWALK_KEEP_CONTAINER"`

	// TextOnly skips Word document generation and uses the plain text fallback sample.
	TextOnly bool `env:"BLOBWALK_TEXT_ONLY"`
}

// ConfigFromEnv returns a Config populated from the environment.
func ConfigFromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
