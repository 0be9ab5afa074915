// Package walkthrough drives the full Azure Blob Storage lifecycle end to end: sample file creation,
// container creation, upload, listing, download, container deletion, and local verification.  Each
// stage guards its own calls; a single file failing to upload or download does not abort the run,
// while a failed container creation does since nothing after it could succeed.
package walkthrough

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/storagetools/blobwalk/azure"
	"github.com/storagetools/blobwalk/samples"
	"github.com/storagetools/blobwalk/utils"
)

var (
	stageColor   = color.New(color.FgCyan, color.Bold)
	okColor      = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	missingColor = color.New(color.FgRed)
)

// Runner executes the walkthrough stages in order against an azure.Client.
type Runner struct {
	client azure.Client
	config Config
	out    io.Writer
	log    zerolog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithOutput directs the runner's user-facing progress output to w.  The default discards it.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger for diagnostic output.  The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// New returns a Runner for the given client and config.
func New(client azure.Client, config Config, opts ...Option) *Runner {
	r := &Runner{
		client: client,
		config: config,
		out:    io.Discard,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every stage and returns a Report of what happened.  The returned error is non-nil only
// for failures that make the rest of the run meaningless (sample creation, container creation).
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	if err := r.ensureSamples(report); err != nil {
		return report, err
	}
	if err := r.createContainer(ctx, report); err != nil {
		return report, err
	}
	r.uploadAll(ctx, report)
	r.listBlobs(ctx, report)
	r.downloadAll(ctx, report)
	r.deleteContainer(ctx, report)
	r.verify(report)

	return report, nil
}

func (r *Runner) ensureSamples(report *Report) error {
	r.stage("Creating sample files")

	generator := &samples.Generator{
		Dir:      r.config.WorkDir,
		TextOnly: r.config.TextOnly,
		Log:      r.log,
	}

	names, err := generator.Ensure()
	if err != nil {
		return err
	}
	report.Samples = names

	for _, name := range names {
		fmt.Fprintf(r.out, "   %s\n", name)
	}
	return nil
}

func (r *Runner) createContainer(ctx context.Context, report *Report) error {
	r.stage("Creating container %q", r.config.ContainerName)

	err := r.client.CreateContainer(ctx, r.config.ContainerName)
	if err != nil {
		if !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
			return utils.WrapCreateContainerError(err)
		}
		report.ContainerExisted = true
		warnColor.Fprintf(r.out, "   Container %q already exists, reusing it\n", r.config.ContainerName)
		r.log.Info().Str("container", r.config.ContainerName).Msg("container already exists")
		return nil
	}

	okColor.Fprintf(r.out, "   Container %q created\n", r.config.ContainerName)
	return nil
}

func (r *Runner) uploadAll(ctx context.Context, report *Report) {
	r.stage("Uploading %d files", len(report.Samples))

	for _, name := range report.Samples {
		localPath := filepath.Join(r.config.WorkDir, name)

		info, err := os.Stat(localPath)
		if err != nil {
			warnColor.Fprintf(r.out, "   Warning: file %q not found, skipping\n", name)
			r.log.Warn().Str("file", name).Msg("local file missing, skipping upload")
			continue
		}

		if err := r.uploadOne(ctx, name, localPath); err != nil {
			missingColor.Fprintf(r.out, "   Error uploading %s: %v\n", name, err)
			r.log.Error().Err(utils.WrapUploadError(err)).Str("file", name).Msg("upload failed")
			continue
		}

		// confirm the blob landed with the expected size
		props, err := r.client.Properties(ctx, r.config.ContainerName, name)
		if err != nil {
			r.log.Warn().Err(utils.WrapExistsError(err)).Str("blob", name).Msg("could not confirm upload")
		} else if props != nil && props.Size != nil && *props.Size != info.Size() {
			r.log.Warn().Str("blob", name).Int64("local", info.Size()).Int64("remote", *props.Size).Msg("uploaded size mismatch")
		}

		report.Uploaded = append(report.Uploaded, name)
		okColor.Fprintf(r.out, "   Uploaded: %s\n", name)
	}
}

func (r *Runner) uploadOne(ctx context.Context, name, localPath string) error {
	f, err := os.Open(localPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return r.client.Upload(ctx, r.config.ContainerName, name, f, samples.ContentType(name))
}

func (r *Runner) listBlobs(ctx context.Context, report *Report) {
	r.stage("Listing blobs in container %q", r.config.ContainerName)

	names, err := r.client.List(ctx, r.config.ContainerName)
	if err != nil {
		missingColor.Fprintf(r.out, "   Error listing blobs: %v\n", err)
		r.log.Error().Err(utils.WrapListError(err)).Msg("list failed")
		return
	}

	report.Listed = names
	if len(names) == 0 {
		fmt.Fprintln(r.out, "   (no blobs found in container)")
		return
	}
	for _, name := range names {
		fmt.Fprintf(r.out, "   - %s\n", name)
	}
	fmt.Fprintf(r.out, "   Total blobs: %d\n", len(names))
}

func (r *Runner) downloadAll(ctx context.Context, report *Report) {
	r.stage("Downloading blobs")

	for _, name := range report.Listed {
		target := r.config.DownloadPrefix + name
		if err := r.downloadOne(ctx, name, filepath.Join(r.config.WorkDir, target)); err != nil {
			missingColor.Fprintf(r.out, "   Error downloading %s: %v\n", name, err)
			r.log.Error().Err(utils.WrapDownloadError(err)).Str("blob", name).Msg("download failed")
			continue
		}
		report.Downloaded = append(report.Downloaded, target)
		okColor.Fprintf(r.out, "   Downloaded %q as %q\n", name, target)
	}
}

func (r *Runner) downloadOne(ctx context.Context, name, targetPath string) error {
	reader, err := r.client.Download(ctx, r.config.ContainerName, name)
	if err != nil {
		return err
	}
	defer func() { _ = reader.Close() }()

	f, err := os.Create(targetPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func (r *Runner) deleteContainer(ctx context.Context, report *Report) {
	if r.config.KeepContainer {
		r.stage("Keeping container %q", r.config.ContainerName)
		return
	}

	r.stage("Deleting container %q", r.config.ContainerName)

	if err := r.client.DeleteContainer(ctx, r.config.ContainerName); err != nil {
		missingColor.Fprintf(r.out, "   Error deleting container: %v\n", err)
		r.log.Error().Err(utils.WrapDeleteContainerError(err)).Str("container", r.config.ContainerName).Msg("container delete failed")
		return
	}
	report.ContainerDeleted = true
	okColor.Fprintf(r.out, "   Container %q deleted\n", r.config.ContainerName)
}

func (r *Runner) verify(report *Report) {
	r.stage("Verifying local files")

	expected := make([]string, 0, len(report.Samples)*2)
	expected = append(expected, report.Samples...)
	for _, name := range report.Samples {
		expected = append(expected, r.config.DownloadPrefix+name)
	}

	for _, name := range expected {
		_, err := os.Stat(filepath.Join(r.config.WorkDir, name))
		switch {
		case err == nil:
			report.Found = append(report.Found, name)
			okColor.Fprintf(r.out, "   [FOUND]   %s\n", name)
		case errors.Is(err, os.ErrNotExist):
			report.Missing = append(report.Missing, name)
			missingColor.Fprintf(r.out, "   [MISSING] %s\n", name)
		default:
			report.Missing = append(report.Missing, name)
			r.log.Error().Err(utils.WrapVerifyError(err)).Str("file", name).Msg("verify failed")
			missingColor.Fprintf(r.out, "   [MISSING] %s (%v)\n", name, err)
		}
	}
}

func (r *Runner) stage(format string, args ...any) {
	stageColor.Fprintf(r.out, "\n%s\n", fmt.Sprintf(format, args...))
}
