// Command image-converter converts images to PDF, PNG or JPEG without the
// desktop UI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ytget/image-converter/internal/convert"
	"github.com/ytget/image-converter/internal/model"
	"github.com/ytget/image-converter/internal/platform"
)

// version is set at build time via ldflags.
var version = "dev"

// openFile opens a finished combined PDF
var openFile = platform.OpenFileWithDefaultApp

type options struct {
	format  string
	combine bool
	output  string
	dirs    []string
	quiet   bool
	reveal  bool
	open    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "image-converter [flags] files...",
		Short: "Convert images to PDF, PNG or JPEG",
		Long: `image-converter converts image files (png, jpeg, bmp, gif, tiff, webp)
into one combined PDF, one PDF per image, or PNG/JPEG copies.

Files are processed in the order given; with --combine the order is the
page order of the resulting PDF.`,
		Example: `  image-converter -f pdf --combine -o album.pdf a.png b.jpg
  image-converter -f jpeg -o ./out --dir ./scans`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", string(model.FormatPDF), "output format: pdf, png or jpeg")
	cmd.Flags().BoolVar(&opts.combine, "combine", false, "combine all images into a single PDF")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF file with --combine, output directory otherwise")
	cmd.Flags().StringSliceVar(&opts.dirs, "dir", nil, "add every image in a directory (repeatable)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not show progress")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "show the result in the file manager when done")
	cmd.Flags().BoolVar(&opts.open, "open", false, "open the combined PDF with the default application when done")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	req, err := buildRequest(opts, args)
	if err != nil {
		return err
	}

	service := convert.NewService()
	if !opts.quiet {
		bar := newProgressBar(cmd, len(req.Files))
		service.SetUpdateCallback(func(p model.Progress) {
			if p.Phase == model.PhaseIdle {
				return
			}
			bar.Describe(p.Status)
			_ = bar.Set(p.Current)
		})
		defer bar.Finish()
	}

	result, err := service.Convert(req)
	if err != nil {
		if convert.IsUserInputError(err) {
			return fmt.Errorf("%w (see --help)", err)
		}
		return err
	}

	for _, output := range result.Outputs {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}

	if opts.reveal && len(result.Outputs) > 0 {
		target := req.Destination
		if req.IsCombined() {
			target = result.Outputs[0]
		}
		if err := platform.OpenFileInManager(target); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to reveal %s: %v\n", target, err)
		}
	}

	if opts.open && len(result.Outputs) == 1 {
		if err := openFile(result.Outputs[0]); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open %s: %v\n", result.Outputs[0], err)
		}
	}
	return nil
}

// buildRequest validates flags and collects the input files in order
func buildRequest(opts *options, args []string) (model.ConversionRequest, error) {
	format, err := model.ParseFormat(opts.format)
	if err != nil {
		return model.ConversionRequest{}, err
	}
	if opts.combine && format != model.FormatPDF {
		return model.ConversionRequest{}, errors.New("--combine requires --format pdf")
	}
	if opts.open && !opts.combine {
		return model.ConversionRequest{}, errors.New("--open requires --combine")
	}

	files := append([]string(nil), args...)
	for _, dir := range opts.dirs {
		dirFiles, err := platform.ListImageFiles(dir)
		if err != nil {
			return model.ConversionRequest{}, err
		}
		files = append(files, dirFiles...)
	}

	output := opts.output
	if output != "" {
		if abs, err := filepath.Abs(output); err == nil {
			output = abs
		}
	}

	return model.ConversionRequest{
		Files:       files,
		Format:      format,
		Combine:     opts.combine,
		Destination: output,
	}, nil
}

func newProgressBar(cmd *cobra.Command, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription(model.StatusText(model.PhaseIdle, 0, total)),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
