package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/cfv/backend"
	"github.com/ajroetker/go-cfv/report"
)

func newReportCmd(opts *options) *cobra.Command {
	var (
		library string
		dtype   string
		device  string
		size    int
		samples string
	)
	cmd := &cobra.Command{
		Use:   "report <function>",
		Short: "Print the report of one function against the reference",
		Example: `  cfv report sqrt --library Hwy --device scalar --size 20
  cfv report tan --library Decomposed --dtype complex128 --samples XIN`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !cfv.IsFunctionName(name) {
				return fmt.Errorf("unknown function %q, want one of %s", name, strings.Join(cfv.FunctionNames, ", "))
			}
			d, err := cfv.ParseDtype(dtype)
			if err != nil {
				return err
			}
			cfg := opts.cfg
			refLib, err := backend.Open(cfg.Reference.Library)
			if err != nil {
				return err
			}
			lib, err := backend.Open(library)
			if err != nil {
				return err
			}
			if device == "" {
				device = lib.Devices()[0]
			}

			ref := refLib.Function(name, cfg.ReferenceDtype(), cfg.Reference.Device)
			cand := lib.Function(name, d, device)
			img := report.NewImage()
			if err := img.GenerateReport(ref, []cfv.Function{cand}, report.Options{SizeRe: size, SizeIm: size, FTZ: cfg.FTZMode()}); err != nil {
				return err
			}
			if samples != "" {
				codes := make([]cfv.Code, len(samples))
				for i := range codes {
					codes[i] = cfv.Code(samples[i])
				}
				img.InsertSamples(report.End(1), report.At(0), codes)
			}
			img.InsertLegend(report.End(0), report.At(10))
			opts.logger.Debug("generated report")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), img.String())
			return err
		},
	}
	cmd.Flags().StringVarP(&library, "library", "l", "Decomposed", "Candidate library")
	cmd.Flags().StringVar(&dtype, "dtype", "complex64", "Candidate dtype")
	cmd.Flags().StringVar(&device, "device", "", "Candidate device (default: the library's first device)")
	cmd.Flags().IntVarP(&size, "size", "s", 20, "Sampler size of both axes")
	cmd.Flags().StringVar(&samples, "samples", "", "Codes whose samples are listed, e.g. XIN")
	return cmd
}
