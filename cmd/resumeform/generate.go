package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"resume-builder/internal/extract"
	"resume-builder/internal/form"
	"resume-builder/internal/notify"
	"resume-builder/internal/resumeclient"
	"resume-builder/internal/shared/config"
)

type generateOptions struct {
	file    string
	form    string
	out     string
	baseURL string
}

func newGenerateCmd(cfg config.Config) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [summary...]",
		Short: "Generate a resume and merge it into form data",
		Long: `Send a free-text summary to the resume API and merge the generated resume
into form data. The summary is taken from the arguments, from --file (PDF, DOCX
or text), or both.

Example:
  resumeform generate "I am Jane Doe, a Go developer with 8 years of experience"
  resumeform generate --file notes.pdf --form form.json --out form.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.baseURL, _ = cmd.Flags().GetString("base-url")
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the summary from a PDF, DOCX or text file")
	cmd.Flags().StringVar(&opts.form, "form", "", "Existing form JSON to merge into")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the resulting form JSON here (default stdout)")
	return cmd
}

// runGenerate writes only the form document to out; notifications and view
// state go to status so stdout can be redirected to a file.
func runGenerate(ctx context.Context, out, status io.Writer, cfg config.Config, opts *generateOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := readSummary(ctx, opts.file, args)
	if err != nil {
		return err
	}

	data, err := readForm(opts.form)
	if err != nil {
		return err
	}

	client := resumeclient.New(opts.baseURL, resumeclient.WithTimeout(cfg.ClientTimeout))
	term := notify.NewTerminal(status)
	view := &terminalView{term: term}
	ctrl := form.NewController(client, term, view)

	st := form.InitialState(data)
	st.Description = summary
	final := ctrl.Generate(ctx, st)

	if !final.ShowFormUI {
		return errors.New("resume generation failed")
	}

	if err := writeForm(out, opts.out, final.Data); err != nil {
		return err
	}
	fmt.Fprintf(status, "view: prompt=%t form=%t resume=%t\n", final.ShowPromptInput, final.ShowFormUI, final.ShowResumeUI)
	return nil
}

func readSummary(ctx context.Context, file string, args []string) (string, error) {
	parts := make([]string, 0, 2)
	if file != "" {
		text, err := extract.ExtractFile(ctx, file)
		if err != nil {
			return "", errors.Wrapf(err, "failed reading summary from %s", file)
		}
		parts = append(parts, text)
	}
	if joined := strings.TrimSpace(strings.Join(args, " ")); joined != "" {
		parts = append(parts, joined)
	}
	return strings.Join(parts, "\n\n"), nil
}

func readForm(path string) (form.FormData, error) {
	if path == "" {
		return form.DefaultFormData(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return form.FormData{}, errors.Wrapf(err, "failed reading form %s", path)
	}
	data, err := form.NewFormData(raw)
	if err != nil {
		return form.FormData{}, errors.Wrapf(err, "invalid form %s", path)
	}
	return data, nil
}

func writeForm(out io.Writer, path string, data form.FormData) error {
	body := append(data.Pretty(), '\n')
	if path == "" {
		_, err := out.Write(body)
		return errors.Wrap(err, "failed writing form")
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return errors.Wrapf(err, "failed writing form %s", path)
	}
	return nil
}

// terminalView reports state transitions as progress lines.
type terminalView struct {
	term *notify.Terminal
}

func (v *terminalView) Render(st form.State) {
	if st.Loading {
		v.term.Info("Generating resume...")
	}
}

func (v *terminalView) Reset(data form.FormData) {
	if name := data.FullName(); name != "" {
		v.term.Info("Form updated for " + name)
	}
}
