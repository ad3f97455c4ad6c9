package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfreitag/cvgen/internal/compile"
	"github.com/mfreitag/cvgen/internal/rendering"
	"github.com/mfreitag/cvgen/internal/resolver"
	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter letter.yaml",
	Short: "Generate a cover letter from a YAML file",
	Long:  "Renders a cover letter to LaTeX and optionally compiles a PDF. Sender fields left empty in the letter file are filled from the CV data folder; the recipient address is mandatory because the layout places it in a postal address window.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCoverLetter,
}

var (
	letterYAMLFolder   string
	letterConfigFolder string
	letterTemplate     string
	letterPDF          string
	letterLaTeX        string
	letterEngine       string
)

func init() {
	coverLetterCmd.Flags().StringVar(&letterYAMLFolder, "yaml-folder", "", "Folder with the YAML data files for sender fallback")
	coverLetterCmd.Flags().StringVar(&letterConfigFolder, "config-folder", "", "Folder with cv_config.yaml (defaults to --yaml-folder)")
	coverLetterCmd.Flags().StringVarP(&letterTemplate, "template", "t", "", "Path to a LaTeX template overriding the embedded one")
	coverLetterCmd.Flags().StringVar(&letterPDF, "pdf", "", "Output PDF file path")
	coverLetterCmd.Flags().StringVar(&letterLaTeX, "latex", "", "Output LaTeX file path")
	coverLetterCmd.Flags().StringVar(&letterEngine, "engine", "pdflatex", "LaTeX engine (pdflatex, xelatex, lualatex)")

	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(_ *cobra.Command, args []string) error {
	if letterPDF == "" && letterLaTeX == "" {
		return fmt.Errorf("no output specified; use --pdf or --latex")
	}

	letter := &types.CoverLetter{}
	if err := sources.LoadInto(args[0], letter); err != nil {
		return err
	}

	set := sources.Set{}
	if letterYAMLFolder != "" {
		var err error
		set, err = sources.LoadFolder(letterYAMLFolder, letterConfigFolder)
		if err != nil {
			return err
		}
	}

	res := resolver.New()
	if err := res.ResolveCoverLetter(letter, set, resolver.Overrides{}); err != nil {
		return err
	}

	latex, err := rendering.RenderCoverLetter(letter, letterTemplate)
	if err != nil {
		return err
	}

	if letterLaTeX != "" {
		if dir := filepath.Dir(letterLaTeX); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(letterLaTeX, []byte(latex), 0o644); err != nil {
			return fmt.Errorf("failed to write LaTeX to %s: %w", letterLaTeX, err)
		}
		fmt.Printf("LaTeX exported to %s\n", letterLaTeX)
	}

	if letterPDF != "" {
		fmt.Printf("Generating PDF using %s...\n", letterEngine)
		if _, err := compile.ToPDF(context.Background(), latex, letterPDF, letterEngine); err != nil {
			return err
		}
		fmt.Printf("PDF generated successfully: %s\n", letterPDF)
	}

	return nil
}
