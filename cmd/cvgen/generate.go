package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mfreitag/cvgen/internal/compile"
	"github.com/mfreitag/cvgen/internal/config"
	"github.com/mfreitag/cvgen/internal/observability"
	"github.com/mfreitag/cvgen/internal/rendering"
	"github.com/mfreitag/cvgen/internal/resolver"
	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [input.yaml]",
	Short: "Generate a CV from a YAML folder or a single YAML file",
	Long:  "Resolves the CV model from a folder of YAML data files (or one self-contained YAML file), renders it to LaTeX and optionally compiles a PDF.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

var (
	generateYAMLFolder   string
	generateConfigFolder string
	generateConfigFile   string
	generateTemplate     string
	generatePDF          string
	generateLaTeX        string
	generateEngine       string
	generatePicture      string
	generateVerbose      bool
)

func init() {
	generateCmd.Flags().StringVar(&generateYAMLFolder, "yaml-folder", "", "Folder with the YAML data files")
	generateCmd.Flags().StringVar(&generateConfigFolder, "config-folder", "", "Folder with cv_config.yaml (defaults to --yaml-folder)")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to cvgen.yaml configuration file")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Path to a LaTeX template overriding the embedded one")
	generateCmd.Flags().StringVar(&generatePDF, "pdf", "", "Output PDF file path")
	generateCmd.Flags().StringVar(&generateLaTeX, "latex", "", "Output LaTeX file path")
	generateCmd.Flags().StringVar(&generateEngine, "engine", "", "LaTeX engine (pdflatex, xelatex, lualatex; default pdflatex)")
	generateCmd.Flags().StringVar(&generatePicture, "picture", "", "Path to the portrait picture file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print resolution details")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, args []string) error {
	cfg, err := mergedConfig()
	if err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	if input != "" && cfg.YAMLFolder != "" {
		return fmt.Errorf("cannot specify both an input file and --yaml-folder")
	}
	if input == "" && cfg.YAMLFolder == "" {
		return fmt.Errorf("must specify either an input YAML file or --yaml-folder")
	}
	if generatePDF == "" && generateLaTeX == "" {
		return fmt.Errorf("no output specified; use --pdf or --latex")
	}

	printer := observability.NewPrinter(os.Stdout)

	var doc *types.Document
	if input != "" {
		doc = &types.Document{}
		if err := sources.LoadInto(input, doc); err != nil {
			return err
		}
		if cfg.Picture != "" {
			doc.Contact.PortraitPath = cfg.Picture
		}
	} else {
		set, err := sources.LoadFolder(cfg.YAMLFolder, cfg.ConfigFolder)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			printer.PrintSources(set)
		}

		res := resolver.New(resolverOptions(cfg)...)
		doc, err = res.Resolve(set, resolver.Overrides{PortraitPath: cfg.Picture})
		if err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printer.PrintDocument(doc)
	}

	latex, err := rendering.RenderCV(doc, cfg.Template)
	if err != nil {
		return err
	}

	return writeOutputs(latex, cfg.Engine, cfg.Verbose, printer)
}

// mergedConfig builds the effective configuration: CLI flags win over the
// optional config file.
func mergedConfig() (config.Config, error) {
	flags := config.Config{
		YAMLFolder:   generateYAMLFolder,
		ConfigFolder: generateConfigFolder,
		Template:     generateTemplate,
		Picture:      generatePicture,
		Engine:       generateEngine,
		Verbose:      generateVerbose,
	}

	merged := flags
	if generateConfigFile != "" {
		fileCfg, err := config.Load(generateConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		merged = flags.MergeWithDefaults(*fileCfg)
	}
	if merged.Engine == "" {
		merged.Engine = "pdflatex"
	}
	return merged, merged.Validate()
}

func resolverOptions(cfg config.Config) []resolver.Option {
	var opts []resolver.Option
	if languages := cfg.SeedLanguages(); languages != nil {
		opts = append(opts, resolver.WithLanguages(languages))
	}
	return opts
}

// writeOutputs writes the requested LaTeX and/or PDF artifacts.
func writeOutputs(latex, engine string, verbose bool, printer *observability.Printer) error {
	if generateLaTeX != "" {
		if dir := filepath.Dir(generateLaTeX); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(generateLaTeX, []byte(latex), 0o644); err != nil {
			return fmt.Errorf("failed to write LaTeX to %s: %w", generateLaTeX, err)
		}
		fmt.Printf("LaTeX exported to %s\n", generateLaTeX)
	}

	if generatePDF != "" {
		fmt.Printf("Generating PDF using %s...\n", engine)
		result, err := compile.ToPDF(context.Background(), latex, generatePDF, engine)
		if err != nil {
			return err
		}
		if verbose {
			printer.PrintCompilation(result.RunID, generatePDF)
		}
		fmt.Printf("PDF generated successfully: %s\n", generatePDF)
	}

	return nil
}
