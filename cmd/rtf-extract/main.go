package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scrytools/mcp-rtf-reader/internal/rtf"
)

var (
	annotations  = flag.Bool("annotations", false, "Extract inline annotations instead of body text")
	both         = flag.Bool("both", false, "Extract body text and inline annotations")
	keepTags     = flag.Bool("keep-tags", false, "Keep Scrivener style tags in the output")
	outputFormat = flag.String("format", "text", "Output format: text, json")
	maxFileSize  = flag.Int64("maxfilesize", 100*1024*1024, "Maximum RTF file size in bytes")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: RTF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		result, err := extractFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting %s: %v\n", path, err)
			exitCode = 1
			continue
		}
		if err := outputResult(result); err != nil {
			fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func printHelp() {
	fmt.Println("RTF Extract - Recover plain text and annotations from RTF documents")
	fmt.Println()
	fmt.Println("This tool interprets the RTF control stream of a document and prints the")
	fmt.Println("recovered body text, one paragraph per line. Scrivener inline annotations")
	fmt.Println("are removed from the body and can be extracted separately.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -annotations   Extract inline annotations instead of body text")
	fmt.Println("  -both          Extract body text and inline annotations")
	fmt.Println("  -keep-tags     Keep Scrivener style tags (<$Scr...>) in the output")
	fmt.Println("  -format        Output format: text (default), json")
	fmt.Println("  -maxfilesize   Maximum RTF file size in bytes")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  rtf-extract document.rtf")
	fmt.Println("  rtf-extract -annotations draft.rtf")
	fmt.Println("  rtf-extract -format json -both chapters/*.rtf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  rtf-extract [OPTIONS] <rtf_file>...")
}

// ExtractionResult represents the recovered content of one RTF file
type ExtractionResult struct {
	FilePath    string   `json:"file_path"`
	Lines       []string `json:"lines,omitempty"`
	Annotations []string `json:"annotations,omitempty"`
}

func extractFile(path string) (*ExtractionResult, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	reader := rtf.NewReader(*maxFileSize)
	result := &ExtractionResult{FilePath: absPath}

	if !*annotations || *both {
		read, err := reader.ReadFile(rtf.RTFReadFileRequest{Path: absPath, KeepTags: *keepTags})
		if err != nil {
			return nil, err
		}
		result.Lines = read.Lines
	}

	if *annotations || *both {
		annots, err := reader.AnnotationsFile(rtf.RTFAnnotationsFileRequest{Path: absPath})
		if err != nil {
			return nil, err
		}
		result.Annotations = annots.Annotations
	}

	return result, nil
}

func outputResult(result *ExtractionResult) error {
	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "text":
		for _, annotation := range result.Annotations {
			fmt.Printf("[annotation] %s\n", annotation)
		}
		for _, line := range result.Lines {
			fmt.Println(line)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func init() {
	flag.Usage = printHelp
}
