package main

import (
	"errors"
	"fmt"
	"os"

	"mapbrowse/internal/browse"
	"mapbrowse/internal/logging"
	"mapbrowse/internal/model"
	"mapbrowse/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "influencecell",
		Repository: "mapbrowse",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/influencecell/mapbrowse/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mapbrowse [options] [file-patterns...]\n\n")
		fmt.Fprintf(os.Stderr, "mapbrowse opens interactive, browser-rendered views of the spatial maps\n")
		fmt.Fprintf(os.Stderr, "stored in .rwa analysis archives. Without file patterns it looks for\n")
		fmt.Fprintf(os.Stderr, "*.rwa in the working directory, then one subdirectory down.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  mapbrowse                      # Browse *.rwa from the current directory\n")
		fmt.Fprintf(os.Stderr, "  mapbrowse run1.rwa run2.rwa    # Browse specific archives\n")
		fmt.Fprintf(os.Stderr, "  mapbrowse -b Chrome -c plasma  # Chrome backend, plasma colormap\n")
		fmt.Fprintf(os.Stderr, "  mapbrowse --pick               # Choose archives interactively\n")
	}

	browserFlag := pflag.StringP("browser", "b", envOr("MAPBROWSE_BROWSER", "Firefox"), "Browser backend: "+model.BrowserNames())
	colormapFlag := pflag.StringP("colormap", "c", "", "Colormap name passed to the map renderer")
	interpreterFlag := pflag.String("interpreter", envOr("MAPBROWSE_PYTHON", "python3"), "Interpreter used to run the driver script")
	pickFlag := pflag.BoolP("pick", "p", false, "Pick archives interactively before launching")
	dryRunFlag := pflag.BoolP("dry-run", "n", false, "Print the driver script instead of running it")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Enable debug logging")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("mapbrowse version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	// The browser enumeration is closed; reject before any other logic runs.
	browser, err := model.ParseBrowser(*browserFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapbrowse: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	logging.Init(*verboseFlag, nil)

	patterns, err := browse.Discover(pflag.Args())
	if errors.Is(err, browse.ErrNoFiles) {
		fmt.Println("no rwa files found")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapbrowse: %v\n", err)
		os.Exit(1)
	}

	if *pickFlag {
		patterns, err = runPicker(patterns)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mapbrowse: %v\n", err)
			os.Exit(1)
		}
		if len(patterns) == 0 {
			return // cancelled, nothing to browse
		}
	}

	req := model.Request{
		Files:       patterns,
		Browser:     browser,
		Colormap:    *colormapFlag,
		Interpreter: *interpreterFlag,
	}

	if *dryRunFlag {
		fmt.Print(browse.Script(req, "<driver-script-path>"))
		return
	}

	outcome, err := browse.Launch(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapbrowse: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(outcome)
}

// runPicker expands the discovered patterns into concrete archives and lets
// the operator choose. A nil result means the run was cancelled.
func runPicker(patterns []string) ([]string, error) {
	files, err := browse.ExpandFiles(patterns)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no files match %v", patterns)
	}

	m := tui.InitialModel(files)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	picker, ok := final.(tui.PickerModel)
	if !ok || !picker.Confirmed {
		return nil, nil
	}
	return picker.Selection(), nil
}
