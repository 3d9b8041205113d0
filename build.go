//go:build ignore

// build.go - txtcli Build System
// Usage: go run build.go [-target=TARGET]
// Targets: all, statistics, convert, wordcount, clean, test, release

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	version = "1.0.0"
	module  = "txtcli"
)

// BuildContext holds configuration for the build process
type BuildContext struct {
	Verbose bool
	GOOS    string
	GOARCH  string
}

var (
	rootDir string
	distDir string

	// Executable names (key = source dir name under cmd/, value = output name)
	executables = map[string]string{
		"statistics": "statistics",
		"convert":    "convert",
		"wordcount":  "wordcount",
	}

	// Colors for console output
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

func init() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("Failed to get current directory: %v", err))
	}

	rootDir = cwd
	distDir = filepath.Join(rootDir, "dist")

	if _, err := os.Stat(filepath.Join(rootDir, "go.mod")); os.IsNotExist(err) {
		panic(fmt.Sprintf("go.mod not found in %s. Run the build from the module root.", rootDir))
	}
}

func main() {
	target := flag.String("target", "all", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	goos := flag.String("os", "", "Target operating system (defaults to host)")
	goarch := flag.String("arch", "", "Target architecture (defaults to host)")
	flag.Parse()

	printHeader()

	startTime := time.Now()

	buildCtx := &BuildContext{
		Verbose: *verbose,
		GOOS:    *goos,
		GOARCH:  *goarch,
	}

	switch *target {
	case "all":
		buildAll(buildCtx)
	case "statistics", "convert", "wordcount":
		prepareDirectories(buildCtx.Verbose)
		buildExecutable(*target, buildCtx)
	case "clean":
		clean(buildCtx.Verbose)
	case "test":
		runTests(buildCtx.Verbose)
	case "release":
		buildRelease(buildCtx)
	default:
		showHelp()
		os.Exit(1)
	}

	duration := time.Since(startTime)
	printSuccess(fmt.Sprintf("Build completed in %s", duration.Round(time.Millisecond)))
}

func printHeader() {
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println(colorCyan + "         txtcli - Build System           " + colorReset)
	fmt.Println(colorCyan + "===========================================" + colorReset)
	fmt.Println()
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorBlue, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[SUCCESS]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Printf("%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}

func printWarning(msg string) {
	fmt.Printf("%s[WARNING]%s %s\n", colorYellow, colorReset, msg)
}

// Build all utilities
func buildAll(ctx *BuildContext) {
	printInfo("Building all utilities...")

	clearLogs(ctx.Verbose)
	prepareDirectories(ctx.Verbose)

	for name := range executables {
		buildExecutable(name, ctx)
	}

	printSuccess("All utilities built successfully!")
}

// Build a single utility
func buildExecutable(name string, ctx *BuildContext) {
	exeName, ok := executables[name]
	if !ok {
		printError(fmt.Sprintf("Unknown executable: %s", name))
		os.Exit(1)
	}

	goos := ctx.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		exeName += ".exe"
	}

	printInfo(fmt.Sprintf("Building %s...", name))

	outputPath := filepath.Join(distDir, exeName)
	sourcePath := "./cmd/" + name

	ldflags := fmt.Sprintf("-s -w -X %s/pkg/contracts.BuildTime=%s -X %s/pkg/contracts.GitCommit=%s",
		module, time.Now().Format(time.RFC3339), module, gitCommit())

	args := []string{"build"}
	if ctx.Verbose {
		args = append(args, "-v")
	}
	args = append(args, "-ldflags", ldflags, "-o", outputPath, sourcePath)

	cmd := exec.Command("go", args...)
	cmd.Dir = rootDir
	cmd.Env = os.Environ()
	if ctx.GOOS != "" {
		cmd.Env = append(cmd.Env, "GOOS="+ctx.GOOS)
	}
	if ctx.GOARCH != "" {
		cmd.Env = append(cmd.Env, "GOARCH="+ctx.GOARCH)
	}

	if ctx.Verbose {
		fmt.Printf("Running from %s: go %s\n", rootDir, strings.Join(args, " "))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		printError(fmt.Sprintf("Failed to build %s: %v", name, err))
		os.Exit(1)
	}

	if info, err := os.Stat(outputPath); err == nil {
		sizeMB := float64(info.Size()) / 1024 / 1024
		printSuccess(fmt.Sprintf("Built %s (%.1f MB)", exeName, sizeMB))
	}
}

// gitCommit returns the short hash of HEAD, or "unknown" outside a repository
func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}

func clean(verbose bool) {
	printInfo("Cleaning build artifacts and logs...")

	clearLogs(verbose)

	if err := os.RemoveAll(distDir); err != nil && !os.IsNotExist(err) {
		printError(fmt.Sprintf("Failed to clean dist directory: %v", err))
	}

	printSuccess("Build artifacts cleaned")
}

func runTests(verbose bool) {
	printInfo("Running Go tests...")

	args := []string{"test", "-race"}
	if verbose {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	cmd := exec.Command("go", args...)
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		printError(fmt.Sprintf("Go tests failed: %v", err))
		os.Exit(1)
	}

	printSuccess("All tests passed")
}

// Build release version with a version file
func buildRelease(ctx *BuildContext) {
	printInfo("Building release version...")

	clean(ctx.Verbose)
	os.Setenv("CGO_ENABLED", "0")

	buildAll(ctx)
	copyConfigFiles(ctx.Verbose)

	versionFile := filepath.Join(distDir, "VERSION.txt")
	content := fmt.Sprintf("txtcli v%s\nBuilt: %s\n", version, time.Now().Format("2006-01-02 15:04:05"))
	if err := os.WriteFile(versionFile, []byte(content), 0644); err != nil {
		printWarning(fmt.Sprintf("Failed to write version file: %v", err))
	}

	printSuccess("Release build completed")
}

func prepareDirectories(verbose bool) {
	for _, dir := range []string{distDir, filepath.Join(distDir, "logs")} {
		if verbose {
			fmt.Printf("  Creating: %s\n", dir)
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			printError(fmt.Sprintf("Failed to create %s: %v", dir, err))
			os.Exit(1)
		}
	}
}

// copyConfigFiles ships the sample configuration next to the binaries
func copyConfigFiles(verbose bool) {
	for _, name := range []string{"configs/txtcli.example.yaml", ".env.example"} {
		src := filepath.Join(rootDir, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if verbose {
			fmt.Printf("  Copying: %s\n", name)
		}
		if err := copyFile(src, filepath.Join(distDir, filepath.Base(name))); err != nil {
			printWarning(fmt.Sprintf("Failed to copy %s: %v", name, err))
		}
	}
}

func copyFile(src, dest string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0644)
}

func clearLogs(verbose bool) {
	printInfo("Clearing log files...")

	for _, dir := range []string{filepath.Join(distDir, "logs"), filepath.Join(rootDir, "logs")} {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if !info.IsDir() && strings.HasSuffix(path, ".log") {
				if verbose {
					fmt.Printf("  Removing: %s\n", path)
				}
				os.Remove(path)
			}
			return nil
		})
	}

	printSuccess("Log files cleared")
}

func showHelp() {
	fmt.Println("Usage: go run build.go [-target=TARGET] [-v] [-os=GOOS] [-arch=GOARCH]")
	fmt.Println()
	fmt.Println("Targets:")
	fmt.Println("  all          Build all utilities (default)")
	fmt.Println("  statistics   Build the statistics utility")
	fmt.Println("  convert      Build the number conversion utility")
	fmt.Println("  wordcount    Build the word frequency utility")
	fmt.Println("  clean        Clean build artifacts")
	fmt.Println("  test         Run all tests")
	fmt.Println("  release      Build release binaries with a version file")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -v           Verbose output")
	fmt.Println("  -os          Cross-compile for the given GOOS")
	fmt.Println("  -arch        Cross-compile for the given GOARCH")
}
