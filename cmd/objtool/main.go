// objtool is a CLI utility for inspecting and transforming wireframe OBJ models.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/objview/internal/config"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/internal/viewer"
	"github.com/Faultbox/objview/pkg/geometry"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "info":
		cmdInfo(cfg, rest)
	case "verify", "check":
		cmdVerify(cfg, rest)
	case "transform", "tf":
		cmdTransform(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - wireframe OBJ model utility

Usage:
  objtool [flags] <command> [arguments]

Commands:
  info <file.obj>                          Show model statistics
  verify <file.obj> [more.obj ...]         Parse files, report per-file result
  transform <file.obj> <op> <value> [axis] Apply move|rotate|scale and show extents

Examples:
  objtool info cube.obj
  objtool verify a.obj b.obj
  objtool transform cube.obj rotate 90 y
  objtool transform cube.obj scale 2`)
}

// resolveModel expands a bare model name against the configured models
// directory. Paths that already resolve are used as-is.
func resolveModel(cfg *config.Config, path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cfg.Models.Dir, path)
}

// load runs the set-name/parse sequence and exits on any load error.
func load(cfg *config.Config, path string) *viewer.State {
	s := viewer.New()
	s.SetFileName(resolveModel(cfg, path))
	s.Parse()
	if code := s.Err(); code != viewer.ErrNone {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, code)
		os.Exit(1)
	}
	return s
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	s := load(cfg, args[0])
	buf := s.Geometry()
	min, max := buf.Bounds()

	fmt.Printf("File:     %s\n", s.FileName())
	fmt.Printf("Vertices: %d\n", s.VertexCount())
	fmt.Printf("Edges:    %d\n", s.EdgeCount())
	fmt.Printf("Min:      (%.4f, %.4f, %.4f)\n", min[0], min[1], min[2])
	fmt.Printf("Max:      (%.4f, %.4f, %.4f)\n", max[0], max[1], max[2])
	fmt.Printf("Max abs:  %.4f\n", buf.MaxAbs())
}

func cmdVerify(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool verify <file.obj> [more.obj ...]")
		os.Exit(1)
	}

	failed := 0
	for _, path := range args {
		s := viewer.New()
		s.SetFileName(resolveModel(cfg, path))
		s.Parse()

		if code := s.Err(); code != viewer.ErrNone {
			failed++
			fmt.Printf("%s: FAIL (%v)\n", path, code)
			continue
		}
		fmt.Printf("%s: OK (%d vertices, %d edges)\n", path, s.VertexCount(), s.EdgeCount())
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func cmdTransform(cfg *config.Config, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: objtool transform <file.obj> <move|rotate|scale> <value> [x|y|z]")
		os.Exit(1)
	}

	kind, ok := parseKind(args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown operation: %s\n", args[1])
		os.Exit(1)
	}

	value, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad value %q: %v\n", args[2], err)
		os.Exit(1)
	}

	axis := geometry.AxisX
	if len(args) > 3 {
		axis, ok = parseAxis(args[3])
		if !ok {
			fmt.Fprintf(os.Stderr, "Unknown axis: %s\n", args[3])
			os.Exit(1)
		}
	}

	s := load(cfg, args[0])
	s.Transform(kind, value, axis)

	min, max := s.Geometry().Bounds()
	fmt.Printf("Applied %v %g on %v\n", kind, value, axis)
	fmt.Printf("Min: (%.4f, %.4f, %.4f)\n", min[0], min[1], min[2])
	fmt.Printf("Max: (%.4f, %.4f, %.4f)\n", max[0], max[1], max[2])
}

func parseKind(s string) (geometry.Kind, bool) {
	switch s {
	case "move", "translate":
		return geometry.Move, true
	case "rotate":
		return geometry.Rotate, true
	case "scale":
		return geometry.Scale, true
	default:
		return 0, false
	}
}

func parseAxis(s string) (geometry.Axis, bool) {
	switch s {
	case "x", "X":
		return geometry.AxisX, true
	case "y", "Y":
		return geometry.AxisY, true
	case "z", "Z":
		return geometry.AxisZ, true
	default:
		return 0, false
	}
}
