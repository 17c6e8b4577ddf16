// Package scan discovers command files and fans their processing out
// across workers.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/aidanlsb/cmdlint/internal/report"
)

// Collect walks root and returns every command markdown file, sorted.
// README files and dotted directories are skipped, as is anything that
// resolves outside the canonical root.
func Collect(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("directory '%s' does not exist", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", root)
	}

	canonicalRoot, err := filepath.Abs(root)
	if err != nil {
		canonicalRoot = root
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(path, ".md") {
			return nil
		}
		if strings.EqualFold(d.Name(), "readme.md") {
			return nil
		}

		canonicalFile, err := filepath.Abs(path)
		if err != nil {
			return nil
		}
		if !strings.HasPrefix(canonicalFile, canonicalRoot) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking '%s': %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Run processes each file on a bounded worker pool and merges results
// into a Summary. Documents are independent, so order of completion does
// not matter; Summary sorts by path when reporting. workers <= 0 uses one
// worker per CPU.
func Run(files []string, workers int, process func(path string) *report.FileResult) *report.Summary {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	summary := &report.Summary{}
	queue := make(chan string)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				summary.Add(process(path))
			}
		}()
	}

	for _, path := range files {
		queue <- path
	}
	close(queue)
	wg.Wait()

	return summary
}
