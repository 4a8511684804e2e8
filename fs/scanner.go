// Package fs builds the application catalog from descriptor directories.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/palet"
	"golang.org/x/sync/errgroup"
)

// Ensure Scanner implements palet.Scanner at compile time.
var _ palet.Scanner = (*Scanner)(nil)

// defaultConcurrency bounds the number of directories read in parallel.
const defaultConcurrency = 4

// SystemDirs are the application directories shared by all users.
var SystemDirs = []string{
	"/run/current-system/sw/share/applications",
	"/usr/share/applications",
	"/usr/local/share/applications",
	"/var/lib/flatpak/exports/share/applications",
}

// HomeDirs are the application directories relative to a user's home.
var HomeDirs = []string{
	".local/share/applications",
	".local/share/flatpak/exports/share/applications",
	".nix-profile/share/applications",
}

// DefaultDirs returns the conventional application directories, with
// home-relative entries resolved against home.
func DefaultDirs(home string) []string {
	dirs := make([]string, 0, len(SystemDirs)+len(HomeDirs))
	dirs = append(dirs, SystemDirs...)
	for _, dir := range HomeDirs {
		dirs = append(dirs, filepath.Join(home, dir))
	}
	return dirs
}

// Scanner reads every descriptor directly inside each directory.
type Scanner struct {
	Parser palet.DescriptorParser

	// Concurrency is the number of directories scanned in parallel.
	// Defaults to 4 if not set.
	Concurrency int

	// Report, if set, is called once per directory in input order.
	Report func(palet.DirectoryReport)

	// Reject, if set, is called for every rejected file in discovery order.
	Reject func(path string, err error)
}

// NewScanner creates a new Scanner using parser for each file.
func NewScanner(parser palet.DescriptorParser) *Scanner {
	return &Scanner{Parser: parser}
}

type rejection struct {
	path string
	err  error
}

type dirResult struct {
	report     palet.DirectoryReport
	apps       []*palet.Application
	rejections []rejection
}

// Scan parses the descriptors in dirs. Applications keep discovery order
// (directory order, then file name) among equal names.
func (s *Scanner) Scan(ctx context.Context, dirs []string) ([]*palet.Application, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	results := make([]dirResult, len(dirs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = s.scanDir(dir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var apps []*palet.Application
	for _, result := range results {
		if s.Reject != nil {
			for _, r := range result.rejections {
				s.Reject(r.path, r.err)
			}
		}
		if s.Report != nil {
			s.Report(result.report)
		}
		apps = append(apps, result.apps...)
	}

	SortApplications(apps)
	return apps, nil
}

func (s *Scanner) scanDir(dir string) dirResult {
	result := dirResult{report: palet.DirectoryReport{Dir: dir}}

	entries, err := os.ReadDir(dir)
	if err != nil {
		result.report.Err = err
		return result
	}

	for _, entry := range entries {
		result.report.Total++

		path := filepath.Join(dir, entry.Name())
		app, err := s.Parser.Parse(path)
		if err == nil {
			err = app.Validate()
		}
		if err != nil {
			result.rejections = append(result.rejections, rejection{path: path, err: err})
			continue
		}
		result.apps = append(result.apps, app)
		result.report.Accepted++
	}
	return result
}

// SortApplications sorts apps case-insensitively by name. The sort is
// stable so equal names keep their relative order.
func SortApplications(apps []*palet.Application) {
	slices.SortStableFunc(apps, func(a, b *palet.Application) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
}
