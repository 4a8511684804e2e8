package palet

import "context"

// DescriptorExtension is the file extension of application descriptors.
const DescriptorExtension = ".desktop"

// Application represents a launchable program discovered from a descriptor.
type Application struct {
	Name        string `json:"name"`
	Exec        string `json:"exec"`
	Description string `json:"description"`
	Terminal    bool   `json:"terminal"`

	// Path is the descriptor the application was parsed from.
	Path string `json:"path"`
}

// Validate returns an error if the application contains invalid fields.
func (a *Application) Validate() error {
	if a.Name == "" {
		return Errorf(EINVALID, "application name required")
	}
	if a.Exec == "" {
		return Errorf(EINVALID, "application exec required")
	}
	return nil
}

// DescriptorParser parses a single application descriptor.
type DescriptorParser interface {
	// Parse reads the descriptor at path.
	// Returns EINVALID if the descriptor is not a launchable application.
	Parse(path string) (*Application, error)
}

// DirectoryReport describes the yield of scanning one directory.
type DirectoryReport struct {
	Dir      string
	Accepted int
	Total    int

	// Err is set when the directory could not be read.
	Err error
}

// Scanner builds the application catalog from a set of directories.
type Scanner interface {
	// Scan parses every descriptor found directly inside dirs and returns
	// the accepted applications sorted case-insensitively by name.
	// Unreadable directories and rejected descriptors are skipped.
	// Only context cancellation is returned as an error.
	Scan(ctx context.Context, dirs []string) ([]*Application, error)
}

// DedupeApplications removes applications that share both name and exec
// with an earlier entry. The catalog is not deduplicated by default.
func DedupeApplications(apps []*Application) []*Application {
	type key struct{ name, exec string }

	seen := make(map[key]struct{}, len(apps))
	out := make([]*Application, 0, len(apps))
	for _, app := range apps {
		k := key{app.Name, app.Exec}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, app)
	}
	return out
}
