// Package dockerfile keeps the bundle Dockerfile in sync with the micro
// frontends of the bundle.
package dockerfile

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"bundle-cli/internal/domain/model"
	"bundle-cli/pkg/log"
)

const (
	baseImage = "FROM scratch"
	// widgetsSource is where the build step leaves micro frontend bundles,
	// relative to the bundle root.
	widgetsSource = ".entando/output/widgets"
	widgetsTarget = "/widgets"
)

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

// Entry returns the Dockerfile instruction that ships micro frontend name.
func Entry(name string) string {
	return fmt.Sprintf("ADD %s %s", path.Join(widgetsSource, name), path.Join(widgetsTarget, name))
}

// AddMicroFrontendEntry appends the entry of name unless it is already there.
// A missing Dockerfile is created.
func (r *Repository) AddMicroFrontendEntry(bundleRoot, name string) error {
	dockerfile := filepath.Join(bundleRoot, model.DockerfileName)

	lines, err := readLines(dockerfile)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		lines = []string{baseImage}
	}

	entry := Entry(name)
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return nil
		}
	}

	lines = append(lines, entry)
	if err := writeLines(dockerfile, lines); err != nil {
		return err
	}
	log.Debug("Dockerfile entry added", "microfrontend", name)
	return nil
}

// RemoveMicroFrontendEntry drops every entry of name. A missing Dockerfile
// has nothing to remove.
func (r *Repository) RemoveMicroFrontendEntry(bundleRoot, name string) error {
	dockerfile := filepath.Join(bundleRoot, model.DockerfileName)

	lines, err := readLines(dockerfile)
	if err != nil || len(lines) == 0 {
		return err
	}

	entry := Entry(name)
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != entry {
			kept = append(kept, line)
		}
	}
	if len(kept) == len(lines) {
		return nil
	}

	if err := writeLines(dockerfile, kept); err != nil {
		return err
	}
	log.Debug("Dockerfile entry removed", "microfrontend", name)
	return nil
}

func readLines(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, model.WrapIOError(err, "failed to read %s", file)
	}

	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}

func writeLines(file string, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		return model.WrapIOError(err, "failed to write %s", file)
	}
	return nil
}
