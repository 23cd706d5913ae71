// Package manifest parses document declaration files (DOCUMENTS.toml or a
// YAML equivalent) describing the project-model documents a snapshot
// should contain.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/KlemensE/roslyn/internal/errors"
	"github.com/KlemensE/roslyn/internal/nav"
	"github.com/KlemensE/roslyn/internal/snapshot"
)

// DefaultManifestFile is the default filename for document declarations
const DefaultManifestFile = "DOCUMENTS.toml"

// DocumentDeclaration represents a declared document in the manifest
type DocumentDeclaration struct {
	// ID is the unique document identifier (optional, generated if not provided)
	ID string `toml:"id" yaml:"id"`

	// Name is the human-readable document name
	Name string `toml:"name" yaml:"name"`

	// Path is the workspace-relative path to the document
	Path string `toml:"path" yaml:"path"`
}

// Manifest represents the root structure of the declaration file
type Manifest struct {
	// Version is the schema version
	Version int `toml:"version" yaml:"version"`

	// Documents is the list of declared documents
	Documents []DocumentDeclaration `toml:"document" yaml:"documents"`
}

// Load parses a manifest file. The format is chosen by extension: .toml,
// or .yaml/.yml.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ManifestInvalid,
			"failed to read manifest", err)
	}

	var m Manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ManifestInvalid,
				"failed to parse TOML manifest", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(errors.ManifestInvalid,
				"failed to parse YAML manifest", err)
		}
	default:
		return nil, errors.Newf(errors.ManifestInvalid,
			"unsupported manifest extension %q", filepath.Ext(path))
	}

	if m.Version < 1 {
		m.Version = 1 // Default to version 1
	}
	return &m, nil
}

// Resolve converts declarations to live documents, generating IDs for
// declarations that omit one. Paths are required.
func (m *Manifest) Resolve() ([]nav.Document, error) {
	docs := make([]nav.Document, 0, len(m.Documents))
	for i, decl := range m.Documents {
		if decl.Path == "" {
			return nil, errors.Newf(errors.ManifestInvalid,
				"document declaration %d missing required 'path' field", i)
		}

		id := nav.DocumentID(decl.ID)
		if id.IsEmpty() {
			id = nav.NewDocumentID()
		}

		name := decl.Name
		if name == "" {
			name = filepath.Base(decl.Path)
		}

		docs = append(docs, nav.Document{ID: id, Name: name, Path: decl.Path})
	}
	return docs, nil
}

// Snapshot resolves the manifest and builds an immutable snapshot from it.
func (m *Manifest) Snapshot() (*snapshot.Snapshot, error) {
	docs, err := m.Resolve()
	if err != nil {
		return nil, err
	}
	return snapshot.New(docs), nil
}

// Save writes the manifest as TOML to the given path.
func (m *Manifest) Save(path string) error {
	data, err := toml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
