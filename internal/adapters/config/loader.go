// Package config provides the manifest loader for haul.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/haul/internal/core/domain"
	"go.trai.ch/haul/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedManifestVersion is the only manifest format version this build understands.
const supportedManifestVersion = 1

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	attrs  *attributeInterner
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) (*Loader, error) {
	attrs, err := newAttributeInterner()
	if err != nil {
		return nil, err
	}
	return &Loader{Logger: logger, attrs: attrs}, nil
}

// Load discovers the manifest starting at cwd and returns the resolved
// dependency snapshot.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	manifestPath, err := l.findManifest(cwd)
	if err != nil {
		return nil, err
	}

	var haulfile Haulfile
	if err := readAndUnmarshalYAML(manifestPath, &haulfile); err != nil {
		return nil, err
	}

	return l.buildManifest(&haulfile)
}

// findManifest walks up from cwd until it finds a haul.yaml.
func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir := cwd

	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

func (l *Loader) buildManifest(haulfile *Haulfile) (*domain.Manifest, error) {
	if haulfile.Version != supportedManifestVersion {
		err := zerr.With(domain.ErrUnsupportedManifestVersion, "version", haulfile.Version)
		return nil, zerr.With(err, "supported_version", supportedManifestVersion)
	}

	repositories := make(map[string]domain.Repository, len(haulfile.Repositories))
	for name, dto := range haulfile.Repositories {
		repo, err := buildRepository(name, dto)
		if err != nil {
			return nil, err
		}
		repositories[name] = repo
	}

	referenced := make(map[string]bool, len(repositories))
	seen := make(map[string]bool, len(haulfile.Modules))
	modules := make([]domain.Module, 0, len(haulfile.Modules))

	for i := range haulfile.Modules {
		module, err := l.buildModule(&haulfile.Modules[i], repositories, referenced)
		if err != nil {
			return nil, err
		}

		coordinate := module.Component.String()
		if seen[coordinate] {
			return nil, zerr.With(domain.ErrDuplicateComponent, "component", coordinate)
		}
		seen[coordinate] = true

		modules = append(modules, module)
	}

	l.warnUnusedRepositories(repositories, referenced)

	return &domain.Manifest{
		Version:      haulfile.Version,
		Repositories: repositories,
		Modules:      modules,
	}, nil
}

// warnUnusedRepositories logs repositories no artifact references. Sorted
// for deterministic output.
func (l *Loader) warnUnusedRepositories(repositories map[string]domain.Repository, referenced map[string]bool) {
	names := make([]string, 0, len(repositories))
	for name := range repositories {
		if !referenced[name] {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		l.Logger.Info(fmt.Sprintf("repository %q is declared but no artifact references it", name))
	}
}

func buildRepository(name string, dto RepositoryDTO) (domain.Repository, error) {
	kind := domain.RepositoryKind(dto.Kind)

	switch kind {
	case domain.RepositoryKindHTTP:
		if dto.Endpoint == "" {
			return domain.Repository{}, incompleteRepository(name, "endpoint")
		}
	case domain.RepositoryKindS3:
		if dto.Endpoint == "" {
			return domain.Repository{}, incompleteRepository(name, "endpoint")
		}
		if dto.Bucket == "" {
			return domain.Repository{}, incompleteRepository(name, "bucket")
		}
	default:
		err := zerr.With(domain.ErrUnknownRepositoryKind, "repository", name)
		return domain.Repository{}, zerr.With(err, "kind", dto.Kind)
	}

	return domain.Repository{
		Name:     domain.NewInternedString(name),
		Kind:     kind,
		Endpoint: domain.NewInternedString(dto.Endpoint),
		Bucket:   domain.NewInternedString(dto.Bucket),
		Region:   domain.NewInternedString(dto.Region),
		Secure:   dto.Secure,
	}, nil
}

func (l *Loader) buildModule(
	dto *ModuleDTO,
	repositories map[string]domain.Repository,
	referenced map[string]bool,
) (domain.Module, error) {
	component, err := parseComponent(dto.Component)
	if err != nil {
		return domain.Module{}, err
	}

	variantNames := make(map[string]bool, len(dto.Variants))
	variants := make([]domain.Variant, 0, len(dto.Variants))

	for i := range dto.Variants {
		variant, err := l.buildVariant(&dto.Variants[i], component, repositories, referenced)
		if err != nil {
			return domain.Module{}, err
		}

		name := variant.Name.String()
		if variantNames[name] {
			err := zerr.With(domain.ErrDuplicateVariant, "component", dto.Component)
			return domain.Module{}, zerr.With(err, "variant", name)
		}
		variantNames[name] = true

		variants = append(variants, variant)
	}

	return domain.Module{Component: component, Variants: variants}, nil
}

func (l *Loader) buildVariant(
	dto *VariantDTO,
	component domain.ComponentRef,
	repositories map[string]domain.Repository,
	referenced map[string]bool,
) (domain.Variant, error) {
	if dto.Name == "" {
		err := zerr.With(domain.ErrMissingVariantName, "component", component.String())
		return domain.Variant{}, err
	}

	artifacts := make([]domain.ArtifactSpec, 0, len(dto.Artifacts))
	for i := range dto.Artifacts {
		spec, err := l.buildArtifact(&dto.Artifacts[i], component, dto.Name, repositories)
		if err != nil {
			return domain.Variant{}, err
		}
		referenced[spec.Repository.String()] = true
		artifacts = append(artifacts, spec)
	}

	return domain.Variant{
		Name:       domain.NewInternedString(dto.Name),
		Attributes: l.attrs.Intern(dto.Attributes),
		Artifacts:  artifacts,
	}, nil
}

func (l *Loader) buildArtifact(
	dto *ArtifactDTO,
	component domain.ComponentRef,
	variantName string,
	repositories map[string]domain.Repository,
) (domain.ArtifactSpec, error) {
	if dto.Name == "" || dto.Extension == "" || dto.Path == "" {
		err := zerr.With(domain.ErrIncompleteArtifact, "component", component.String())
		return domain.ArtifactSpec{}, zerr.With(err, "variant", variantName)
	}

	if _, declared := repositories[dto.Repository]; !declared {
		err := zerr.With(domain.ErrUnknownRepository, "repository", dto.Repository)
		err = zerr.With(err, "component", component.String())
		return domain.ArtifactSpec{}, zerr.With(err, "artifact", dto.Name)
	}

	builtBy, err := parseTaskRefs(dto.BuiltBy)
	if err != nil {
		err = zerr.With(err, "component", component.String())
		return domain.ArtifactSpec{}, zerr.With(err, "artifact", dto.Name)
	}

	spec := domain.ArtifactSpec{
		Name:       domain.NewInternedString(dto.Name),
		Classifier: domain.NewInternedString(dto.Classifier),
		Extension:  domain.NewInternedString(dto.Extension),
		Repository: domain.NewInternedString(dto.Repository),
		Path:       domain.NewInternedString(dto.Path),
		SHA256:     domain.NewInternedString(dto.SHA256),
		BuiltBy:    builtBy,
	}

	if dto.SHA256 == "" {
		l.Logger.Info(fmt.Sprintf("no checksum for %s; verification disabled", spec.ID(component)))
	}

	return spec, nil
}

// parseComponent splits a "group:module:version" coordinate.
func parseComponent(coordinate string) (domain.ComponentRef, error) {
	parts := strings.Split(coordinate, ":")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return domain.ComponentRef{}, zerr.With(domain.ErrInvalidComponent, "component", coordinate)
	}
	return domain.NewComponentRef(parts[0], parts[1], parts[2]), nil
}

func parseTaskRefs(paths []string) ([]domain.TaskRef, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	refs := make([]domain.TaskRef, 0, len(paths))
	for _, path := range paths {
		ref, err := parseTaskRef(path)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// parseTaskRef splits a ":project:task" path. The leading colon and the
// project part are both optional.
func parseTaskRef(path string) (domain.TaskRef, error) {
	trimmed := strings.TrimPrefix(path, ":")
	parts := strings.Split(trimmed, ":")

	switch {
	case len(parts) == 1 && parts[0] != "":
		return domain.NewTaskRef("", parts[0]), nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return domain.NewTaskRef(parts[0], parts[1]), nil
	default:
		return domain.TaskRef{}, zerr.With(domain.ErrInvalidTaskPath, "task", path)
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](manifestPath string, target *T) error {
	// #nosec G304 -- manifestPath is validated by caller
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
	}

	return nil
}

func incompleteRepository(name, missingField string) error {
	err := zerr.With(domain.ErrIncompleteRepository, "repository", name)
	return zerr.With(err, "missing_field", missingField)
}
