package config

// Haulfile represents the structure of the haul.yaml manifest file.
type Haulfile struct {
	Version      int                      `yaml:"version"`
	Repositories map[string]RepositoryDTO `yaml:"repositories"`
	Modules      []ModuleDTO              `yaml:"modules"`
}

// RepositoryDTO represents a repository declaration in the manifest.
type RepositoryDTO struct {
	Kind     string `yaml:"kind"`
	Endpoint string `yaml:"endpoint"`
	Bucket   string `yaml:"bucket"`
	Region   string `yaml:"region"`
	Secure   bool   `yaml:"secure"`
}

// ModuleDTO represents a resolved component in the manifest.
type ModuleDTO struct {
	Component string       `yaml:"component"`
	Variants  []VariantDTO `yaml:"variants"`
}

// VariantDTO represents one published variant of a component.
type VariantDTO struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes"`
	Artifacts  []ArtifactDTO     `yaml:"artifacts"`
}

// ArtifactDTO represents a single artifact declaration of a variant.
type ArtifactDTO struct {
	Name       string   `yaml:"name"`
	Classifier string   `yaml:"classifier"`
	Extension  string   `yaml:"extension"`
	Repository string   `yaml:"repository"`
	Path       string   `yaml:"path"`
	SHA256     string   `yaml:"sha256"`
	BuiltBy    []string `yaml:"builtBy"`
}
