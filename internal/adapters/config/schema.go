package config

// File represents the structure of the texcache.yaml configuration file.
// Omitted fields keep their defaults.
type File struct {
	CacheDir   string         `yaml:"cache_dir"`
	Compiler   *ToolDTO       `yaml:"compiler"`
	Rasterizer *RasterizerDTO `yaml:"rasterizer"`
	Document   *DocumentDTO   `yaml:"document"`
}

// ToolDTO represents an external tool definition.
type ToolDTO struct {
	Command []string `yaml:"command"`
}

// RasterizerDTO represents the rasterizer definition.
type RasterizerDTO struct {
	Command []string `yaml:"command"`
	Density *int     `yaml:"density"`
}

// DocumentDTO represents the LaTeX preamble settings.
type DocumentDTO struct {
	Class    string   `yaml:"class"`
	FontSize *string  `yaml:"font_size"`
	Packages []string `yaml:"packages"`
}
