package file

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Tokens  tokensSchema `toml:"tokens"`
}

type tokensSchema struct {
	Access  string `toml:"access"`
	Refresh string `toml:"refresh"`
}

func (f *fileSchema) applyDefaults() {
	if f.Version == 0 {
		f.Version = currentSchemaVersion
	}
}

func (f fileSchema) validateVersion() error {
	if f.Version != 0 && f.Version != currentSchemaVersion {
		return fmt.Errorf("unsupported credentials schema version %d", f.Version)
	}
	return nil
}
