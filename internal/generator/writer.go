package generator

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/apiscan/internal/errors"
)

// WriteYAML serializes a document to a YAML file with two-space indentation
func WriteYAML(path string, document interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.WrapFileSystemError("create", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)

	if err := encoder.Encode(document); err != nil {
		encoder.Close()
		return errors.WrapGenerateError(path, err)
	}
	if err := encoder.Close(); err != nil {
		return errors.WrapGenerateError(path, err)
	}
	return nil
}
