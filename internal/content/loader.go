package content

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/everythingtalent/etsite/internal/view/icons"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is returned when a content document fails validation.
var ErrInvalid = errors.New("invalid content")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// glyph restricts icon names to the registered SVG glyphs.
	_ = v.RegisterValidation("glyph", func(fl validator.FieldLevel) bool {
		return icons.Has(fl.Field().String())
	})
	return v
}

// Default returns the content shipped with the binary.
func Default() (*Page, error) {
	return Parse(defaultsYAML)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Page, error) {
	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := Validate(&page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Validate checks the fixed shape of a content document.
func Validate(page *Page) error {
	if err := validate.Struct(page); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Load reads the content document at path from fs. An empty path yields the
// embedded defaults.
func Load(fs afero.Fs, path string) (*Page, error) {
	if path == "" {
		return Default()
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file %q: %w", path, err)
	}
	return Parse(data)
}
