package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"referral-intake-server/models"
)

// LoadSheetLayout resolves SHEET_LAYOUT: a built-in layout name, or the path
// of a YAML file listing the columns.
func LoadSheetLayout(nameOrPath string) (models.SheetLayout, error) {
	if layout, ok := models.BuiltinLayouts[nameOrPath]; ok {
		return layout, nil
	}

	data, err := os.ReadFile(nameOrPath)
	if err != nil {
		return models.SheetLayout{}, fmt.Errorf("unknown sheet layout %q: %w", nameOrPath, err)
	}
	return ParseSheetLayout(data, strings.TrimSuffix(filepath.Base(nameOrPath), filepath.Ext(nameOrPath)))
}

// ParseSheetLayout decodes a YAML layout. defaultName is used when the file
// does not set one.
func ParseSheetLayout(data []byte, defaultName string) (models.SheetLayout, error) {
	var layout models.SheetLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return models.SheetLayout{}, fmt.Errorf("decoding sheet layout: %w", err)
	}
	if layout.Name == "" {
		layout.Name = defaultName
	}
	if err := layout.Validate(); err != nil {
		return models.SheetLayout{}, err
	}
	return layout, nil
}
