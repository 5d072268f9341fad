package breeds

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	hjson "github.com/hjson/hjson-go"

	"github.com/OHANA-WEB/Productive-and-Economic-Simulators-for-Livestock-Farming/internal/domain/models"
)

type catalogFile struct {
	Breeds []models.BreedProfile `json:"breeds"`
}

var nonKeyChars = regexp.MustCompile(`[^a-z0-9]+`)

// LoadCatalog reads a hjson breed catalog from disk.
func LoadCatalog(path string) ([]models.BreedProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read breed catalog %s: %w", path, err)
	}

	profiles, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse breed catalog %s: %w", path, err)
	}
	return profiles, nil
}

// ParseCatalog decodes hjson of the form {breeds: [...]}. Breeds without a key get
// one derived from their name; duplicate keys are rejected.
func ParseCatalog(data []byte) ([]models.BreedProfile, error) {
	var raw map[string]interface{}
	if err := hjson.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	// hjson decodes into generic values; round-trip through JSON to fill the typed profiles.
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var file catalogFile
	if err := json.Unmarshal(b, &file); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(file.Breeds))
	for i := range file.Breeds {
		p := &file.Breeds[i]
		if p.Key == "" {
			p.Key = BreedKey(p.Name)
		}
		if p.Key == "" {
			return nil, fmt.Errorf("breed #%d has neither breed_key nor breed_name", i+1)
		}
		if _, dup := seen[p.Key]; dup {
			return nil, fmt.Errorf("duplicate breed_key %q", p.Key)
		}
		seen[p.Key] = struct{}{}
	}

	return file.Breeds, nil
}

// BreedKey derives a lowercase identifier such as "murciano_granadina" from a display name.
func BreedKey(name string) string {
	key := nonKeyChars.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(key, "_")
}
