package columns

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role is a semantic column a source must provide.
type Role string

const (
	RoleArticle   Role = "article"
	RoleModelName Role = "model_name"
	RolePrice     Role = "price"
	RoleQuantity  Role = "quantity"
)

// Required roles per source.
var (
	PricingRoles = []Role{RoleArticle, RoleModelName, RolePrice}
	StockRoles   = []Role{RoleArticle, RoleQuantity}
)

//go:embed aliases.yaml
var defaultAliases []byte

// Aliases holds the ordered alias list of every role.
// Values are lower-cased on load; treat an Aliases as read-only once built.
type Aliases map[Role][]string

// DefaultAliases returns the built-in alias table.
func DefaultAliases() Aliases {
	a, err := ParseAliases(defaultAliases)
	if err != nil {
		panic(fmt.Sprintf("columns: embedded aliases are invalid: %v", err))
	}
	return a
}

// LoadAliases reads an alias file. An empty path yields the built-in table.
func LoadAliases(path string) (Aliases, error) {
	if path == "" {
		return DefaultAliases(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read aliases file %s: %w", path, err)
	}
	a, err := ParseAliases(data)
	if err != nil {
		return nil, fmt.Errorf("invalid aliases file %s: %w", path, err)
	}
	return a, nil
}

// ParseAliases decodes a YAML alias table. Every known role needs at least one alias.
func ParseAliases(data []byte) (Aliases, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	out := make(Aliases, len(raw))
	for role, list := range raw {
		var cleaned []string
		for _, alias := range list {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias != "" {
				cleaned = append(cleaned, alias)
			}
		}
		out[Role(role)] = cleaned
	}

	for _, role := range []Role{RoleArticle, RoleModelName, RolePrice, RoleQuantity} {
		if len(out[role]) == 0 {
			return nil, fmt.Errorf("no aliases for role %s", role)
		}
	}
	return out, nil
}
