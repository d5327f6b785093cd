// Package zonefile loads zone data files into the core model. It decodes
// the external aliased shape — zones with zonename, zonekeys, zonearray,
// and zonedelete fields — from JSON or YAML and validates it before the
// merge engine ever sees it.
package zonefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ernestfoo/zonemerge/core"
)

// rawZone mirrors the external data shape before validation.
type rawZone struct {
	Name   string         `json:"zonename" yaml:"zonename"`
	Keys   map[string]any `json:"zonekeys" yaml:"zonekeys"`
	Arrays []rawArrayItem `json:"zonearray" yaml:"zonearray"`
	Delete bool           `json:"zonedelete" yaml:"zonedelete"`
}

type rawArrayItem struct {
	Item map[string]any `json:"zonearrayitem" yaml:"zonearrayitem"`
}

type rawCollection struct {
	Zones []rawZone `json:"zones" yaml:"zones"`
}

// ReadFile loads and validates a zone data file. The format is chosen by
// extension: .json, .yaml, or .yml.
func ReadFile(path string) (*core.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw rawCollection
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		raw, err = decodeJSON(data)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported zone file type %q (want .json, .yaml, or .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	c, err := build(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid zone data in %s: %w", filepath.Base(path), err)
	}
	return c, nil
}

// ParseJSON decodes and validates zone data from raw JSON bytes.
func ParseJSON(data []byte) (*core.Collection, error) {
	raw, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	return build(raw)
}

func decodeJSON(data []byte) (rawCollection, error) {
	var raw rawCollection
	dec := json.NewDecoder(bytes.NewReader(data))
	// Preserve numeric literals so integer values survive verbatim.
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return rawCollection{}, err
	}
	return raw, nil
}

// build shapes raw input into the validated core model: scalar values are
// normalized to strings, and name uniqueness is enforced by NewCollection.
func build(raw rawCollection) (*core.Collection, error) {
	zones := make([]core.Zone, 0, len(raw.Zones))
	for _, rz := range raw.Zones {
		z := core.Zone{Name: rz.Name, Delete: rz.Delete}

		if len(rz.Keys) > 0 {
			z.Keys = make(map[string]string, len(rz.Keys))
			for k, v := range rz.Keys {
				s, err := scalarString(v)
				if err != nil {
					return nil, fmt.Errorf("zone %q key %q: %w", rz.Name, k, err)
				}
				z.Keys[k] = s
			}
		}

		for _, ra := range rz.Arrays {
			row := make(core.RowItem, len(ra.Item))
			for k, v := range ra.Item {
				s, err := scalarString(v)
				if err != nil {
					return nil, fmt.Errorf("zone %q row key %q: %w", rz.Name, k, err)
				}
				row[k] = s
			}
			z.Rows = append(z.Rows, row)
		}

		zones = append(zones, z)
	}
	return core.NewCollection(zones)
}

// scalarString normalizes a substitution value. Only strings and integers
// are valid scalars; anything else is a schema error.
func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		if _, err := x.Int64(); err != nil {
			return "", fmt.Errorf("value %v is not a string or integer", x)
		}
		return x.String(), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	default:
		return "", fmt.Errorf("value %v (%T) is not a string or integer", v, v)
	}
}
