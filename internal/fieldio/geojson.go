// Package fieldio moves field boundaries and optimization results in and out
// of GeoJSON. It is collaborator glue around the core: geometries are
// expected to already be in a projected (linear-unit) coordinate frame, and
// no reprojection is attempted here.
package fieldio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/rplaado/fieldpath/internal/model"
)

// nameProperties are probed in order for a field display name, matching the
// attribute schemas common in boundary exports.
var nameProperties = []string{"Name", "Field", "FIELD_NAME", "ID", "Label"}

// LoadFields reads a GeoJSON FeatureCollection from path and returns one
// Field per polygonal feature. Non-area features are skipped.
func LoadFields(path string) ([]model.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return FieldsFromCollection(fc, filepath.Base(path)), nil
}

// FieldsFromCollection converts the collection's Polygon and MultiPolygon
// features into fields, resolving a display name for each from its
// properties.
func FieldsFromCollection(fc *geojson.FeatureCollection, source string) []model.Field {
	var fields []model.Field
	for _, feat := range fc.Features {
		rings := flattenRings(feat.Geometry)
		if len(rings) == 0 {
			continue
		}
		index := len(fields)
		field := model.NewField(displayName(feat.Properties, source, index), rings)
		field.Source = source
		field.Index = index
		fields = append(fields, field)
	}
	return fields
}

// flattenRings collapses Polygon and MultiPolygon geometries into a single
// even-odd ring set, the interior representation used by the kernel. Parts
// and holes are both plain rings under the even-odd rule.
func flattenRings(g orb.Geometry) orb.Polygon {
	switch geo := g.(type) {
	case orb.Polygon:
		return geo
	case orb.MultiPolygon:
		var rings orb.Polygon
		for _, poly := range geo {
			rings = append(rings, poly...)
		}
		return rings
	default:
		return nil
	}
}

func displayName(props geojson.Properties, source string, index int) string {
	for _, key := range nameProperties {
		if v, ok := props[key]; ok && v != nil {
			if s := fmt.Sprintf("%v", v); s != "" {
				return s
			}
		}
	}
	return fmt.Sprintf("%s - Field %d", source, index+1)
}
