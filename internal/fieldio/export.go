package fieldio

import (
	"encoding/json"
	"os"

	"github.com/paulmach/orb/geojson"

	"github.com/rplaado/fieldpath/internal/model"
)

// ResultCollection serializes a batch outcome for downstream rendering and
// reporting collaborators: one boundary feature per field, plus one
// swath-lines feature per successful scan. Failed fields keep their boundary
// with the error recorded in its properties.
func ResultCollection(batch model.BatchResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range batch.Items {
		item := &batch.Items[i]

		boundary := geojson.NewFeature(item.Field.Boundary)
		boundary.Properties = geojson.Properties{
			"kind":     "boundary",
			"field_id": item.Field.ID,
			"name":     item.Field.Name,
			"source":   item.Field.Source,
		}
		if item.Err != nil {
			boundary.Properties["error"] = item.Err.Error()
			fc.Append(boundary)
			continue
		}

		r := item.Result
		boundary.Properties["best_angle"] = r.BestAngle
		boundary.Properties["heading_forward"] = r.HeadingForward
		boundary.Properties["heading_reverse"] = r.HeadingReverse
		boundary.Properties["pass_count"] = r.PassCount
		boundary.Properties["global_best"] = i == batch.BestIndex
		fc.Append(boundary)

		swaths := geojson.NewFeature(r.SwathLines)
		swaths.Properties = geojson.Properties{
			"kind":     "swaths",
			"field_id": item.Field.ID,
			"name":     item.Field.Name,
		}
		fc.Append(swaths)
	}
	return fc
}

// WriteResults writes the batch's result collection to path as GeoJSON.
func WriteResults(path string, batch model.BatchResult) error {
	data, err := json.MarshalIndent(ResultCollection(batch), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
