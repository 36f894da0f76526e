package zone

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"salone-grid/internal/domain/model"
)

// ZonesToGeoJSON 郵便ゾーン一覧をGeoJSON FeatureCollectionへ変換する
func ZonesToGeoJSON(zones []Zone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, z := range zones {
		feature := geojson.NewFeature(boundsPolygon(z.Bounds))
		feature.Properties["id"] = z.ID
		feature.Properties["code"] = z.Code
		feature.Properties["center_lat"] = z.Center.Lat
		feature.Properties["center_lng"] = z.Center.Lng
		fc.Append(feature)
	}

	return fc
}

// SurveyGridToGeoJSON 作業用グリッドをGeoJSON FeatureCollectionへ変換する
func SurveyGridToGeoJSON(cells []SurveyCell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, cell := range cells {
		feature := geojson.NewFeature(boundsPolygon(cell.Bounds))
		feature.Properties["id"] = cell.ID
		feature.Properties["row"] = cell.Row
		feature.Properties["col"] = cell.Col
		feature.Properties["grid_code"] = cell.GridCode
		feature.Properties["center_lat"] = cell.Center.Lat
		feature.Properties["center_lng"] = cell.Center.Lng
		fc.Append(feature)
	}

	return fc
}

// boundsPolygon 外接矩形から始点で閉じた5点リングのPolygonを作る
func boundsPolygon(b model.BoundingBox) orb.Polygon {
	return orb.Polygon{
		orb.Ring{
			{b.West, b.South},
			{b.East, b.South},
			{b.East, b.North},
			{b.West, b.North},
			{b.West, b.South},
		},
	}
}
