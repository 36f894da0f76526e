package grid

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"salone-grid/internal/domain/model"
	"salone-grid/internal/pluscode"
)

// ToGeoJSON セル列を地図描画用のGeoJSON FeatureCollectionへ変換する。
// 各セルは始点で閉じた5点リングを持つPolygonフィーチャになる。
// 空のセル列からは features が空配列のFeatureCollectionを返す
func ToGeoJSON(cells []model.Cell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, cell := range cells {
		b := cell.Bounds
		ring := orb.Ring{
			{b.West, b.South},
			{b.East, b.South},
			{b.East, b.North},
			{b.West, b.North},
			{b.West, b.South},
		}

		feature := geojson.NewFeature(orb.Polygon{ring})
		feature.Properties["code"] = cell.Code
		// 地図上のラベル向けにエリアコードと区切り文字を除いた短縮表記を添える
		feature.Properties["shortCode"] = pluscode.ShortLabel(cell.Code)
		fc.Append(feature)
	}

	return fc
}
