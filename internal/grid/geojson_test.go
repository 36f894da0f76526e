package grid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulmach/orb"

	"salone-grid/internal/domain/model"
)

func TestToGeoJSON(t *testing.T) {
	t.Run("空のセル列からは空のfeatures配列になる", func(t *testing.T) {
		fc := ToGeoJSON(nil)
		require.NotNil(t, fc)
		assert.Empty(t, fc.Features)

		data, err := json.Marshal(fc)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"features":[]`, "featuresはnullではなく空配列")
	})

	t.Run("各セルが閉じたPolygonフィーチャになる", func(t *testing.T) {
		cells := Generate(freetownViewport, 15, Options{})
		require.NotEmpty(t, cells)

		fc := ToGeoJSON(cells)
		require.Len(t, fc.Features, len(cells))

		for i, feature := range fc.Features {
			polygon, ok := feature.Geometry.(orb.Polygon)
			require.True(t, ok, "ジオメトリはPolygon")
			require.Len(t, polygon, 1, "外周リングのみ")

			ring := polygon[0]
			require.Len(t, ring, 5, "5点で閉じたリング")
			assert.Equal(t, ring[0], ring[4], "始点と終点が一致する")

			b := cells[i].Bounds
			assert.Equal(t, orb.Point{b.West, b.South}, ring[0])
			assert.Equal(t, orb.Point{b.East, b.South}, ring[1])
			assert.Equal(t, orb.Point{b.East, b.North}, ring[2])
			assert.Equal(t, orb.Point{b.West, b.North}, ring[3])
		}
	})

	t.Run("プロパティにcodeとshortCodeが入る", func(t *testing.T) {
		cell := model.Cell{
			Code: "6CW8FQ89+78",
			Bounds: model.BoundingBox{
				South: 8.465, West: -13.2325, North: 8.4675, East: -13.23,
			},
			Center: model.LatLng{Lat: 8.46625, Lng: -13.23125},
		}

		fc := ToGeoJSON([]model.Cell{cell})
		require.Len(t, fc.Features, 1)

		props := fc.Features[0].Properties
		assert.Equal(t, "6CW8FQ89+78", props["code"])
		assert.Equal(t, "FQ8978", props["shortCode"], "エリアコードと区切り文字を除いた表記")
	})
}
