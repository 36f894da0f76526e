package zone

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"salone-grid/internal/domain/model"
)

// Zone 郵便ゾーン1件。コードは生成順に連番で割り当てられる
type Zone struct {
	ID     string            `json:"id"`
	Code   string            `json:"code"`
	Bounds model.BoundingBox `json:"bounds"`
	Center model.LatLng      `json:"center"`
}

// SurveyCell ゾーン割り当て作業用の行列グリッドセル
type SurveyCell struct {
	ID       int               `json:"id"`
	Row      int               `json:"row"`
	Col      int               `json:"col"`
	GridCode string            `json:"grid_code"`
	Bounds   model.BoundingBox `json:"bounds"`
	Center   model.LatLng      `json:"center"`
}

// GenerateLandZones 陸地境界内の郵便ゾーンを生成する。
// 境界ポリゴンの外接矩形をセルサイズで走査し、セル中心が陸地上にある
// セルだけを残す（海上セルの混入を避けるため中心点のみで判定する）
func GenerateLandZones(boundary orb.Ring, cellSize float64, startCode int) []Zone {
	bound := boundary.Bound()
	polygon := orb.Polygon{boundary}

	zones := make([]Zone, 0)
	code := startCode

	for lat := bound.Min.Lat(); lat < bound.Max.Lat(); lat += cellSize {
		for lng := bound.Min.Lon(); lng < bound.Max.Lon(); lng += cellSize {
			center := orb.Point{lng + cellSize/2, lat + cellSize/2}
			if !planar.PolygonContains(polygon, center) {
				continue
			}

			zones = append(zones, Zone{
				ID:   uuid.New().String(),
				Code: strconv.Itoa(code),
				Bounds: model.BoundingBox{
					South: lat,
					West:  lng,
					North: lat + cellSize,
					East:  lng + cellSize,
				},
				Center: model.LatLng{Lat: center.Lat(), Lng: center.Lon()},
			})
			code++
		}
	}

	return zones
}

// GenerateSurveyGrid 外接矩形全体を覆う行列グリッドを生成する。
// QGIS等でゾーン境界を検討する際の下敷きに使う
func GenerateSurveyGrid(bounds model.BoundingBox, cellSize float64) []SurveyCell {
	cells := make([]SurveyCell, 0)
	id := 0

	row := 0
	for lat := bounds.South; lat < bounds.North; lat += cellSize {
		col := 0
		for lng := bounds.West; lng < bounds.East; lng += cellSize {
			cells = append(cells, SurveyCell{
				ID:       id,
				Row:      row,
				Col:      col,
				GridCode: fmt.Sprintf("%03d-%03d", row, col),
				Bounds: model.BoundingBox{
					South: lat,
					West:  lng,
					North: lat + cellSize,
					East:  lng + cellSize,
				},
				Center: model.LatLng{Lat: lat + cellSize/2, Lng: lng + cellSize/2},
			})
			id++
			col++
		}
		row++
	}

	return cells
}
