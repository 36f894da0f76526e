package grid

import (
	"math"

	"salone-grid/internal/domain/model"
	"salone-grid/internal/pluscode"
)

// グリッド生成のデフォルト設定値
const (
	DefaultMinZoom  = 12
	DefaultMaxCells = 500
)

// Options グリッド生成の設定。ゼロ値のフィールドにはデフォルト値が適用される
type Options struct {
	// MinZoom このズーム未満ではグリッドを生成しない（ゼロ値で12）
	MinZoom float64

	// MaxCells 返却するセル数の上限（ゼロ値で500）。
	// 上限に達した時点で列挙を打ち切る
	MaxCells int
}

// withDefaults ゼロ値のフィールドをデフォルト値で埋める
func (o Options) withDefaults() Options {
	if o.MinZoom == 0 {
		o.MinZoom = DefaultMinZoom
	}
	if o.MaxCells == 0 {
		o.MaxCells = DefaultMaxCells
	}
	return o
}

// Generate ビューポートと交差するグリッドセルを行優先
//（緯度が外側・経度が内側のループ）で列挙する。
// セル数がMaxCellsに達した時点で列挙を打ち切り、それまでの結果をそのまま返す。
// パン・ズーム操作中の部分結果を許容するための仕様であり、打ち切りはエラーではない
func Generate(viewport model.BoundingBox, zoom float64, opts Options) []model.Cell {
	opts = opts.withDefaults()

	if zoom < opts.MinZoom {
		return nil
	}

	precision := pluscode.PrecisionForZoom(zoom)
	if precision == 0 {
		return nil
	}
	step := pluscode.StepForPrecision(precision)

	// ビューポートをグリッド格子へ外側にスナップする
	startLat := math.Floor(viewport.South/step) * step
	startLng := math.Floor(viewport.West/step) * step
	endLat := math.Ceil(viewport.North/step) * step
	endLng := math.Ceil(viewport.East/step) * step

	cells := make([]model.Cell, 0)
	for lat := startLat; lat < endLat; lat += step {
		for lng := startLng; lng < endLng; lng += step {
			if len(cells) >= opts.MaxCells {
				return cells
			}

			center := model.LatLng{Lat: lat + step/2, Lng: lng + step/2}
			cells = append(cells, model.Cell{
				Code: pluscode.Encode(center.Lat, center.Lng, precision),
				Bounds: model.BoundingBox{
					South: lat,
					West:  lng,
					North: lat + step,
					East:  lng + step,
				},
				Center: center,
			})
		}
	}

	return cells
}
