package pluscode

// zoomPrecision ズームレベルの下限と符号化文字数の対応
type zoomPrecision struct {
	minZoom   float64
	precision int
}

// zoomPrecisionTable ズーム→精度の変換テーブル。下限の大きい順に評価する
var zoomPrecisionTable = []zoomPrecision{
	{minZoom: 18, precision: 11},
	{minZoom: 16, precision: 10},
	{minZoom: 14, precision: 8},
	{minZoom: 12, precision: 6},
}

// PrecisionForZoom 地図のズームレベルから符号化精度を求める。
// グリッドを表示しないズーム帯（12未満）では 0 を返す
func PrecisionForZoom(zoom float64) int {
	for _, bp := range zoomPrecisionTable {
		if zoom >= bp.minZoom {
			return bp.precision
		}
	}
	return 0
}

// precisionStep 精度の上限とグリッド間隔（度）の対応
type precisionStep struct {
	maxPrecision int
	step         float64
}

// precisionStepTable 精度→グリッド間隔の変換テーブル。
// 値はOpen Location Codeの赤道上セルサイズに由来する
var precisionStepTable = []precisionStep{
	{maxPrecision: 2, step: 20},
	{maxPrecision: 4, step: 1},
	{maxPrecision: 6, step: 0.05},
	{maxPrecision: 8, step: 0.0025},
}

// finestStep テーブルの範囲を超える精度でのグリッド間隔
const finestStep = 0.000125

// StepForPrecision 符号化精度からグリッド間隔（度）を求める
func StepForPrecision(precision int) float64 {
	for _, bp := range precisionStepTable {
		if precision <= bp.maxPrecision {
			return bp.step
		}
	}
	return finestStep
}
