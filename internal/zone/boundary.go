package zone

import (
	"github.com/paulmach/orb"

	"salone-grid/internal/domain/model"
)

// FreetownLandBoundary フリータウン都市部の陸地境界ポリゴン。
// 北は海岸線のすぐ内側、南は丘陵地帯を通り、KissyからAberdeenまでの
// 市街地をカバーする。座標は[経度, 緯度]
var FreetownLandBoundary = orb.Ring{
	// 北（海沿いの市街地）
	{-13.17, 8.48},   // Kissy waterfront
	{-13.19, 8.485},  // Cline Town
	{-13.21, 8.49},   // Fourah Bay
	{-13.23, 8.49},   // Central downtown
	{-13.25, 8.485},  // Tower Hill
	{-13.27, 8.48},   // Kingtom

	// 西（Lumley / Aberdeen海岸部）
	{-13.28, 8.46},  // Murray Town
	{-13.285, 8.44}, // Lumley
	{-13.28, 8.42},  // Aberdeen

	// 南（丘陵地帯）
	{-13.27, 8.41}, // Juba
	{-13.25, 8.42}, // Hill Station
	{-13.23, 8.41}, // Regent
	{-13.21, 8.42}, // Leicester / Gloucester
	{-13.19, 8.43}, // Calaba Town
	{-13.17, 8.44}, // Grassfield

	// 東（始点へ戻る）
	{-13.15, 8.45}, // Wellington
	{-13.14, 8.46}, // Allen Town
	{-13.15, 8.47}, // Kissy
	{-13.17, 8.48},
}

// WesternAreaBounds 西部地域（Waterlooを含む都市部＋郊外）の外接矩形
var WesternAreaBounds = model.BoundingBox{
	South: 8.30,
	West:  -13.35,
	North: 8.55,
	East:  -13.05,
}

// ゾーン生成のデフォルト値
const (
	// DefaultZoneCellSize 郵便ゾーンのセルサイズ（度）。この緯度で約880m四方
	DefaultZoneCellSize = 0.008

	// DefaultSurveyCellSize 作業用グリッドのセルサイズ（度）。約500m四方
	DefaultSurveyCellSize = 0.005

	// DefaultStartCode 郵便ゾーンコードの開始番号
	DefaultStartCode = 1000
)
