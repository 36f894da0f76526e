package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BoundingBox 緯度経度の外接矩形（度単位）
type BoundingBox struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Contains 点が矩形内（境界を含む）にあるかを判定する
func (b BoundingBox) Contains(p LatLng) bool {
	return p.Lat >= b.South && p.Lat <= b.North &&
		p.Lng >= b.West && p.Lng <= b.East
}

// Center 矩形の中心点を返す
func (b BoundingBox) Center() LatLng {
	return LatLng{
		Lat: (b.South + b.North) / 2,
		Lng: (b.West + b.East) / 2,
	}
}

// Cell グリッドオーバーレイを構成する1セル。
// エンコード・グリッド生成のたびに新しく生成される値オブジェクトで、
// 永続的なIDやライフサイクルは持たない
type Cell struct {
	Code   string      `json:"code"`
	Bounds BoundingBox `json:"bounds"`
	Center LatLng      `json:"center"`
}
