// Package geohash 空間インデックス用のジオハッシュ符号化を提供する。
// 精度の目安: 5文字 ≈ 5km四方（地区）、7文字 ≈ 150m四方（ゾーン）、9文字 ≈ 5m四方（住所）
package geohash

import (
	"math"
	"strings"

	"salone-grid/internal/domain/model"
)

// base32 ジオハッシュで使用するBase32アルファベット
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// Encode 緯度経度を指定文字数のジオハッシュへ符号化する
func Encode(lat, lng float64, precision int) string {
	latRange := [2]float64{-90, 90}
	lngRange := [2]float64{-180, 180}

	var hash strings.Builder
	bits := 0
	bitCount := 0
	isLng := true

	for hash.Len() < precision {
		if isLng {
			mid := (lngRange[0] + lngRange[1]) / 2
			if lng >= mid {
				bits = bits<<1 | 1
				lngRange[0] = mid
			} else {
				bits <<= 1
				lngRange[1] = mid
			}
		} else {
			mid := (latRange[0] + latRange[1]) / 2
			if lat >= mid {
				bits = bits<<1 | 1
				latRange[0] = mid
			} else {
				bits <<= 1
				latRange[1] = mid
			}
		}

		isLng = !isLng
		bitCount++

		if bitCount == 5 {
			hash.WriteByte(base32[bits])
			bits = 0
			bitCount = 0
		}
	}

	return hash.String()
}

// Decode ジオハッシュを外接矩形へ復号する。アルファベット外の文字は読み飛ばす
func Decode(hash string) model.BoundingBox {
	latRange := [2]float64{-90, 90}
	lngRange := [2]float64{-180, 180}
	isLng := true

	for _, c := range strings.ToLower(hash) {
		idx := strings.IndexRune(base32, c)
		if idx < 0 {
			continue
		}

		for i := 4; i >= 0; i-- {
			bit := idx >> i & 1
			if isLng {
				mid := (lngRange[0] + lngRange[1]) / 2
				if bit == 1 {
					lngRange[0] = mid
				} else {
					lngRange[1] = mid
				}
			} else {
				mid := (latRange[0] + latRange[1]) / 2
				if bit == 1 {
					latRange[0] = mid
				} else {
					latRange[1] = mid
				}
			}
			isLng = !isLng
		}
	}

	return model.BoundingBox{
		South: latRange[0],
		West:  lngRange[0],
		North: latRange[1],
		East:  lngRange[1],
	}
}

// DecodeCenter ジオハッシュをセル中心点へ復号する
func DecodeCenter(hash string) model.LatLng {
	return Decode(hash).Center()
}

// Neighbors 8方向の隣接ジオハッシュを返す
func Neighbors(hash string) map[string]string {
	center := DecodeCenter(hash)
	precision := len(hash)

	// 精度に応じたおおよそのセル間隔
	latStep := 180 / math.Pow(2, float64(precision)*2.5)
	lngStep := 360 / math.Pow(2, float64(precision)*2.5)

	return map[string]string{
		"n":  Encode(center.Lat+latStep, center.Lng, precision),
		"ne": Encode(center.Lat+latStep, center.Lng+lngStep, precision),
		"e":  Encode(center.Lat, center.Lng+lngStep, precision),
		"se": Encode(center.Lat-latStep, center.Lng+lngStep, precision),
		"s":  Encode(center.Lat-latStep, center.Lng, precision),
		"sw": Encode(center.Lat-latStep, center.Lng-lngStep, precision),
		"w":  Encode(center.Lat, center.Lng-lngStep, precision),
		"nw": Encode(center.Lat+latStep, center.Lng-lngStep, precision),
	}
}

// Expand 自身と隣接8方向を合わせたジオハッシュの集合を返す（近傍検索用）
func Expand(hash string) []string {
	seen := map[string]bool{hash: true}
	result := []string{hash}

	for _, neighbor := range Neighbors(hash) {
		if !seen[neighbor] {
			seen[neighbor] = true
			result = append(result, neighbor)
		}
	}

	return result
}
