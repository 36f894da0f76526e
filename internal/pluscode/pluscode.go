package pluscode

import (
	"math"
	"strings"

	"salone-grid/internal/domain/model"
)

// Encode 緯度経度を指定文字数のPlus Codeへ符号化する。
// 範囲外の座標はエラーにせず有効範囲へクランプする。
// precisionには区切り文字を含めた出力文字数を指定する
func Encode(lat, lng float64, precision int) string {
	lat = clamp(lat, -90, 90)
	lng = clamp(lng, -180, 180)

	// 非負の座標系へシフトする
	adjLat := lat + 90
	adjLng := lng + 180

	var code strings.Builder
	divisor := float64(base)

	for code.Len() < precision {
		latIdx := digit(adjLat, divisor)
		lngIdx := digit(adjLng, divisor)

		code.WriteByte(indexChar(latIdx))
		code.WriteByte(indexChar(lngIdx))

		adjLat -= float64(latIdx) * divisor
		adjLng -= float64(lngIdx) * divisor
		divisor /= base

		// 8文字に達した時点で区切り文字を挿入する
		if code.Len() == separatorPosition {
			code.WriteByte(Separator)
		}
	}

	return code.String()
}

// Decode Plus Codeを外接矩形へ復号する。
// アルファベット外の文字に当たった時点で処理を打ち切り、
// そこまでに確定した範囲を返す。部分復号はエラーではない
func Decode(code string) model.BoundingBox {
	clean := strings.ReplaceAll(code, string(Separator), "")

	south, west := -90.0, -180.0
	size := float64(base)

	for i := 0; i+1 < len(clean); i += 2 {
		latIdx := charIndex(clean[i])
		lngIdx := charIndex(clean[i+1])
		if latIdx < 0 || lngIdx < 0 {
			break
		}

		south += float64(latIdx) * size
		west += float64(lngIdx) * size
		size /= base
	}

	// 最後に処理したペアの分割前サイズでセルを再構成する
	return model.BoundingBox{
		South: south,
		West:  west,
		North: south + size*base,
		East:  west + size*base,
	}
}

// digit 現在の除数における桁（0〜19）を求める
func digit(value, divisor float64) int {
	return int(clamp(math.Floor(value/divisor), 0, base-1))
}

// clamp 値を[min, max]の範囲へ収める
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
