package geohash

import "math"

// earthRadiusMeters 地球の半径（メートル）
const earthRadiusMeters = 6371000

// DistanceMeters 2点間の距離をHaversine公式で求める（メートル）
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// precisionSize 精度ごとの赤道上のおおよそのセルサイズ（メートル）。
// 精度の小さい順に並べてある
var precisionSize = []struct {
	precision int
	meters    float64
}{
	{1, 5000000},
	{2, 1250000},
	{3, 156000},
	{4, 39000},
	{5, 5000},
	{6, 1200},
	{7, 150},
	{8, 38},
	{9, 5},
}

// PrecisionForDistance 検索半径（メートル）に適したジオハッシュ精度を求める
func PrecisionForDistance(distanceMeters float64) int {
	for _, p := range precisionSize {
		if p.meters <= distanceMeters {
			return p.precision
		}
	}
	return 9
}

// CoverRadius 円と交差するジオハッシュの一覧を返す。
// 中心のハッシュから隣接セルへ広げながら半径内のセルを集める
func CoverRadius(centerLat, centerLng, radiusMeters float64, precision int) []string {
	if precision <= 0 {
		precision = PrecisionForDistance(radiusMeters)
	}

	centerHash := Encode(centerLat, centerLng, precision)
	result := map[string]bool{centerHash: true}

	toCheck := []string{centerHash}
	checked := map[string]bool{}

	for len(toCheck) > 0 {
		current := toCheck[0]
		toCheck = toCheck[1:]
		if checked[current] {
			continue
		}
		checked[current] = true

		c := DecodeCenter(current)
		dist := DistanceMeters(centerLat, centerLng, c.Lat, c.Lng)

		// 半径に多少の余裕を持たせて境界セルを取りこぼさない
		if dist <= radiusMeters*1.5 {
			result[current] = true
			for _, neighbor := range Neighbors(current) {
				if !checked[neighbor] {
					toCheck = append(toCheck, neighbor)
				}
			}
		}
	}

	hashes := make([]string, 0, len(result))
	for hash := range result {
		hashes = append(hashes, hash)
	}
	return hashes
}
