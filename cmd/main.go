package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"salone-grid/internal/domain/model"
	"salone-grid/internal/grid"
	"salone-grid/internal/zone"
)

// 地図オーバーレイ用のグリッドと郵便ゾーンをGeoJSONファイルへ書き出すツール。
// 出力範囲やズームは環境変数で上書きできる
func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	outDir := envString("GRID_OUTPUT_DIR", "output")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalf("出力ディレクトリの作成失敗: %v", err)
	}

	// Plus Codeオーバーレイグリッド（既定はフリータウン中心部）
	viewport := model.BoundingBox{
		South: envFloat("GRID_SOUTH", 8.46),
		West:  envFloat("GRID_WEST", -13.26),
		North: envFloat("GRID_NORTH", 8.50),
		East:  envFloat("GRID_EAST", -13.20),
	}
	zoom := envFloat("GRID_ZOOM", 15)
	maxCells := envInt("GRID_MAX_CELLS", grid.DefaultMaxCells)

	fmt.Println("Generating plus code overlay grid...")
	cells := grid.Generate(viewport, zoom, grid.Options{MaxCells: maxCells})
	if err := writeGeoJSON(filepath.Join(outDir, "overlay_grid.geojson"), grid.ToGeoJSON(cells)); err != nil {
		log.Fatalf("オーバーレイグリッドの書き出し失敗: %v", err)
	}
	fmt.Printf("✅ overlay_grid.geojson: %d cells (zoom %.1f)\n", len(cells), zoom)

	// 陸地フィルタ付きの郵便ゾーン
	fmt.Println("Generating postal zones...")
	zones := zone.GenerateLandZones(zone.FreetownLandBoundary, zone.DefaultZoneCellSize, zone.DefaultStartCode)
	if err := writeGeoJSON(filepath.Join(outDir, "postal_zones.geojson"), zone.ZonesToGeoJSON(zones)); err != nil {
		log.Fatalf("郵便ゾーンの書き出し失敗: %v", err)
	}
	fmt.Printf("✅ postal_zones.geojson: %d zones\n", len(zones))

	// ゾーン割り当て作業用の行列グリッド
	fmt.Println("Generating survey grid...")
	survey := zone.GenerateSurveyGrid(zone.WesternAreaBounds, zone.DefaultSurveyCellSize)
	if err := writeGeoJSON(filepath.Join(outDir, "survey_grid.geojson"), zone.SurveyGridToGeoJSON(survey)); err != nil {
		log.Fatalf("作業用グリッドの書き出し失敗: %v", err)
	}
	fmt.Printf("✅ survey_grid.geojson: %d cells\n", len(survey))
}

// writeGeoJSON GeoJSONを整形してファイルへ書き出す
func writeGeoJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// envString 環境変数を取得する（未設定ならデフォルト値）
func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloat 環境変数をfloat64として取得する
func envFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("環境変数 %s の値が不正です: %s", key, v)
	}
	return f
}

// envInt 環境変数をintとして取得する
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("環境変数 %s の値が不正です: %s", key, v)
	}
	return n
}
