// Package pdaid 恒久デジタル住所ID（PDA-ID）の生成と検証を提供する。
//
// 形式: SL-XXXX-YYY-NNNNNN-C
//   - SL: 国プレフィックス（シエラレオネ）
//   - XXXX: 主ゾーンコード（4桁）
//   - YYY: 配達セグメント（3桁）
//   - NNNNNN: ゾーン内の連番（6桁、000001〜999999）
//   - C: Luhnチェックディジット
package pdaid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// CountryPrefix 国プレフィックス
	CountryPrefix = "SL"

	// MaxSequence ゾーン内で払い出せる連番の上限
	MaxSequence = 999999
)

// idPattern PDA-ID全体の形式
var idPattern = regexp.MustCompile(`^SL-\d{4}-\d{3}-\d{6}-\d$`)

// zonePattern ゾーンコード（XXXX-YYY）の形式
var zonePattern = regexp.MustCompile(`^\d{4}-\d{3}$`)

// ID PDA-IDを構成要素へ分解したもの
type ID struct {
	Country     string `json:"country"`
	PrimaryCode string `json:"primary_code"`
	Segment     string `json:"segment"`
	ZoneCode    string `json:"zone_code"`
	Sequence    int    `json:"sequence"`
	CheckDigit  int    `json:"check_digit"`
	FullID      string `json:"full_id"`
}

// Generate ゾーンコードと連番からPDA-IDを生成する
func Generate(zoneCode string, sequence int) (string, error) {
	if !zonePattern.MatchString(zoneCode) {
		return "", fmt.Errorf("ゾーンコードの形式が不正です: %s", zoneCode)
	}
	if sequence < 1 || sequence > MaxSequence {
		return "", fmt.Errorf("連番は1〜%dの範囲で指定してください: %d", MaxSequence, sequence)
	}

	parts := strings.Split(zoneCode, "-")
	primaryCode, segment := parts[0], parts[1]
	sequenceStr := fmt.Sprintf("%06d", sequence)

	check := CheckDigit(primaryCode + segment + sequenceStr)

	return fmt.Sprintf("%s-%s-%s-%s-%d", CountryPrefix, primaryCode, segment, sequenceStr, check), nil
}

// ValidateFormat PDA-IDの形式とチェックディジットを検証する。
// IDが実在するかどうかの確認は行わない
func ValidateFormat(pdaID string) bool {
	if !idPattern.MatchString(pdaID) {
		return false
	}

	parts := strings.Split(pdaID, "-")
	check, err := strconv.Atoi(parts[4])
	if err != nil {
		return false
	}

	return check == CheckDigit(parts[1]+parts[2]+parts[3])
}

// Parse PDA-IDを構成要素へ分解する
func Parse(pdaID string) (*ID, error) {
	if !ValidateFormat(pdaID) {
		return nil, fmt.Errorf("PDA-IDの形式が不正です: %s", pdaID)
	}

	parts := strings.Split(pdaID, "-")
	sequence, _ := strconv.Atoi(parts[3])
	check, _ := strconv.Atoi(parts[4])

	return &ID{
		Country:     parts[0],
		PrimaryCode: parts[1],
		Segment:     parts[2],
		ZoneCode:    parts[1] + "-" + parts[2],
		Sequence:    sequence,
		CheckDigit:  check,
		FullID:      pdaID,
	}, nil
}

// ExtractZoneCode PDA-IDからゾーンコード（XXXX-YYY）を取り出す
func ExtractZoneCode(pdaID string) (string, error) {
	parsed, err := Parse(pdaID)
	if err != nil {
		return "", err
	}
	return parsed.ZoneCode, nil
}
