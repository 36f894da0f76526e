package pluscode

import "strings"

// Normalize コードを正規化する（大文字化と前後空白の除去）
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// AreaCode コード先頭4文字のエリアコードを返す。
// 約100km四方の領域を表し、コードの地域ごとのグルーピングに使う
func AreaCode(code string) string {
	clean := strings.ReplaceAll(Normalize(code), string(Separator), "")
	if len(clean) > 4 {
		clean = clean[:4]
	}
	return clean
}

// ShortLabel 地図ラベル向けの短縮表記を返す。
// 先頭4文字（エリアコード）と区切り文字を取り除いたもの
func ShortLabel(code string) string {
	if len(code) <= 4 {
		return ""
	}
	return strings.ReplaceAll(code[4:], string(Separator), "")
}
