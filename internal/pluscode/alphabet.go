package pluscode

import "strings"

// Alphabet Plus Codeで使用する20文字のアルファベット。
// 0/O、1/I/Lなど見間違えやすい文字は除外されている
const Alphabet = "23456789CFGHJMPQRVWX"

const (
	// Separator 8文字に達した時点で挿入される区切り文字
	Separator = '+'

	// separatorPosition 区切り文字の挿入位置（先頭からの文字数）
	separatorPosition = 8

	// base 1ペアごとに座標を分割する基数
	base = 20
)

// charIndex 文字をアルファベット上のインデックス（0〜19）へ変換する。
// アルファベット外の文字の場合は -1 を返す
func charIndex(c byte) int {
	return strings.IndexByte(Alphabet, c)
}

// indexChar インデックス（0〜19）を対応する文字へ変換する
func indexChar(i int) byte {
	return Alphabet[i]
}
