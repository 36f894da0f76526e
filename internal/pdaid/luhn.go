package pdaid

// CheckDigit 数字列に対するLuhnチェックディジット（mod 10）を計算する。
// 数字以外の文字は無視する
func CheckDigit(number string) int {
	digits := extractDigits(number)

	// 右端から1つおきに2倍する（この後ろにチェックディジットが付く前提の位置）
	for i := len(digits) - 1; i >= 0; i -= 2 {
		digits[i] *= 2
		if digits[i] > 9 {
			digits[i] -= 9
		}
	}

	total := 0
	for _, d := range digits {
		total += d
	}

	return (10 - total%10) % 10
}

// ValidateLuhn チェックディジットを含む数字列を検証する
func ValidateLuhn(number string) bool {
	digits := extractDigits(number)
	if len(digits) < 2 {
		return false
	}

	// 末尾のチェックディジットを除き、右端から1つおきに2倍する
	for i := len(digits) - 2; i >= 0; i -= 2 {
		digits[i] *= 2
		if digits[i] > 9 {
			digits[i] -= 9
		}
	}

	total := 0
	for _, d := range digits {
		total += d
	}

	return total%10 == 0
}

// extractDigits 文字列から数字のみを取り出す
func extractDigits(number string) []int {
	digits := make([]int, 0, len(number))
	for _, c := range number {
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}
