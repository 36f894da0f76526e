package pdaid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	t.Run("既知のLuhnチェックディジットと一致する", func(t *testing.T) {
		// 古典的なLuhnの検証ベクタ
		assert.Equal(t, 3, CheckDigit("7992739871"))
	})

	t.Run("数字以外の文字は無視される", func(t *testing.T) {
		assert.Equal(t, CheckDigit("7992739871"), CheckDigit("7992-7398-71"))
	})

	t.Run("チェックディジットを付けると検証に通る", func(t *testing.T) {
		numbers := []string{"7992739871", "2310047000142", "123456", "000001"}
		for _, n := range numbers {
			check := CheckDigit(n)
			assert.True(t, ValidateLuhn(fmt.Sprintf("%s%d", n, check)), "number=%s check=%d", n, check)
		}
	})

	t.Run("誤ったチェックディジットは検証に落ちる", func(t *testing.T) {
		check := CheckDigit("7992739871")
		wrong := (check + 1) % 10
		assert.False(t, ValidateLuhn(fmt.Sprintf("7992739871%d", wrong)))
	})

	t.Run("桁数が足りない場合は不正", func(t *testing.T) {
		assert.False(t, ValidateLuhn(""))
		assert.False(t, ValidateLuhn("5"))
	})
}

func TestGenerate(t *testing.T) {
	t.Run("ゾーンコードと連番からPDA-IDを組み立てる", func(t *testing.T) {
		id, err := Generate("2310-047", 142)
		require.NoError(t, err)

		assert.Equal(t, "SL-2310-047-000142-2", id)
		assert.True(t, ValidateFormat(id))
		fmt.Printf("🏠 zone=2310-047 seq=142 -> %s\n", id)
	})

	t.Run("連番は6桁ゼロ埋めされる", func(t *testing.T) {
		id, err := Generate("1000-001", 1)
		require.NoError(t, err)
		assert.Contains(t, id, "-000001-")
	})

	t.Run("不正なゾーンコードはエラー", func(t *testing.T) {
		for _, zone := range []string{"", "2310", "231-047", "2310-47", "2310_047", "abcd-efg"} {
			_, err := Generate(zone, 1)
			assert.Error(t, err, "zone=%q", zone)
		}
	})

	t.Run("連番の範囲外はエラー", func(t *testing.T) {
		_, err := Generate("2310-047", 0)
		assert.Error(t, err)

		_, err = Generate("2310-047", MaxSequence+1)
		assert.Error(t, err)

		_, err = Generate("2310-047", MaxSequence)
		assert.NoError(t, err)
	})
}

func TestValidateFormat(t *testing.T) {
	t.Run("生成したIDは常に検証に通る", func(t *testing.T) {
		for seq := 1; seq <= 50; seq++ {
			id, err := Generate("2310-047", seq)
			require.NoError(t, err)
			assert.True(t, ValidateFormat(id), "id=%s", id)
		}
	})

	t.Run("チェックディジットの改ざんを検出する", func(t *testing.T) {
		assert.False(t, ValidateFormat("SL-2310-047-000142-7"))
	})

	t.Run("形式が崩れたIDは不正", func(t *testing.T) {
		invalid := []string{
			"",
			"SL-2310-047-000142",
			"GB-2310-047-000142-2",
			"SL-2310-047-142-2",
			"sl-2310-047-000142-2",
			"SL-2310-047-000142-22",
		}
		for _, id := range invalid {
			assert.False(t, ValidateFormat(id), "id=%q", id)
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("構成要素へ分解できる", func(t *testing.T) {
		parsed, err := Parse("SL-2310-047-000142-2")
		require.NoError(t, err)

		assert.Equal(t, "SL", parsed.Country)
		assert.Equal(t, "2310", parsed.PrimaryCode)
		assert.Equal(t, "047", parsed.Segment)
		assert.Equal(t, "2310-047", parsed.ZoneCode)
		assert.Equal(t, 142, parsed.Sequence)
		assert.Equal(t, 2, parsed.CheckDigit)
		assert.Equal(t, "SL-2310-047-000142-2", parsed.FullID)
	})

	t.Run("不正なIDはエラー", func(t *testing.T) {
		_, err := Parse("SL-2310-047-000142-7")
		assert.Error(t, err)
	})

	t.Run("ゾーンコードの抽出", func(t *testing.T) {
		zone, err := ExtractZoneCode("SL-2310-047-000142-2")
		require.NoError(t, err)
		assert.Equal(t, "2310-047", zone)
	})
}
