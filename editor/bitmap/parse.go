package bitmap

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHex: 붙여넣은 헥사 리터럴 목록을 Bytes로 되돌린다.
// ex) "0x01, 0x00, ..." / "{0x01,0x00,...};" / "0X1F, ..."
// 정확히 8개의 값이 있어야 하고, 각 값은 0xff 이하여야 한다.
func ParseHex(s string) (Bytes, error) {
	var b Bytes

	body := strings.TrimSpace(s)
	body = strings.TrimSuffix(body, ";")
	body = strings.TrimSpace(body)
	body = strings.TrimPrefix(body, "{")
	body = strings.TrimSuffix(body, "}")

	fields := strings.Split(body, ",")
	// 마지막 쉼표 허용 (C 배열 초기화에서 흔함)
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields) != Size {
		return Bytes{}, ErrHexFormat{Input: s, Desc: fmt.Sprintf("expected %d values, got %d", Size, len(fields))}
	}

	for i, field := range fields {
		token := strings.TrimSpace(field)
		digits, ok := cutHexPrefix(token)
		if !ok || digits == "" {
			return Bytes{}, ErrHexFormat{Input: s, Desc: fmt.Sprintf("value %d (%q) is not a 0x literal", i, token)}
		}
		v, err := strconv.ParseUint(digits, 16, 8)
		if err != nil {
			return Bytes{}, ErrHexFormat{Input: s, Desc: fmt.Sprintf("value %d (%q) is not a byte", i, token)}
		}
		b[i] = byte(v)
	}
	return b, nil
}

func cutHexPrefix(token string) (string, bool) {
	if digits, ok := strings.CutPrefix(token, "0x"); ok {
		return digits, true
	}
	return strings.CutPrefix(token, "0X")
}
