// Пакет sku — канонизация артикулов (SKU) под формат каталога ALTEK.
package sku

import "strings"

// Width — фиксированная ширина числового артикула в ALTEK.
const Width = 9

// Normalize — приводит SKU к виду, который ожидает каталог ALTEK:
// чисто цифровой артикул короче 9 знаков дополняется нулями слева до 9,
// всё остальное возвращается как есть (после обрезки пробелов).
// Чистая функция; применяется ровно один раз — при сборке payload.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if !digitsOnly(s) || len(s) >= Width {
		return s
	}
	return strings.Repeat("0", Width-len(s)) + s
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
