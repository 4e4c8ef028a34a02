// Пакет exclusion — разбор списка исключений и решение,
// подлежит ли позиция заказа выгрузке в ALTEK.
package exclusion

import (
	"strconv"
	"strings"
)

// Set — два непересекающихся множества: SKU (в нижнем регистре)
// и числовые идентификаторы товаров. Строится заново на каждый вызов
// выгрузки из текста настроек; после сборки не изменяется.
type Set struct {
	skus map[string]struct{}
	ids  map[int64]struct{}
}

// Parse — разбирает сырой текст настроек (токены через запятую и/или
// пробельные символы). Токен из одних цифр — идентификатор товара,
// остальное — SKU (хранится в нижнем регистре). Пустой текст даёт
// пустой Set, который не совпадает ни с чем.
func Parse(raw string) Set {
	set := Set{
		skus: make(map[string]struct{}),
		ids:  make(map[int64]struct{}),
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if isDigits(tok) {
			if id, err := strconv.ParseInt(tok, 10, 64); err == nil {
				set.ids[id] = struct{}{}
				continue
			}
		}
		set.skus[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// Excluded — true, если товар позиции исключён по ID или по SKU
// (без учёта регистра). Строки с неразрешимой товарной ссылкой сюда
// не попадают — их раньше отбрасывает билдер по правилу "нет SKU".
func (s Set) Excluded(productID int64, skuRaw string) bool {
	if _, ok := s.ids[productID]; ok {
		return true
	}
	if skuRaw == "" {
		return false
	}
	_, ok := s.skus[strings.ToLower(skuRaw)]
	return ok
}

// Empty — в наборе нет ни одного правила.
func (s Set) Empty() bool { return len(s.skus) == 0 && len(s.ids) == 0 }

// isDigits — токен состоит только из десятичных цифр
// (знаки "+"/"-" не допускаются, в отличие от strconv).
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

