package domain

// ExportPayload — минимальное представление заказа для выгрузки в ALTEK.
// SKU позиций уже нормализованы билдером (единая точка нормализации).
type ExportPayload struct {
	Schema    string        `json:"schema"`
	OrderID   int64         `json:"orderId"`
	Customer  Customer      `json:"customer"`
	Reference string        `json:"reference"` // обрезано до 60 символов
	Items     []PayloadItem `json:"items"`
}

// Customer — контактные данные покупателя в выгрузке.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PayloadItem — позиция выгрузки.
type PayloadItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Qty      float64 `json:"qty"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

// ExcludedItem — строка, отброшенная фильтром исключений.
// Живёт один вызов билдера: уходит в заметку заказа и забывается.
type ExcludedItem struct {
	ItemID    int64
	ProductID int64
	SKU       string
	Name      string
	Qty       float64
}

// SkippedItem — строка без SKU (не набор-родитель): в выгрузку не попала,
// но и исключением не является. Отдельная категория, чтобы проблемы
// качества данных были видны в заметках.
type SkippedItem struct {
	ItemID int64
	Name   string
	Qty    float64
}
