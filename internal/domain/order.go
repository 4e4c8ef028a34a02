package domain

import "time"

// Order — заказ магазина (источник). Мы его только читаем и дописываем заметки;
// владеет им исходная коммерческая система.
type Order struct {
	ID            int64      `json:"id"`
	Number        string     `json:"number"`
	Status        string     `json:"status"`
	Currency      string     `json:"currency"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	CustomerEmail string     `json:"customer_email"`
	Total         float64    `json:"total"`
	DateCreated   time.Time  `json:"date_created"`
	DatePaid      *time.Time `json:"date_paid,omitempty"`
	Items         []Item     `json:"items"`
}

// Item — строка заказа.
// ProductID == 0 означает, что товарная ссылка не разрешилась (товар удалён).
// BundleParent — группирующая строка набора: собственного SKU не имеет
// и в выгрузку не попадает никогда.
type Item struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"product_id"`
	SKU          string  `json:"sku"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	BundleParent bool    `json:"bundle_parent"`
}

// HasProduct — товарная ссылка строки разрешима.
func (i *Item) HasProduct() bool { return i.ProductID > 0 }
