package domain

// StatusPending — статус нового заказа по умолчанию.
const StatusPending = "pending"

// Order — заказ. user_id фиксируется при создании и далее не меняется;
// ссылочная целостность проверяется только в момент создания.
type Order struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// NewOrder — данные для создания заказа. Статус выставляет база (pending).
type NewOrder struct {
	UserID   int64  `json:"user_id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// OrderPatch — частичное обновление: nil-поле означает «не трогать».
type OrderPatch struct {
	ItemName *string `json:"item_name"`
	Quantity *int    `json:"quantity"`
	Status   *string `json:"status"`
}

// Empty — true, если патч не меняет ни одного поля.
func (p *OrderPatch) Empty() bool {
	return p == nil || (p.ItemName == nil && p.Quantity == nil && p.Status == nil)
}
