package domain

// User — пользователь реестра. ID назначается базой и после создания не меняется.
// Email уникален среди всех пользователей.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewUser — данные для создания пользователя.
type NewUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch — частичное обновление: nil-поле означает «не трогать»,
// непустой указатель — явное новое значение.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// Empty — true, если патч не меняет ни одного поля.
func (p *UserPatch) Empty() bool {
	return p == nil || (p.Name == nil && p.Email == nil)
}
