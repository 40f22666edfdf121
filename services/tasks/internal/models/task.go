package models

// Task - единственная доменная запись сервиса
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Completed   bool   `json:"completed" yaml:"completed"`
}

// Payload - нетипизированное тело запроса (JSON-объект или форма).
// Типы полей проверяются только при валидации, без приведения.
type Payload map[string]any

// Field возвращает значение поля и признак его наличия
func (p Payload) Field(name string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p[name]
	return v, ok
}
