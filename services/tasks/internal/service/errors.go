package service

import "errors"

var (
	// ErrNotFound - задачи с запрошенным id нет в коллекции
	ErrNotFound = errors.New("task not found")
	// ErrInvalidInput - тело запроса не прошло валидацию
	ErrInvalidInput = errors.New("invalid task data")
)
