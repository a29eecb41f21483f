package models

import "errors"

// Таксономия ошибок ядра. Сервис оборачивает их через fmt.Errorf("%w"),
// хэндлеры распознают через errors.Is и переводят в HTTP-статусы.
var (
	// ErrValidation - некорректный вход (тип, координаты, id). Возвращается до любой мутации.
	ErrValidation = errors.New("validation failed")

	// ErrConflict - условный атомарный переход не прошел: гонка проиграна
	// или запись не в ожидаемом статусе. Штатный исход, не исключение.
	ErrConflict = errors.New("conflict")

	// ErrNotFound - неизвестный SOS-запрос или помощник.
	ErrNotFound = errors.New("not found")

	// ErrNoHelperProfile - у вызывающего пользователя нет профиля помощника.
	ErrNoHelperProfile = errors.New("helper profile not found")
)
