package service

import "errors"

var (
	// ErrFetchFailed - лента не ответила, ответила ошибкой или не уложилась в таймаут
	ErrFetchFailed = errors.New("feed fetch failed")
	// ErrPersistence - запись одной сущности не удалась
	ErrPersistence = errors.New("persistence failed")
	// ErrIncidentNotFound - для пачки подразделений нет родительского инцидента
	ErrIncidentNotFound = errors.New("incident not found")
	// ErrPassInProgress - предыдущий запуск той же задачи еще не завершился
	ErrPassInProgress = errors.New("pass already in progress")
	// ErrConfiguration - компонент нельзя создать с такими параметрами
	ErrConfiguration = errors.New("invalid component configuration")
	// ErrResolverDisabled - автоматическое разрешение выключено в конфигурации
	ErrResolverDisabled = errors.New("staleness resolver is disabled")
	// ErrNotReady - еще не было ни одного успешного цикла
	ErrNotReady = errors.New("no successful poll cycle yet")
)
