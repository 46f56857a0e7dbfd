package month

import "errors"

var (
	// ErrCacheUnavailable возвращается при ошибках обращения к Redis
	ErrCacheUnavailable = errors.New("month.cache: cache unavailable")

	// ErrCorruptedEntry возвращается, когда значение в кэше не удается декодировать
	ErrCorruptedEntry = errors.New("month.cache: corrupted entry")
)
